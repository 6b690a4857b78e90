package slope

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/core"
)

func whiteNoise(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}
	return out
}

func TestWhiteNoiseIsFlat(t *testing.T) {
	s, err := DBPerOctave(whiteNoise(7, 44100*2), 44100, 200, 16000)
	if err != nil {
		t.Fatalf("DBPerOctave() error = %v", err)
	}
	if math.Abs(s) > 0.75 {
		t.Fatalf("white slope = %.2f dB/oct, want ~0", s)
	}
}

func TestIntegratedNoiseFallsSixDB(t *testing.T) {
	// A leaky integrator with a low corner falls ~6 dB/oct above it.
	x := whiteNoise(11, 44100*2)
	state := 0.0
	for i, v := range x {
		state = 0.999*state + v
		x[i] = state
	}
	s, err := DBPerOctave(x, 44100, 500, 4000)
	if err != nil {
		t.Fatalf("DBPerOctave() error = %v", err)
	}
	if math.Abs(s+6) > 1 {
		t.Fatalf("integrated slope = %.2f dB/oct, want ~-6", s)
	}
}

func TestWelchSegments(t *testing.T) {
	psd, err := Welch(whiteNoise(1, 4096), 48000, WithFFTSize(1024), WithOverlap(0.5))
	if err != nil {
		t.Fatalf("Welch() error = %v", err)
	}
	if psd.Segments != 7 {
		t.Fatalf("segments = %d, want 7", psd.Segments)
	}
	if len(psd.Power) != 513 {
		t.Fatalf("bins = %d, want 513", len(psd.Power))
	}
	if psd.BinHz != 48000.0/1024 {
		t.Fatalf("BinHz = %v", psd.BinHz)
	}
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
	}{
		{"short", func() error { _, err := Welch(make([]float64, 10), 44100); return err }},
		{"rate", func() error { _, err := Welch(make([]float64, 8192), 0); return err }},
		{"fft size", func() error { _, err := Welch(make([]float64, 8192), 44100, WithFFTSize(1000)); return err }},
		{"overlap", func() error { _, err := Welch(make([]float64, 8192), 44100, WithOverlap(1)); return err }},
		{"band", func() error { _, err := DBPerOctave(whiteNoise(2, 8192), 44100, 100, 50); return err }},
		{"narrow band", func() error { _, err := DBPerOctave(whiteNoise(2, 8192), 44100, 100, 101); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, core.ErrInvalidParameter) {
				t.Fatalf("error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}
