package slope

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultFFTSize = 4096
	defaultOverlap = 0.5
)

// Option configures the spectrum estimate.
type Option func(*config) error

type config struct {
	fftSize int
	overlap float64
}

// WithFFTSize sets the segment length, which must be a power of two >= 64.
func WithFFTSize(n int) Option {
	return func(cfg *config) error {
		if n < 64 || n&(n-1) != 0 {
			return fmt.Errorf("slope fft size must be a power of two >= 64: %d: %w", n, core.ErrInvalidParameter)
		}
		cfg.fftSize = n
		return nil
	}
}

// WithOverlap sets the segment overlap in [0, 0.9].
func WithOverlap(overlap float64) Option {
	return func(cfg *config) error {
		if overlap < 0 || overlap > 0.9 || math.IsNaN(overlap) {
			return fmt.Errorf("slope overlap must be in [0, 0.9]: %f: %w", overlap, core.ErrInvalidParameter)
		}
		cfg.overlap = overlap
		return nil
	}
}

// PSD is a one-sided averaged power spectrum.
type PSD struct {
	Power    []float64 // bins 0..fftSize/2, linear power
	BinHz    float64
	Segments int
}

// Welch estimates the power spectrum of samples.
func Welch(samples []float64, sampleRate float64, opts ...Option) (*PSD, error) {
	cfg := config{fftSize: defaultFFTSize, overlap: defaultOverlap}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("slope sample rate must be > 0: %f: %w", sampleRate, core.ErrInvalidParameter)
	}
	n := cfg.fftSize
	if len(samples) < n {
		return nil, fmt.Errorf("slope needs at least %d samples, got %d: %w", n, len(samples), core.ErrInvalidParameter)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("slope init fft plan: %w", err)
	}

	win := make([]float64, n)
	for i := range win {
		win[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n))
	}

	hop := int(math.Round(float64(n) * (1 - cfg.overlap)))
	if hop < 1 {
		hop = 1
	}

	bins := n/2 + 1
	seg := make([]float64, n)
	in := make([]complex128, n)
	out := make([]complex128, n)
	re := make([]float64, bins)
	im := make([]float64, bins)
	pw := make([]float64, bins)
	acc := make([]float64, bins)

	segments := 0
	for start := 0; start+n <= len(samples); start += hop {
		copy(seg, samples[start:start+n])
		vecmath.MulBlockInPlace(seg, win)
		for i, v := range seg {
			in[i] = complex(v, 0)
		}
		if err := plan.Forward(out, in); err != nil {
			return nil, fmt.Errorf("slope fft: %w", err)
		}
		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Power(pw, re, im)
		for k := range acc {
			acc[k] += pw[k]
		}
		segments++
	}

	scale := 1 / float64(segments)
	for k := range acc {
		acc[k] *= scale
	}

	return &PSD{
		Power:    acc,
		BinHz:    sampleRate / float64(n),
		Segments: segments,
	}, nil
}

// DBPerOctave fits a line to the spectrum between loHz and hiHz and returns
// its slope in dB per octave.
func (p *PSD) DBPerOctave(loHz, hiHz float64) (float64, error) {
	if loHz <= 0 || hiHz <= loHz {
		return 0, fmt.Errorf("slope band must satisfy 0 < lo < hi: [%f, %f]: %w", loHz, hiHz, core.ErrInvalidParameter)
	}

	var sx, sy, sxx, sxy, count float64
	for k := 1; k < len(p.Power); k++ {
		f := float64(k) * p.BinHz
		if f < loHz || f > hiHz || p.Power[k] <= 0 {
			continue
		}
		x := math.Log2(f)
		y := core.PowerToDB(p.Power[k])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
		count++
	}
	if count < 2 {
		return 0, fmt.Errorf("slope band [%f, %f] covers fewer than 2 bins: %w", loHz, hiHz, core.ErrInvalidParameter)
	}

	den := count*sxx - sx*sx
	if den == 0 {
		return 0, fmt.Errorf("slope band [%f, %f] is degenerate: %w", loHz, hiHz, core.ErrInvalidParameter)
	}
	return (count*sxy - sx*sy) / den, nil
}

// DBPerOctave is a shortcut for Welch followed by PSD.DBPerOctave.
func DBPerOctave(samples []float64, sampleRate, loHz, hiHz float64, opts ...Option) (float64, error) {
	psd, err := Welch(samples, sampleRate, opts...)
	if err != nil {
		return 0, err
	}
	return psd.DBPerOctave(loHz, hiHz)
}
