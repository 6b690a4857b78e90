package webdemo

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/measure/slope"
)

const (
	analyzerFFTSize = 2048
	analyzerHistory = 4 * analyzerFFTSize
	floorDB         = -130.0
)

// analyzer keeps the most recent mono output for the spectrum display.
type analyzer struct {
	sampleRate float64
	ring       []float64
	write      int
	filled     int
	scratch    []float64
}

func newAnalyzer(sampleRate float64) *analyzer {
	return &analyzer{
		sampleRate: sampleRate,
		ring:       make([]float64, analyzerHistory),
		scratch:    make([]float64, analyzerHistory),
	}
}

func (a *analyzer) reset() {
	a.write = 0
	a.filled = 0
}

func (a *analyzer) push(b *buffer.Stereo) {
	for i := 0; i < b.Frames(); i++ {
		a.ring[a.write] = 0.5 * (b.Left[i] + b.Right[i])
		a.write = (a.write + 1) % len(a.ring)
	}
	a.filled += b.Frames()
	if a.filled > len(a.ring) {
		a.filled = len(a.ring)
	}
}

// ordered copies the ring oldest-first into scratch.
func (a *analyzer) ordered() []float64 {
	n := a.filled
	start := (a.write - n + len(a.ring)) % len(a.ring)
	for i := 0; i < n; i++ {
		a.scratch[i] = a.ring[(start+i)%len(a.ring)]
	}
	return a.scratch[:n]
}

func (a *analyzer) psd() (*slope.PSD, bool) {
	if a.filled < analyzerFFTSize {
		return nil, false
	}
	p, err := slope.Welch(a.ordered(), a.sampleRate, slope.WithFFTSize(analyzerFFTSize))
	if err != nil {
		return nil, false
	}
	return p, true
}

func (a *analyzer) curveDB(freqs []float64) []float64 {
	out := make([]float64, len(freqs))
	for i := range out {
		out[i] = floorDB
	}
	p, ok := a.psd()
	if !ok {
		return out
	}
	last := len(p.Power) - 1
	for i, f := range freqs {
		if !(f > 0) {
			continue
		}
		bin := core.ClampInt(int(math.Round(f/p.BinHz)), 1, last)
		db := core.PowerToDB(p.Power[bin])
		if db < floorDB || math.IsNaN(db) {
			db = floorDB
		}
		out[i] = db
	}
	return out
}

func (a *analyzer) slope() (float64, bool) {
	p, ok := a.psd()
	if !ok {
		return 0, false
	}
	hi := math.Min(10000, 0.45*a.sampleRate)
	v, err := p.DBPerOctave(100, hi)
	if err != nil {
		return 0, false
	}
	return v, true
}
