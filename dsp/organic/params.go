package organic

import (
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// Parameter ranges.
const (
	MinRateHz     = 0.01
	MaxRateHz     = 0.5
	MaxRandomness = 0.2
)

// Params controls the modulator.
type Params struct {
	RateHz      float64 // LFO speed in (0, 0.5]
	Depth       float64 // pan excursion in [0, 1]
	Shape       Shape
	Randomness  float64 // jitter amount in [0, 0.2]
	PhaseOffset float64 // start position as a fraction of a cycle in [0, 1)
}

// DefaultParams returns a slow, moderate movement.
func DefaultParams() Params {
	return Params{
		RateHz:      0.1,
		Depth:       0.5,
		Shape:       Sine,
		Randomness:  0.05,
		PhaseOffset: 0,
	}
}

// Sanitize clamps every field into its documented range. NaN fields fall
// back to their default, an unknown shape becomes Sine and the phase
// offset wraps into [0, 1).
func (p Params) Sanitize() Params {
	def := DefaultParams()
	if math.IsNaN(p.RateHz) {
		p.RateHz = def.RateHz
	}
	if math.IsNaN(p.Depth) {
		p.Depth = def.Depth
	}
	if math.IsNaN(p.Randomness) {
		p.Randomness = def.Randomness
	}
	if !p.Shape.Valid() {
		p.Shape = Sine
	}
	p.RateHz = core.Clamp(p.RateHz, MinRateHz, MaxRateHz)
	p.Depth = core.Clamp(p.Depth, 0, 1)
	p.Randomness = core.Clamp(p.Randomness, 0, MaxRandomness)
	p.PhaseOffset = WrapOffset(p.PhaseOffset)
	return p
}

// WrapOffset maps any cycle fraction into [0, 1). Non-finite values map to 0.
func WrapOffset(offset float64) float64 {
	if !core.IsFinite(offset) {
		return 0
	}
	offset -= math.Floor(offset)
	if offset >= 1 {
		offset = 0
	}
	return offset
}
