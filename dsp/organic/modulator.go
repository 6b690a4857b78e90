package organic

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
)

const (
	twoPi = 2 * math.Pi

	ampDepth    = 0.15
	ampJitter   = 0.05
	panJitter   = 0.01
	panCenter   = 0.5
	panHalfSpan = 0.5
)

// Frame is the modulation state for one sample.
type Frame struct {
	Value     float64 // shaped oscillator value in [-1, 1]
	Jitter    float64 // random term in [-randomness, randomness]
	Amplitude float64 // gain multiplier around 1
	Pan       float64 // 0 = left, 1 = right
	Left      float64 // equal-power left gain
	Right     float64 // equal-power right gain
}

// Modulator owns the LFO phase and a random source for jitter.
type Modulator struct {
	sampleRate float64
	phase      float64
	src        noise.Source
}

// NewModulator creates a modulator at phase 0.
func NewModulator(sampleRate float64, src noise.Source) (*Modulator, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("modulator sample rate must be > 0 and finite: %f: %w", sampleRate, core.ErrInvalidParameter)
	}
	if src == nil {
		src = noise.NewSource(noise.RandomSeed())
	}
	return &Modulator{sampleRate: sampleRate, src: src}, nil
}

// SetPhaseOffset moves the phase to offset*2*pi immediately. The jump is
// discontinuous; it restarts the LFO position.
func (m *Modulator) SetPhaseOffset(offset float64) {
	m.phase = WrapOffset(offset) * twoPi
}

// Phase returns the current phase in radians, in [0, 2*pi).
func (m *Modulator) Phase() float64 {
	return m.phase
}

// SampleRate returns the sample rate in Hz.
func (m *Modulator) SampleRate() float64 { return m.sampleRate }

// Next evaluates the modulation at the current phase and then advances the
// phase by one sample at p.RateHz. p must already be sanitized.
func (m *Modulator) Next(p Params) Frame {
	v := p.Shape.Apply(math.Sin(m.phase), m.src)
	j := (m.src.Float64() - 0.5) * 2 * p.Randomness

	pan := core.Clamp(panHalfSpan*p.Depth*v+panCenter+panJitter*j, 0, 1)
	left, right := PanGains(pan)

	m.phase += twoPi * p.RateHz / m.sampleRate
	if m.phase >= twoPi {
		m.phase = math.Mod(m.phase, twoPi)
	}

	return Frame{
		Value:     v,
		Jitter:    j,
		Amplitude: 1 + ampDepth*v + ampJitter*j,
		Pan:       pan,
		Left:      left,
		Right:     right,
	}
}

// PanGains returns equal-power channel gains for pan in [0, 1]:
// left = cos(pan*pi/2), right = sin(pan*pi/2).
func PanGains(pan float64) (left, right float64) {
	theta := core.Clamp(pan, 0, 1) * math.Pi / 2
	return math.Cos(theta), math.Sin(theta)
}
