package mixer

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

// Component weights of the final combine.
const (
	brownWeight = 0.4
	pinkWeight  = 0.5
	whiteWeight = 0.3
	outputScale = 0.5

	smoothCurrent  = 0.85
	smoothPrevious = 0.15
)

var (
	brownLayerWeights = [3]float64{0.4, 0.35, 0.25}
	pinkLayerWeights  = [2]float64{0.6, 0.4}
)

// Option configures a Mixer.
type Option func(*config)

type config struct {
	seed    int64
	hasSeed bool
}

// WithSeed makes the mixer's noise and jitter reproducible.
func WithSeed(seed int64) Option {
	return func(cfg *config) {
		cfg.seed = seed
		cfg.hasSeed = true
	}
}

// Mixer holds the generator and modulator state of one stream.
//
// Brown layer 0 and pink layer 0 double as the Pure-mode streams, so
// switching modes mid-stream keeps their filter memory.
type Mixer struct {
	sampleRate float64
	seed       int64

	brown [len(brownLayerWeights)]*noise.Layer
	pink  [len(pinkLayerWeights)]*noise.Layer
	white *noise.Layer
	mod   *organic.Modulator
}

// New creates a mixer with freshly seeded layers and the LFO at phase 0.
func New(sampleRate float64, opts ...Option) (*Mixer, error) {
	if sampleRate <= 0 || !core.IsFinite(sampleRate) {
		return nil, fmt.Errorf("mixer sample rate must be > 0 and finite: %f: %w", sampleRate, core.ErrInvalidParameter)
	}

	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasSeed {
		cfg.seed = noise.RandomSeed()
	}

	// Every layer gets its own source derived from the master seed.
	master := noise.NewSource(cfg.seed)
	m := &Mixer{sampleRate: sampleRate, seed: cfg.seed}
	for i := range m.brown {
		m.brown[i] = noise.NewLayer(noise.WithSeed(master.Int63()))
	}
	for i := range m.pink {
		m.pink[i] = noise.NewLayer(noise.WithSeed(master.Int63()))
	}
	m.white = noise.NewLayer(noise.WithSeed(master.Int63()))

	mod, err := organic.NewModulator(sampleRate, noise.NewSource(master.Int63()))
	if err != nil {
		return nil, err
	}
	m.mod = mod
	return m, nil
}

// Seed returns the master seed.
func (m *Mixer) Seed() int64 { return m.seed }

// SampleRate returns the sample rate in Hz.
func (m *Mixer) SampleRate() float64 { return m.sampleRate }

// SetPhaseOffset restarts the LFO at offset (fraction of a cycle).
func (m *Mixer) SetPhaseOffset(offset float64) {
	m.mod.SetPhaseOffset(offset)
}

// Phase returns the current LFO phase in radians.
func (m *Mixer) Phase() float64 {
	return m.mod.Phase()
}

// ProcessBlock fills left and right with one block of output. Both slices
// must have the same length. p is sanitized before use. Every output sample
// is finite and hard-clamped to [-1, 1].
func (m *Mixer) ProcessBlock(left, right []float64, p Params) error {
	if len(left) != len(right) {
		return fmt.Errorf("mixer channel length mismatch: left %d, right %d: %w",
			len(left), len(right), core.ErrInvalidBuffer)
	}
	p = p.Sanitize()
	if p.Mode == Organic {
		m.processOrganic(left, right, p)
	} else {
		m.processPure(left, right, p)
	}
	return nil
}

func (m *Mixer) processPure(left, right []float64, p Params) {
	g := p.Gains
	for i := range left {
		brown := m.brown[0].Brown() * g.Bass * brownWeight
		pink := m.pink[0].Pink() * g.Mid * pinkWeight
		white := m.white.White() * g.Treble * whiteWeight
		s := core.Clamp((brown+pink+white)*outputScale, -1, 1)
		left[i] = s
		right[i] = s
	}
}

func (m *Mixer) processOrganic(left, right []float64, p Params) {
	g := p.Gains
	for i := range left {
		brown := 0.0
		for k, layer := range m.brown {
			brown += layer.Brown() * brownLayerWeights[k]
		}
		pink := 0.0
		for k, layer := range m.pink {
			pink += layer.Pink() * pinkLayerWeights[k]
		}
		white := m.white.White()

		s := (brown*g.Bass*brownWeight + pink*g.Mid*pinkWeight + white*g.Treble*whiteWeight) * outputScale

		f := m.mod.Next(p.Organic)
		s *= f.Amplitude
		l := s * f.Left
		r := s * f.Right

		// The first sample of each block is left unsmoothed.
		if i > 0 {
			l = l*smoothCurrent + left[i-1]*smoothPrevious
			r = r*smoothCurrent + right[i-1]*smoothPrevious
		}
		left[i] = core.Clamp(l, -1, 1)
		right[i] = core.Clamp(r, -1, 1)
	}
}
