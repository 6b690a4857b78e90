package control

import (
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

// Live is the mutable parameter block read by a running session.
type Live struct {
	mu    sync.Mutex // serializes writers only
	state atomic.Pointer[State]
	epoch atomic.Uint64
}

// NewLive creates a parameter block holding the sanitized initial state.
func NewLive(initial State) *Live {
	l := &Live{}
	s := initial.Sanitize()
	l.state.Store(&s)
	return l
}

// Load returns the latest state. It never blocks.
func (l *Live) Load() State {
	return *l.state.Load()
}

// PhaseEpoch increments whenever the LFO phase must be re-seeded from the
// phase offset. Readers compare it against the value they last acted on.
func (l *Live) PhaseEpoch() uint64 {
	return l.epoch.Load()
}

// Store replaces the whole state. The LFO is restarted when the phase
// offset changes.
func (l *Live) Store(s State) {
	l.Update(func(st *State) { *st = s })
}

// Update applies fn to a copy of the current state and publishes the
// sanitized result. The LFO is restarted when the phase offset changes.
func (l *Live) Update(fn func(*State)) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.Load()
	next := prev
	fn(&next)
	next = next.Sanitize()
	l.state.Store(&next)
	if next.Organic.PhaseOffset != prev.Organic.PhaseOffset {
		l.epoch.Add(1)
	}
	return next
}

// SetRGB sets the three intensities.
func (l *Live) SetRGB(c color.RGB) {
	l.Update(func(s *State) { s.RGB = c })
}

// SetMode switches between Pure and Organic.
func (l *Live) SetMode(m mixer.Mode) {
	l.Update(func(s *State) { s.Mode = m })
}

// SetOrganic replaces the organic parameters.
func (l *Live) SetOrganic(p organic.Params) {
	l.Update(func(s *State) { s.Organic = p })
}

// SetRateHz changes the LFO speed. The phase continues from where it is.
func (l *Live) SetRateHz(rate float64) {
	l.Update(func(s *State) { s.Organic.RateHz = rate })
}

// SetDepth changes the pan excursion.
func (l *Live) SetDepth(depth float64) {
	l.Update(func(s *State) { s.Organic.Depth = depth })
}

// SetShape changes the LFO shape.
func (l *Live) SetShape(shape organic.Shape) {
	l.Update(func(s *State) { s.Organic.Shape = shape })
}

// SetRandomness changes the jitter amount.
func (l *Live) SetRandomness(r float64) {
	l.Update(func(s *State) { s.Organic.Randomness = r })
}

// SetPhaseOffset sets the phase offset and always restarts the LFO there,
// even when the value is unchanged.
func (l *Live) SetPhaseOffset(offset float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.Load()
	next.Organic.PhaseOffset = offset
	next = next.Sanitize()
	l.state.Store(&next)
	l.epoch.Add(1)
}
