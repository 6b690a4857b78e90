package noise

import "github.com/cwbudde/algo-noise/dsp/core"

const (
	brownStep  = 0.02
	brownLeak  = 1.02
	brownScale = 3.5
)

// Brown is a leaky integrator approximating Brownian motion.
// Its state stays within [-1, 1] for inputs in [-1, 1], so the emitted
// sample is bounded by 3.5.
type Brown struct {
	state float64
}

// Step advances the integrator with one uniform input u in [-1, 1]:
// s' = (s + 0.02*u) / 1.02, and returns s' * 3.5.
func (b *Brown) Step(u float64) float64 {
	b.state = core.FlushDenormals((b.state + brownStep*u) / brownLeak)
	return b.state * brownScale
}

// Next draws from src and advances the integrator.
func (b *Brown) Next(src Source) float64 {
	return b.Step(Bipolar(src))
}

// State returns the integrator memory.
func (b *Brown) State() float64 {
	return b.state
}
