package noise

// Pink colours white noise with Paul Kellet's refined filter: six leaky
// poles plus a one-sample-delayed white term and a direct white term,
// giving a -3 dB/octave slope across the audio band.
type Pink struct {
	b [7]float64
}

const pinkScale = 0.11

var pinkPoles = [6]struct{ decay, weight float64 }{
	{0.99886, 0.0555179},
	{0.99332, 0.0750759},
	{0.96900, 0.1538520},
	{0.86650, 0.3104856},
	{0.55000, 0.5329522},
	{-0.7616, -0.0168980},
}

// Step advances the filter with one white input in [-1, 1] and returns the
// pink sample.
func (p *Pink) Step(white float64) float64 {
	sum := 0.0
	for i, pole := range pinkPoles {
		p.b[i] = pole.decay*p.b[i] + white*pole.weight
		sum += p.b[i]
	}
	// b[6] still holds the previous sample's contribution here.
	out := (sum + p.b[6] + white*0.5362) * pinkScale
	p.b[6] = white * 0.115926
	return out
}

// Next draws from src and advances the filter.
func (p *Pink) Next(src Source) float64 {
	return p.Step(Bipolar(src))
}

// State returns a copy of the seven filter accumulators.
func (p *Pink) State() [7]float64 {
	return p.b
}
