package noise

// White draws one uncorrelated sample in [-1, 1) from src.
func White(src Source) float64 {
	return Bipolar(src)
}
