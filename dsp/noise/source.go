package noise

import "math/rand"

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Bipolar draws one uniform value in [-1, 1) from src.
func Bipolar(src Source) float64 {
	return src.Float64()*2 - 1
}

// NewSource returns a seeded source.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomSeed returns a seed from the process-wide random generator, which is
// itself randomly seeded at program start.
func RandomSeed() int64 {
	return rand.Int63()
}
