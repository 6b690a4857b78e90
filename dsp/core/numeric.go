package core

import "math"

// Clamp limits value to the inclusive range [min, max].
// NaN maps to min.
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if value < min || math.IsNaN(value) {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampInt limits value to the inclusive range [min, max].
func ClampInt(value, min, max int) int {
	if min > max {
		min, max = max, min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// Long-running leaky integrators decay towards zero during silence, which
// would otherwise leave them in the denormal range.
func FlushDenormals(x float64) float64 {
	const epsilon = 1e-30
	if x > -epsilon && x < epsilon {
		return 0
	}
	return x
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}
	if linear == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(linear)
}

// PowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func PowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}
	if power == 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(power)
}
