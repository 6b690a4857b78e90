// Package testutil holds assertions shared by the package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireRange fails t if any element lies outside [lo, hi].
func RequireRange(t *testing.T, data []float64, lo, hi float64) {
	t.Helper()
	for i, v := range data {
		if v < lo || v > hi || math.IsNaN(v) {
			t.Fatalf("index %d: value %v outside [%v, %v]", i, v, lo, hi)
		}
	}
}

// RequireNotAllEqual fails t if a and b are identical element for element.
func RequireNotAllEqual(t *testing.T, a, b []float64) {
	t.Helper()
	if len(a) != len(b) {
		return
	}
	for i := range a {
		if a[i] != b[i] {
			return
		}
	}
	t.Fatalf("slices of length %d are identical", len(a))
}

// NonZero counts the elements with a non-zero value.
func NonZero(data []float64) int {
	n := 0
	for _, v := range data {
		if v != 0 {
			n++
		}
	}
	return n
}
