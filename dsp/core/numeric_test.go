package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
		{name: "nan", value: math.NaN(), min: -1, max: 1, expected: -1},
		{name: "inf", value: math.Inf(1), min: -1, max: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(300, 0, 255); got != 255 {
		t.Fatalf("ClampInt(300) = %d, want 255", got)
	}
	if got := ClampInt(-4, 0, 255); got != 0 {
		t.Fatalf("ClampInt(-4) = %d, want 0", got)
	}
	if got := ClampInt(17, 255, 0); got != 17 {
		t.Fatalf("ClampInt(17) with swapped bounds = %d, want 17", got)
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Fatal("expected 1.5 to be finite")
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if IsFinite(v) {
			t.Fatalf("IsFinite(%v) = true, want false", v)
		}
	}
}

func TestFlushDenormals(t *testing.T) {
	if got := FlushDenormals(1e-35); got != 0 {
		t.Fatalf("FlushDenormals(1e-35) = %v, want 0", got)
	}
	if got := FlushDenormals(0.25); got != 0.25 {
		t.Fatalf("FlushDenormals(0.25) = %v, want 0.25", got)
	}
}

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}
	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestDBConversions(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1) = %v, want 0", got)
	}
	if got := LinearToDB(0.1); math.Abs(got+20) > 1e-12 {
		t.Fatalf("LinearToDB(0.1) = %v, want -20", got)
	}
	if !math.IsInf(LinearToDB(0), -1) {
		t.Fatal("expected -Inf for zero")
	}
	if !math.IsNaN(PowerToDB(-1)) {
		t.Fatal("expected NaN for negative power")
	}
	if got := PowerToDB(100); math.Abs(got-20) > 1e-12 {
		t.Fatalf("PowerToDB(100) = %v, want 20", got)
	}
}
