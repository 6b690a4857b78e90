package color

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/core"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want Category
	}{
		{name: "white", rgb: RGB{255, 255, 255}, want: CategoryWhite},
		{name: "near silence", rgb: RGB{10, 10, 10}, want: CategoryNearSilence},
		{name: "all zero", rgb: RGB{0, 0, 0}, want: CategoryNearSilence},
		{name: "brownish", rgb: RGB{200, 80, 20}, want: CategoryBrownish},
		{name: "pinkish", rgb: RGB{255, 200, 150}, want: CategoryPinkish},
		{name: "brown preset", rgb: RGB{255, 100, 50}, want: CategoryBrownish},
		{name: "blueish", rgb: RGB{40, 60, 200}, want: CategoryBlueish},
		{name: "balanced", rgb: RGB{128, 128, 128}, want: CategoryCustom},
		{name: "blue preset", rgb: RGB{150, 200, 255}, want: CategoryCustom},
		{name: "out of range clamps to white", rgb: RGB{300, 999, 256}, want: CategoryWhite},
		{name: "negative clamps to silence", rgb: RGB{-5, -1, 0}, want: CategoryNearSilence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.rgb); got != tt.want {
				t.Fatalf("Classify(%v) = %v, want %v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestCategoryLabels(t *testing.T) {
	want := map[Category]string{
		CategoryWhite:       "White Noise",
		CategoryNearSilence: "Near Silence",
		CategoryBrownish:    "Brown-ish Noise",
		CategoryPinkish:     "Pink-ish Noise",
		CategoryBlueish:     "Blue-ish Noise",
		CategoryCustom:      "Custom Noise",
	}
	for c, label := range want {
		if c.String() != label {
			t.Fatalf("%d.String() = %q, want %q", c, c.String(), label)
		}
	}
}

func TestGains(t *testing.T) {
	g := RGB{255, 0, 51}.Gains()
	if g.Bass != 1 || g.Mid != 0 || g.Treble != 0.2 {
		t.Fatalf("Gains() = %+v, want {1 0 0.2}", g)
	}

	g = RGB{-20, 400, 255}.Gains()
	if g.Bass != 0 || g.Mid != 1 || g.Treble != 1 {
		t.Fatalf("Gains() of out-of-range triple = %+v, want {0 1 1}", g)
	}
}

func TestGainsSanitize(t *testing.T) {
	g := Gains{Bass: -0.5, Mid: 2, Treble: 0.25}.Sanitize()
	if g.Bass != 0 || g.Mid != 1 || g.Treble != 0.25 {
		t.Fatalf("Sanitize() = %+v", g)
	}
}

func TestHex(t *testing.T) {
	if got := (RGB{255, 200, 5}).Hex(); got != "#ffc805" {
		t.Fatalf("Hex() = %q, want #ffc805", got)
	}
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("255, 100,50")
	if err != nil {
		t.Fatalf("ParseRGB() error = %v", err)
	}
	if c != (RGB{255, 100, 50}) {
		t.Fatalf("ParseRGB() = %v", c)
	}

	c, err = ParseRGB("300,0,-3")
	if err != nil {
		t.Fatalf("ParseRGB() error = %v", err)
	}
	if c != (RGB{255, 0, 0}) {
		t.Fatalf("ParseRGB() = %v, want clamped {255 0 0}", c)
	}

	for _, bad := range []string{"1,2", "a,b,c", ""} {
		if _, err := ParseRGB(bad); !errors.Is(err, core.ErrInvalidParameter) {
			t.Fatalf("ParseRGB(%q) error = %v, want ErrInvalidParameter", bad, err)
		}
	}
}

func TestQuickPreset(t *testing.T) {
	c, ok := QuickPreset(" Pink ")
	if !ok || c != (RGB{255, 200, 150}) {
		t.Fatalf("QuickPreset(pink) = %v, %v", c, ok)
	}
	if _, ok := QuickPreset("violet"); ok {
		t.Fatal("expected unknown preset")
	}
	names := QuickPresetNames()
	if len(names) != 4 || names[0] != "blue" || names[3] != "white" {
		t.Fatalf("QuickPresetNames() = %v", names)
	}
}
