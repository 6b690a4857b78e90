package organic

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/noise"
)

// Shape selects the function applied to the raw oscillator value.
type Shape int

const (
	Sine Shape = iota
	Triangle
	Smoothstep
	NoiseBlend
)

var shapeNames = [...]string{
	Sine:       "sine",
	Triangle:   "triangle",
	Smoothstep: "smoothstep",
	NoiseBlend: "noise",
}

// Shapes lists all shapes in cycling order.
func Shapes() []Shape {
	return []Shape{Sine, Triangle, Smoothstep, NoiseBlend}
}

// String returns the lower-case shape name.
func (s Shape) String() string {
	if s.Valid() {
		return shapeNames[s]
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	return s >= Sine && s <= NoiseBlend
}

// Next returns the shape after s, wrapping to Sine.
func (s Shape) Next() Shape {
	if !s.Valid() || s == NoiseBlend {
		return Sine
	}
	return s + 1
}

// ParseShape accepts the names returned by String, case-insensitively.
// "noiseblend" and "noise-blend" are accepted for NoiseBlend.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return Sine, nil
	case "triangle", "tri":
		return Triangle, nil
	case "smoothstep", "smooth":
		return Smoothstep, nil
	case "noise", "noiseblend", "noise-blend":
		return NoiseBlend, nil
	default:
		return Sine, fmt.Errorf("unknown lfo shape %q: %w", name, core.ErrInvalidParameter)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unknown lfo shape %d: %w", int(s), core.ErrInvalidParameter)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	v, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

const (
	noiseBlendDry    = 0.85
	noiseBlendWet    = 0.15
	noiseBlendJitter = 0.2
)

// Apply shapes x in [-1, 1]. NoiseBlend draws one jitter value from src;
// the other shapes do not touch src.
func (s Shape) Apply(x float64, src noise.Source) float64 {
	switch s {
	case Triangle:
		return 2 * math.Asin(math.Sin(x)) / math.Pi
	case Smoothstep:
		t := core.Clamp((x+1)*0.5, 0, 1)
		return t*t*(3-2*t)*2 - 1
	case NoiseBlend:
		return noiseBlendDry*x + noiseBlendWet*noise.Bipolar(src)*noiseBlendJitter
	default:
		return x
	}
}
