package control

import (
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

// State is the user-facing parameter set: intensities rather than gains.
type State struct {
	RGB     color.RGB
	Organic organic.Params
	Mode    mixer.Mode
}

// DefaultState returns white noise in Pure mode with default organic movement.
func DefaultState() State {
	return State{
		RGB:     color.RGB{R: 255, G: 255, B: 255},
		Organic: organic.DefaultParams(),
		Mode:    mixer.Pure,
	}
}

// Sanitize clamps every field into range.
func (s State) Sanitize() State {
	s.RGB = s.RGB.Clamped()
	s.Organic = s.Organic.Sanitize()
	if s.Mode != mixer.Organic {
		s.Mode = mixer.Pure
	}
	return s
}

// MixerParams derives the mixer parameters from s.
func (s State) MixerParams() mixer.Params {
	return mixer.Params{
		Gains:   s.RGB.Gains(),
		Organic: s.Organic,
		Mode:    s.Mode,
	}.Sanitize()
}

// Category classifies the colour of s.
func (s State) Category() color.Category {
	return color.Classify(s.RGB)
}

// VariantName is the lower-case shape name in Organic mode and "pure" otherwise.
func (s State) VariantName() string {
	if s.Mode == mixer.Organic {
		return s.Organic.Shape.String()
	}
	return mixer.Pure.String()
}

// FileName is the suggested export name,
// custom-noise-rgb(R,G,B)-<pure|organic>.wav.
func (s State) FileName() string {
	c := s.RGB.Clamped()
	return fmt.Sprintf("custom-noise-rgb(%d,%d,%d)-%s.wav", c.R, c.G, c.B, s.Mode)
}
