package mixer

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

// Mode selects the synthesis variant.
type Mode int

const (
	// Pure renders one stream per colour, no LFO, centered.
	Pure Mode = iota
	// Organic renders layered streams with LFO movement and smoothing.
	Organic
)

// String returns "pure" or "organic".
func (m Mode) String() string {
	if m == Organic {
		return "organic"
	}
	return "pure"
}

// ParseMode accepts "pure" or "organic", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pure":
		return Pure, nil
	case "organic":
		return Organic, nil
	default:
		return Pure, fmt.Errorf("unknown mode %q: %w", s, core.ErrInvalidParameter)
	}
}

// Params is everything the mixer reads on each block.
type Params struct {
	Gains   color.Gains
	Organic organic.Params
	Mode    Mode
}

// DefaultParams returns full-scale gains (white noise), default organic
// movement and Pure mode.
func DefaultParams() Params {
	return Params{
		Gains:   color.RGB{R: 255, G: 255, B: 255}.Gains(),
		Organic: organic.DefaultParams(),
		Mode:    Pure,
	}
}

// Sanitize clamps all fields into range.
func (p Params) Sanitize() Params {
	p.Gains = p.Gains.Sanitize()
	p.Organic = p.Organic.Sanitize()
	if p.Mode != Organic {
		p.Mode = Pure
	}
	return p
}
