// Package color maps red/green/blue intensities onto bass/mid/treble noise
// gains and names the resulting noise colour.
package color

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/core"
)

// MaxIntensity is the upper bound of a channel intensity.
const MaxIntensity = 255

// RGB holds three channel intensities in [0, 255]: red drives bass,
// green drives mids and blue drives treble.
type RGB struct {
	R, G, B int
}

// Gains holds the bass/mid/treble multipliers in [0, 1].
type Gains struct {
	Bass   float64
	Mid    float64
	Treble float64
}

// Clamped returns c with every channel limited to [0, 255].
func (c RGB) Clamped() RGB {
	return RGB{
		R: core.ClampInt(c.R, 0, MaxIntensity),
		G: core.ClampInt(c.G, 0, MaxIntensity),
		B: core.ClampInt(c.B, 0, MaxIntensity),
	}
}

// Gains converts the intensities to gain multipliers as value/255.
func (c RGB) Gains() Gains {
	c = c.Clamped()
	return Gains{
		Bass:   float64(c.R) / MaxIntensity,
		Mid:    float64(c.G) / MaxIntensity,
		Treble: float64(c.B) / MaxIntensity,
	}
}

// Hex returns the colour as a lower-case #rrggbb string.
func (c RGB) Hex() string {
	c = c.Clamped()
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String formats the triple as RGB(r, g, b).
func (c RGB) String() string {
	return fmt.Sprintf("RGB(%d, %d, %d)", c.R, c.G, c.B)
}

// Sanitize limits every gain to [0, 1]; NaN becomes 0.
func (g Gains) Sanitize() Gains {
	return Gains{
		Bass:   core.Clamp(g.Bass, 0, 1),
		Mid:    core.Clamp(g.Mid, 0, 1),
		Treble: core.Clamp(g.Treble, 0, 1),
	}
}

// ParseRGB parses "r,g,b". Values outside [0, 255] are clamped.
func ParseRGB(s string) (RGB, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RGB{}, fmt.Errorf("rgb triple must have 3 components: %q: %w", s, core.ErrInvalidParameter)
	}
	var v [3]int
	for i, p := range parts {
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &v[i]); err != nil {
			return RGB{}, fmt.Errorf("rgb component %q: %w", p, core.ErrInvalidParameter)
		}
	}
	return RGB{R: v[0], G: v[1], B: v[2]}.Clamped(), nil
}

var quickPresets = map[string]RGB{
	"white": {R: 255, G: 255, B: 255},
	"pink":  {R: 255, G: 200, B: 150},
	"brown": {R: 255, G: 100, B: 50},
	"blue":  {R: 150, G: 200, B: 255},
}

// QuickPreset returns one of the built-in colour presets by name
// (white, pink, brown, blue), case-insensitively.
func QuickPreset(name string) (RGB, bool) {
	c, ok := quickPresets[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// QuickPresetNames returns the built-in preset names in sorted order.
func QuickPresetNames() []string {
	names := make([]string, 0, len(quickPresets))
	for name := range quickPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
