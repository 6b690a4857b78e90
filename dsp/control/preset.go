package control

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

// Preset is a named snapshot of the full parameter set. Its JSON shape is
// the one used by the preset store.
type Preset struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Red         int           `json:"red"`
	Green       int           `json:"green"`
	Blue        int           `json:"blue"`
	IsOrganic   bool          `json:"isOrganic"`
	LFORate     float64       `json:"lfoRate"`
	LFODepth    float64       `json:"lfoDepth"`
	LFOShape    organic.Shape `json:"lfoShape"`
	Randomness  float64       `json:"randomness"`
	PhaseOffset float64       `json:"phaseOffset"`
}

// DefaultName builds "<category> (<shape or pure>)", e.g. "Pink-ish Noise (sine)".
func DefaultName(s State) string {
	return fmt.Sprintf("%s (%s)", s.Category(), s.VariantName())
}

// NewID returns a preset id derived from the current time in milliseconds.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// PresetFromState converts a state into a preset record. Empty id and name
// are filled with NewID and DefaultName.
func PresetFromState(s State, id, name string) Preset {
	s = s.Sanitize()
	if id == "" {
		id = NewID()
	}
	if name == "" {
		name = DefaultName(s)
	}
	return Preset{
		ID:          id,
		Name:        name,
		Red:         s.RGB.R,
		Green:       s.RGB.G,
		Blue:        s.RGB.B,
		IsOrganic:   s.Mode == mixer.Organic,
		LFORate:     s.Organic.RateHz,
		LFODepth:    s.Organic.Depth,
		LFOShape:    s.Organic.Shape,
		Randomness:  s.Organic.Randomness,
		PhaseOffset: s.Organic.PhaseOffset,
	}
}

// State converts the preset back into a sanitized state.
func (p Preset) State() State {
	mode := mixer.Pure
	if p.IsOrganic {
		mode = mixer.Organic
	}
	return State{
		RGB: color.RGB{R: p.Red, G: p.Green, B: p.Blue},
		Organic: organic.Params{
			RateHz:      p.LFORate,
			Depth:       p.LFODepth,
			Shape:       p.LFOShape,
			Randomness:  p.Randomness,
			PhaseOffset: p.PhaseOffset,
		},
		Mode: mode,
	}.Sanitize()
}

// Snapshot captures the live parameters into a preset.
func (l *Live) Snapshot(id, name string) Preset {
	return PresetFromState(l.Load(), id, name)
}

// Apply replaces the live parameters with the preset's.
func (l *Live) Apply(p Preset) {
	l.Store(p.State())
}
