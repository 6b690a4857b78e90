package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

// voiceFlags are the sound parameters shared by render and play.
type voiceFlags struct {
	rgb        string
	preset     string
	load       string
	mode       string
	organic    bool
	shape      string
	rate       float64
	depth      float64
	randomness float64
	phase      float64
}

func (v *voiceFlags) register(fs *flag.FlagSet) {
	d := organic.DefaultParams()
	fs.StringVar(&v.rgb, "rgb", "", "colour as r,g,b with each value in 0..255")
	fs.StringVar(&v.preset, "preset", "", "built-in colour: white, pink, brown or blue")
	fs.StringVar(&v.load, "load", "", "read parameters from a preset JSON file")
	fs.StringVar(&v.mode, "mode", "", "pure or organic")
	fs.BoolVar(&v.organic, "organic", false, "shorthand for -mode organic")
	fs.StringVar(&v.shape, "shape", d.Shape.String(), "LFO shape: sine, triangle, smoothstep or noise")
	fs.Float64Var(&v.rate, "rate", d.RateHz, "LFO rate in Hz (0.01..0.5)")
	fs.Float64Var(&v.depth, "depth", d.Depth, "LFO pan depth (0..1)")
	fs.Float64Var(&v.randomness, "randomness", d.Randomness, "LFO jitter (0..0.2)")
	fs.Float64Var(&v.phase, "phase", d.PhaseOffset, "LFO start position as a fraction of a cycle")
}

// state builds the parameter set. A loaded preset is the base; the colour
// preset, -rgb and any explicitly set flag override it in that order.
func (v *voiceFlags) state(fs *flag.FlagSet) (control.State, error) {
	s := control.DefaultState()
	if v.load != "" {
		p, err := loadPreset(v.load)
		if err != nil {
			return s, err
		}
		s = p.State()
	}
	if v.preset != "" {
		c, ok := color.QuickPreset(v.preset)
		if !ok {
			return s, fmt.Errorf("unknown colour preset %q", v.preset)
		}
		s.RGB = c
	}
	if v.rgb != "" {
		c, err := color.ParseRGB(v.rgb)
		if err != nil {
			return s, err
		}
		s.RGB = c
	}

	set := setFlags(fs)
	if set["mode"] {
		m, err := mixer.ParseMode(v.mode)
		if err != nil {
			return s, err
		}
		s.Mode = m
	}
	if set["organic"] {
		if v.organic {
			s.Mode = mixer.Organic
		} else {
			s.Mode = mixer.Pure
		}
	}
	if set["shape"] {
		sh, err := organic.ParseShape(v.shape)
		if err != nil {
			return s, err
		}
		s.Organic.Shape = sh
	}
	if set["rate"] {
		s.Organic.RateHz = v.rate
	}
	if set["depth"] {
		s.Organic.Depth = v.depth
	}
	if set["randomness"] {
		s.Organic.Randomness = v.randomness
	}
	if set["phase"] {
		s.Organic.PhaseOffset = v.phase
	}
	return s.Sanitize(), nil
}

func setFlags(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func isSet(fs *flag.FlagSet, name string) bool {
	return setFlags(fs)[name]
}

func loadPreset(path string) (control.Preset, error) {
	var p control.Preset
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read preset: %w", err)
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}

func savePreset(path string, p control.Preset) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write preset: %w", err)
	}
	return nil
}
