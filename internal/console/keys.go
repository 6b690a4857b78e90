package console

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/mixer"
)

// Action tells the caller what a key did.
type Action int

const (
	// ActionNone means the key is not bound.
	ActionNone Action = iota
	// ActionChanged means a parameter was updated.
	ActionChanged
	// ActionStatus asks for the current state to be printed.
	ActionStatus
	// ActionQuit ends the session.
	ActionQuit
)

const (
	intensityStep  = 5
	rateStep       = 0.01
	depthStep      = 0.05
	randomnessStep = 0.01

	ctrlC = 0x03
)

type binding struct {
	key  byte
	help string
	fn   func(*control.Live)
}

func nudgeRGB(dr, dg, db int) func(*control.Live) {
	return func(l *control.Live) {
		l.Update(func(s *control.State) {
			s.RGB.R += dr
			s.RGB.G += dg
			s.RGB.B += db
		})
	}
}

func quick(name string) func(*control.Live) {
	return func(l *control.Live) {
		if c, ok := color.QuickPreset(name); ok {
			l.SetRGB(c)
		}
	}
}

var bindings = []binding{
	{'r', "red -5", nudgeRGB(-intensityStep, 0, 0)},
	{'R', "red +5", nudgeRGB(intensityStep, 0, 0)},
	{'g', "green -5", nudgeRGB(0, -intensityStep, 0)},
	{'G', "green +5", nudgeRGB(0, intensityStep, 0)},
	{'b', "blue -5", nudgeRGB(0, 0, -intensityStep)},
	{'B', "blue +5", nudgeRGB(0, 0, intensityStep)},
	{'1', "white preset", quick("white")},
	{'2', "pink preset", quick("pink")},
	{'3', "brown preset", quick("brown")},
	{'4', "blue preset", quick("blue")},
	{'o', "toggle organic", func(l *control.Live) {
		l.Update(func(s *control.State) {
			if s.Mode == mixer.Organic {
				s.Mode = mixer.Pure
			} else {
				s.Mode = mixer.Organic
			}
		})
	}},
	{'s', "next LFO shape", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.Shape = s.Organic.Shape.Next() })
	}},
	{'[', "LFO rate -0.01 Hz", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.RateHz -= rateStep })
	}},
	{']', "LFO rate +0.01 Hz", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.RateHz += rateStep })
	}},
	{'-', "depth -0.05", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.Depth -= depthStep })
	}},
	{'=', "depth +0.05", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.Depth += depthStep })
	}},
	{',', "randomness -0.01", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.Randomness -= randomnessStep })
	}},
	{'.', "randomness +0.01", func(l *control.Live) {
		l.Update(func(s *control.State) { s.Organic.Randomness += randomnessStep })
	}},
	{'0', "restart LFO at phase offset", func(l *control.Live) {
		l.SetPhaseOffset(l.Load().Organic.PhaseOffset)
	}},
}

// HandleKey applies the binding for key to live.
func HandleKey(live *control.Live, key byte) Action {
	switch key {
	case 'q', 'Q', ctrlC:
		return ActionQuit
	case 'p', 'P', '?':
		return ActionStatus
	}
	for _, b := range bindings {
		if b.key == key {
			b.fn(live)
			return ActionChanged
		}
	}
	return ActionNone
}

// Help lists the key bindings, one per line.
func Help() string {
	var sb strings.Builder
	for _, b := range bindings {
		fmt.Fprintf(&sb, "  %c  %s\n", b.key, b.help)
	}
	sb.WriteString("  p  print status\n")
	sb.WriteString("  q  quit\n")
	return sb.String()
}

// Status formats s on one line.
func Status(s control.State) string {
	line := fmt.Sprintf("%s %s  %s  %s", s.RGB, s.RGB.Hex(), s.Category(), s.Mode)
	if s.Mode == mixer.Organic {
		o := s.Organic
		line += fmt.Sprintf("  shape=%s rate=%.2fHz depth=%.2f random=%.2f offset=%.2f",
			o.Shape, o.RateHz, o.Depth, o.Randomness, o.PhaseOffset)
	}
	return line
}
