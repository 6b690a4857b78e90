package console

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

func TestHandleKeyIntensity(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	if got := HandleKey(live, 'r'); got != ActionChanged {
		t.Fatalf("HandleKey('r') = %v, want ActionChanged", got)
	}
	HandleKey(live, 'g')
	HandleKey(live, 'g')
	HandleKey(live, 'B')
	want := color.RGB{R: 250, G: 245, B: 255}
	if got := live.Load().RGB; got != want {
		t.Fatalf("RGB = %v, want %v", got, want)
	}
}

func TestHandleKeyQuickPreset(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	HandleKey(live, '3')
	brown, _ := color.QuickPreset("brown")
	if got := live.Load().RGB; got != brown {
		t.Fatalf("RGB = %v, want %v", got, brown)
	}
}

func TestHandleKeyOrganic(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	HandleKey(live, 'o')
	if live.Load().Mode != mixer.Organic {
		t.Fatal("'o' did not enable organic mode")
	}
	HandleKey(live, 's')
	if live.Load().Organic.Shape != organic.Triangle {
		t.Fatalf("shape = %v, want triangle", live.Load().Organic.Shape)
	}
	HandleKey(live, 'o')
	if live.Load().Mode != mixer.Pure {
		t.Fatal("second 'o' did not return to pure mode")
	}
}

func TestHandleKeyLFOParameters(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	HandleKey(live, ']')
	HandleKey(live, '=')
	HandleKey(live, '.')
	o := live.Load().Organic
	if math.Abs(o.RateHz-0.11) > 1e-12 || math.Abs(o.Depth-0.55) > 1e-12 || math.Abs(o.Randomness-0.06) > 1e-12 {
		t.Fatalf("organic = %+v", o)
	}

	for i := 0; i < 100; i++ {
		HandleKey(live, '[')
		HandleKey(live, '-')
		HandleKey(live, ',')
	}
	o = live.Load().Organic
	if o.RateHz != organic.MinRateHz || o.Depth != 0 || o.Randomness != 0 {
		t.Fatalf("organic after many decrements = %+v", o)
	}
}

func TestHandleKeyRestartBumpsEpoch(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	before := live.PhaseEpoch()
	HandleKey(live, '0')
	if live.PhaseEpoch() == before {
		t.Fatal("'0' did not restart the LFO")
	}
}

func TestHandleKeyControlKeys(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	tests := []struct {
		key  byte
		want Action
	}{
		{'q', ActionQuit},
		{0x03, ActionQuit},
		{'p', ActionStatus},
		{'x', ActionNone},
	}
	for _, tt := range tests {
		if got := HandleKey(live, tt.key); got != tt.want {
			t.Fatalf("HandleKey(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if live.Load() != control.DefaultState().Sanitize() {
		t.Fatal("control keys changed the state")
	}
}

func TestStatus(t *testing.T) {
	s := control.DefaultState()
	line := Status(s)
	if !strings.Contains(line, "#ffffff") || !strings.Contains(line, "White Noise") {
		t.Fatalf("Status() = %q", line)
	}
	s.Mode = mixer.Organic
	if line := Status(s); !strings.Contains(line, "shape=sine") {
		t.Fatalf("organic Status() = %q", line)
	}
}

func TestHelpListsBindings(t *testing.T) {
	h := Help()
	for _, want := range []string{"red -5", "toggle organic", "quit"} {
		if !strings.Contains(h, want) {
			t.Fatalf("Help() missing %q", want)
		}
	}
}

func TestHostRun(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	var out bytes.Buffer
	h := NewHost(live, strings.NewReader("rroq"), &out, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s := live.Load()
	if s.RGB.R != 245 || s.Mode != mixer.Organic {
		t.Fatalf("state after keys = %+v", s)
	}
	if lines := strings.Count(out.String(), "\r\n"); lines != 4 {
		t.Fatalf("printed %d lines, want 4:\n%s", lines, out.String())
	}
}

func TestHostRunEndOfInput(t *testing.T) {
	live := control.NewLive(control.DefaultState())
	var out bytes.Buffer
	h := NewHost(live, strings.NewReader("R"), &out, nil)
	if err := h.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}
