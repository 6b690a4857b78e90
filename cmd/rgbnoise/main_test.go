package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
)

func testEnv() (*env, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &env{
		stdin:  strings.NewReader(""),
		stdout: &stdout,
		stderr: &stderr,
		log:    newLogger(io.Discard),
	}, &stdout, &stderr
}

func parseVoice(t *testing.T, args ...string) (control.State, error) {
	t.Helper()
	var v voiceFlags
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	v.register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return v.state(fs)
}

func TestVoiceFlagsDefaults(t *testing.T) {
	s, err := parseVoice(t)
	if err != nil {
		t.Fatalf("state() error = %v", err)
	}
	if s != control.DefaultState().Sanitize() {
		t.Fatalf("state() = %+v, want defaults", s)
	}
}

func TestVoiceFlagsOverrides(t *testing.T) {
	s, err := parseVoice(t, "-preset", "pink", "-organic", "-shape", "smoothstep", "-rate", "0.3", "-depth", "2", "-phase", "1.25")
	if err != nil {
		t.Fatalf("state() error = %v", err)
	}
	pink, _ := color.QuickPreset("pink")
	if s.RGB != pink || s.Mode != mixer.Organic || s.Organic.Shape != organic.Smoothstep {
		t.Fatalf("state() = %+v", s)
	}
	if s.Organic.RateHz != 0.3 || s.Organic.Depth != 1 || s.Organic.PhaseOffset != 0.25 {
		t.Fatalf("organic = %+v", s.Organic)
	}

	s, err = parseVoice(t, "-preset", "pink", "-rgb", "1,2,3", "-mode", "organic")
	if err != nil {
		t.Fatalf("state() error = %v", err)
	}
	if s.RGB != (color.RGB{R: 1, G: 2, B: 3}) || s.Mode != mixer.Organic {
		t.Fatalf("state() = %+v", s)
	}
}

func TestVoiceFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"-preset", "teal"},
		{"-rgb", "1,2"},
		{"-mode", "loud"},
		{"-shape", "square"},
		{"-load", filepath.Join(t.TempDir(), "missing.json")},
	} {
		if _, err := parseVoice(t, args...); err == nil {
			t.Fatalf("state(%v) error = nil", args)
		}
	}
}

func TestPresetFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	st := control.DefaultState()
	st.RGB = color.RGB{R: 10, G: 20, B: 30}
	st.Mode = mixer.Organic
	st.Organic.Shape = organic.NoiseBlend
	if err := savePreset(path, control.PresetFromState(st, "1", "mine")); err != nil {
		t.Fatalf("savePreset() error = %v", err)
	}

	s, err := parseVoice(t, "-load", path, "-depth", "0.9")
	if err != nil {
		t.Fatalf("state() error = %v", err)
	}
	st.Organic.Depth = 0.9
	if s != st.Sanitize() {
		t.Fatalf("loaded state = %+v, want %+v", s, st.Sanitize())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if raw["lfoShape"] != "noise" || raw["isOrganic"] != true {
		t.Fatalf("preset JSON = %s", data)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	e, _, stderr := testEnv()
	if code := run([]string{"dance"}, e); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Fatalf("stderr = %q", stderr.String())
	}
	if code := run(nil, e); code != 2 {
		t.Fatalf("run(nil) = %d, want 2", code)
	}
}

func TestRunClassify(t *testing.T) {
	e, stdout, _ := testEnv()
	if code := run([]string{"classify", "-organic", "brown", "0,0,0"}, e); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	out := stdout.String()
	for _, want := range []string{"Brown-ish Noise", "Near Silence", "custom-noise-rgb(255,100,50)-organic.wav"} {
		if !strings.Contains(out, want) {
			t.Fatalf("classify output missing %q:\n%s", want, out)
		}
	}

	if code := run([]string{"classify", "teal"}, e); code != 1 {
		t.Fatalf("run(teal) = %d, want 1", code)
	}
}

func TestRunPresets(t *testing.T) {
	e, stdout, _ := testEnv()
	if code := run([]string{"presets"}, e); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	for _, name := range color.QuickPresetNames() {
		if !strings.Contains(stdout.String(), name) {
			t.Fatalf("presets output missing %q", name)
		}
	}
}

func TestRunRenderAndInfo(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "noise.wav")
	save := filepath.Join(dir, "noise.json")

	e, stdout, _ := testEnv()
	code := run([]string{"render", "-preset", "brown", "-organic", "-duration", "1",
		"-sample-rate", "22050", "-seed", "3", "-gain", "0.5", "-o", out, "-save", save}, e)
	if code != 0 {
		t.Fatalf("render = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Slope") || !strings.Contains(stdout.String(), "LUFS") {
		t.Fatalf("render report missing:\n%s", stdout.String())
	}
	fi, err := os.Stat(out)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if fi.Size() != 44+22050*4 {
		t.Fatalf("file size = %d, want %d", fi.Size(), 44+22050*4)
	}
	if _, err := os.Stat(save); err != nil {
		t.Fatalf("preset not saved: %v", err)
	}

	channels, sr, bits, err := decodeWAV(out)
	if err != nil {
		t.Fatalf("decodeWAV() error = %v", err)
	}
	if sr != 22050 || bits != 16 || len(channels) != 2 || len(channels[0]) != 22050 {
		t.Fatalf("decoded %d Hz, %d bit, %d ch", sr, bits, len(channels))
	}
	for _, ch := range channels {
		for i, v := range ch {
			if v < -0.5 || v > 0.5 {
				t.Fatalf("sample %d = %v exceeds the 0.5 trim", i, v)
			}
		}
	}

	stdout.Reset()
	if code := run([]string{"info", out}, e); code != 0 {
		t.Fatalf("info = %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "22050 Hz, 16-bit, 2 channel(s)") {
		t.Fatalf("info output:\n%s", stdout.String())
	}
}

func TestRunRenderRejectsDuration(t *testing.T) {
	e, _, _ := testEnv()
	for _, d := range []string{"0.5", "31"} {
		if code := run([]string{"render", "-duration", d, "-o", filepath.Join(t.TempDir(), "x.wav")}, e); code != 1 {
			t.Fatalf("render -duration %s = %d, want 1", d, code)
		}
	}
	if code := run([]string{"render", "-gain", "2"}, e); code != 1 {
		t.Fatalf("render -gain 2 = %d, want 1", code)
	}
	if code := run([]string{"render", "-bogus"}, e); code != 2 {
		t.Fatalf("render -bogus = %d, want 2", code)
	}
}
