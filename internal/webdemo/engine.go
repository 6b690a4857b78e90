package webdemo

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/color"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/organic"
	"github.com/cwbudde/algo-noise/dsp/render"
	"github.com/cwbudde/algo-noise/dsp/wav"
)

// OrganicParams mirrors the browser's organic controls.
type OrganicParams struct {
	RateHz      float64
	Depth       float64
	Shape       string
	Randomness  float64
	PhaseOffset float64
}

// Info describes the current colour for display.
type Info struct {
	Category string
	Hex      string
	Name     string
	FileName string
}

// Engine runs the noise generator for the browser demo.
type Engine struct {
	sampleRate float64
	live       *control.Live
	session    *render.Session
	block      *buffer.Stereo
	analyzer   *analyzer
}

// NewEngine creates an idle engine at sampleRate.
func NewEngine(sampleRate float64) (*Engine, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}
	live := control.NewLive(control.DefaultState())
	session, err := render.NewSession(live, render.WithSampleRate(sampleRate))
	if err != nil {
		return nil, err
	}
	return &Engine{
		sampleRate: sampleRate,
		live:       live,
		session:    session,
		block:      buffer.NewStereo(0),
		analyzer:   newAnalyzer(sampleRate),
	}, nil
}

// SampleRate returns the engine sample rate in Hz.
func (e *Engine) SampleRate() float64 { return e.sampleRate }

// State returns the current parameters.
func (e *Engine) State() control.State { return e.live.Load() }

// SetRGB sets the three intensities (0..255).
func (e *Engine) SetRGB(r, g, b int) {
	e.live.SetRGB(color.RGB{R: r, G: g, B: b})
}

// SetOrganicMode switches between Organic and Pure.
func (e *Engine) SetOrganicMode(on bool) {
	if on {
		e.live.SetMode(mixer.Organic)
		return
	}
	e.live.SetMode(mixer.Pure)
}

// SetOrganic updates the LFO parameters. The phase offset is applied
// without restarting the LFO; use SetPhaseOffset for that.
func (e *Engine) SetOrganic(p OrganicParams) error {
	shape, err := organic.ParseShape(p.Shape)
	if err != nil {
		return err
	}
	e.live.Update(func(s *control.State) {
		s.Organic.RateHz = p.RateHz
		s.Organic.Depth = p.Depth
		s.Organic.Shape = shape
		s.Organic.Randomness = p.Randomness
	})
	return nil
}

// SetPhaseOffset restarts the LFO at offset (fraction of a cycle).
func (e *Engine) SetPhaseOffset(offset float64) {
	e.live.SetPhaseOffset(offset)
}

// SetRunning starts or stops the stream.
func (e *Engine) SetRunning(running bool) error {
	if running {
		return e.session.Start()
	}
	e.session.Stop()
	e.analyzer.reset()
	return nil
}

// Running reports whether the stream is active.
func (e *Engine) Running() bool { return e.session.Running() }

// Render fills dst with interleaved L,R frames. A trailing odd sample is
// set to 0.
func (e *Engine) Render(dst []float32) error {
	frames := len(dst) / 2
	e.block.Resize(frames)
	if err := e.session.Process(e.block.Left, e.block.Right); err != nil {
		return err
	}
	e.block.InterleaveFloat32(dst)
	if len(dst)%2 == 1 {
		dst[len(dst)-1] = 0
	}
	e.analyzer.push(e.block)
	return nil
}

// ExportWAV renders seconds of audio from the current parameters with a
// fresh generator and returns a WAV file.
func (e *Engine) ExportWAV(seconds float64) ([]byte, error) {
	req := render.RequestFromState(e.live.Load(), int(e.sampleRate), seconds)
	buf, err := render.Render(req)
	if err != nil {
		return nil, err
	}
	return wav.EncodeBytes(buf, req.SampleRate)
}

// Info returns the category, hex colour, default preset name and
// suggested file name of the current parameters.
func (e *Engine) Info() Info {
	s := e.live.Load()
	return Info{
		Category: s.Category().String(),
		Hex:      s.RGB.Hex(),
		Name:     control.DefaultName(s),
		FileName: s.FileName(),
	}
}

// PresetJSON returns the current parameters as a preset record.
func (e *Engine) PresetJSON(name string) (string, error) {
	data, err := json.Marshal(e.live.Snapshot("", name))
	if err != nil {
		return "", fmt.Errorf("encode preset: %w", err)
	}
	return string(data), nil
}

// LoadPresetJSON replaces the current parameters with a preset record.
func (e *Engine) LoadPresetJSON(data string) error {
	var p control.Preset
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return fmt.Errorf("decode preset: %w", err)
	}
	e.live.Apply(p)
	return nil
}

// SpectrumCurveDB returns the spectrum of recent output in dB at freqs.
func (e *Engine) SpectrumCurveDB(freqs []float64) []float64 {
	return e.analyzer.curveDB(freqs)
}

// SpectralSlope returns the dB/octave slope of recent output.
func (e *Engine) SpectralSlope() (float64, bool) {
	return e.analyzer.slope()
}
