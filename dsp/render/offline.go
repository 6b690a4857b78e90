package render

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/buffer"
	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/mixer"
)

// maxFrames bounds a single render to what a 16-bit stereo WAV can hold.
const maxFrames = (math.MaxUint32 - 36) / 4

// Request fully describes an offline render.
type Request struct {
	Params          mixer.Params
	SampleRate      int
	DurationSeconds float64
	// BlockSize is the internal block length; 0 selects the default.
	BlockSize int
	// Seed makes the render reproducible; nil draws a random seed.
	Seed *int64
}

// RequestFromState builds a request from user-facing parameters.
func RequestFromState(s control.State, sampleRate int, durationSeconds float64) Request {
	return Request{
		Params:          s.MixerParams(),
		SampleRate:      sampleRate,
		DurationSeconds: durationSeconds,
	}
}

// Frames returns the number of frames the request renders.
func (r Request) Frames() int {
	return int(math.Round(float64(r.SampleRate) * r.DurationSeconds))
}

// Validate rejects non-positive or non-finite sample rates and durations.
func (r Request) Validate() error {
	if r.SampleRate <= 0 {
		return fmt.Errorf("render sample rate must be > 0: %d: %w", r.SampleRate, core.ErrInvalidParameter)
	}
	if r.DurationSeconds <= 0 || !core.IsFinite(r.DurationSeconds) {
		return fmt.Errorf("render duration must be > 0 and finite: %f: %w", r.DurationSeconds, core.ErrInvalidParameter)
	}
	if r.BlockSize < 0 {
		return fmt.Errorf("render block size must be >= 0: %d: %w", r.BlockSize, core.ErrInvalidParameter)
	}
	n := r.Frames()
	if n < 1 {
		return fmt.Errorf("render of %f s at %d Hz is shorter than one frame: %w",
			r.DurationSeconds, r.SampleRate, core.ErrInvalidParameter)
	}
	if n > maxFrames {
		return fmt.Errorf("render of %d frames exceeds %d: %w", n, maxFrames, core.ErrInvalidParameter)
	}
	return nil
}

// Render runs the mixer once over the whole request and returns the
// buffer. Parameters are taken from the request value; the call shares no
// state with any running Session.
func Render(req Request) (*buffer.Stereo, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	proc := core.ApplyProcessorOptions(
		core.WithSampleRate(float64(req.SampleRate)),
		core.WithBlockSize(req.BlockSize),
	)

	var opts []mixer.Option
	if req.Seed != nil {
		opts = append(opts, mixer.WithSeed(*req.Seed))
	}
	m, err := mixer.New(proc.SampleRate, opts...)
	if err != nil {
		return nil, err
	}

	p := req.Params.Sanitize()
	m.SetPhaseOffset(p.Organic.PhaseOffset)

	out := buffer.NewStereo(req.Frames())
	for start := 0; start < out.Frames(); start += proc.BlockSize {
		end := start + proc.BlockSize
		if end > out.Frames() {
			end = out.Frames()
		}
		if err := m.ProcessBlock(out.Left[start:end], out.Right[start:end], p); err != nil {
			return nil, err
		}
	}
	return out, nil
}
