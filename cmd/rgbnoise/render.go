package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/render"
	"github.com/cwbudde/algo-noise/dsp/wav"
	"github.com/sirupsen/logrus"
)

const (
	minDuration     = 1.0
	maxDuration     = 30.0
	defaultDuration = 10.0
)

func runRender(args []string, e *env) error {
	var (
		verbose bool
		voice   voiceFlags
	)
	fs := newFlagSet("render", e, &verbose)
	voice.register(fs)
	duration := fs.Float64("duration", defaultDuration, "length in seconds (1..30)")
	sampleRate := fs.Int("sample-rate", 44100, "sample rate in Hz")
	seed := fs.Int64("seed", 0, "noise seed for a reproducible render (default random)")
	gain := fs.Float64("gain", 1, "output trim applied before encoding (0..1]")
	out := fs.String("o", "", "output path (default custom-noise-rgb(R,G,B)-<mode>.wav)")
	save := fs.String("save", "", "also write the parameters as a preset JSON file")
	analyze := fs.Bool("analyze", true, "print level and spectral slope of the result")
	if err := parse(fs, args, e, &verbose); err != nil {
		return err
	}

	s, err := voice.state(fs)
	if err != nil {
		return err
	}
	if *duration < minDuration || *duration > maxDuration {
		return fmt.Errorf("duration must be between %g and %g seconds: %g", minDuration, maxDuration, *duration)
	}
	if !(*gain > 0 && *gain <= 1) {
		return fmt.Errorf("gain must be in (0, 1]: %g", *gain)
	}

	req := render.RequestFromState(s, *sampleRate, *duration)
	if isSet(fs, "seed") {
		req.Seed = seed
	}

	path := *out
	if path == "" {
		path = s.FileName()
	}
	log := e.log.WithFields(logrus.Fields{
		"rgb":      s.RGB.String(),
		"category": s.Category().String(),
		"mode":     s.Mode.String(),
		"duration": *duration,
	})
	log.Debug("rendering")

	buf, err := render.Render(req)
	if err != nil {
		return err
	}
	if *gain != 1 {
		buf.Scale(*gain)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := wav.Encode(w, buf, *sampleRate); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	log.WithFields(logrus.Fields{
		"path":   path,
		"frames": buf.Frames(),
		"bytes":  wav.Size(buf.Frames()),
	}).Info("wrote file")

	if *save != "" {
		if err := savePreset(*save, control.PresetFromState(s, "", "")); err != nil {
			return err
		}
		log.WithField("path", *save).Info("saved preset")
	}

	if *analyze {
		return printReport(e.stdout, buf.Left, buf.Right, float64(*sampleRate))
	}
	return nil
}
