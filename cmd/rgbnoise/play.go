package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/render"
	"github.com/cwbudde/algo-noise/internal/console"
	"github.com/cwbudde/algo-noise/internal/player"
	"github.com/sirupsen/logrus"
)

func runPlay(args []string, e *env) error {
	var (
		verbose bool
		voice   voiceFlags
	)
	fs := newFlagSet("play", e, &verbose)
	voice.register(fs)
	sampleRate := fs.Int("sample-rate", 44100, "sample rate in Hz")
	block := fs.Int("block", 512, "synthesis block size in frames")
	latency := fs.Duration("latency", player.DefaultBufferSize, "audio device buffer length")
	seed := fs.Int64("seed", 0, "noise seed for the first run (default random)")
	save := fs.String("save", "", "write the final parameters as a preset JSON file on exit")
	if err := parse(fs, args, e, &verbose); err != nil {
		return err
	}

	s, err := voice.state(fs)
	if err != nil {
		return err
	}
	live := control.NewLive(s)

	opts := []render.Option{
		render.WithSampleRate(float64(*sampleRate)),
		render.WithBlockSize(*block),
		render.WithLogger(logrus.NewEntry(e.log).WithField("component", "session")),
	}
	if isSet(fs, "seed") {
		opts = append(opts, render.WithSeed(*seed))
	}
	session, err := render.NewSession(live, opts...)
	if err != nil {
		return err
	}

	p, err := player.Open(session, *sampleRate,
		player.WithBufferSize(*latency),
		player.WithLogger(logrus.NewEntry(e.log).WithField("component", "player")),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			e.log.WithError(err).Warn("close player")
		}
	}()

	if err := session.Start(); err != nil {
		return err
	}
	defer session.Stop()
	p.Play()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(e.stderr, "Playing. Keys:\n%s\n", console.Help())
	host := console.NewHost(live, e.stdin, e.stderr, logrus.NewEntry(e.log).WithField("component", "console"))
	start := time.Now()
	if err := host.Run(ctx); err != nil {
		return err
	}
	p.Pause()
	if err := p.Err(); err != nil {
		return fmt.Errorf("playback: %w", err)
	}

	final := live.Load()
	e.log.WithFields(logrus.Fields{
		"elapsed": time.Since(start).Round(time.Second),
		"preset":  control.DefaultName(final),
	}).Info("stopped")

	if *save != "" {
		if err := savePreset(*save, live.Snapshot("", "")); err != nil {
			return err
		}
		e.log.WithField("path", *save).Info("saved preset")
	}
	return nil
}
