package render

import (
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/sirupsen/logrus"
)

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	proc    core.ProcessorConfig
	seed    int64
	hasSeed bool
	log     *logrus.Entry
}

// WithSampleRate sets the session sample rate.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *sessionConfig) {
		core.WithSampleRate(sampleRate)(&cfg.proc)
	}
}

// WithBlockSize sets the internal block size in frames.
func WithBlockSize(frames int) Option {
	return func(cfg *sessionConfig) {
		core.WithBlockSize(frames)(&cfg.proc)
	}
}

// WithSeed makes the first Start reproducible. Later starts derive their
// seeds from it, so every run of the session is still independent.
func WithSeed(seed int64) Option {
	return func(cfg *sessionConfig) {
		cfg.seed = seed
		cfg.hasSeed = true
	}
}

// WithLogger sets the logger for session lifecycle events.
func WithLogger(log *logrus.Entry) Option {
	return func(cfg *sessionConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}
