package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/cwbudde/algo-noise/dsp/control"
	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-noise/dsp/mixer"
	"github.com/cwbudde/algo-noise/dsp/noise"
	"github.com/sirupsen/logrus"
)

// Session renders a continuous stream from live parameters.
//
// Start and Stop are idempotent. Stop waits for an in-flight Process call,
// so once it returns no further samples are produced and the generator
// state is released. Parameter writes go through control.Live and never
// take the session lock.
type Session struct {
	live *control.Live
	cfg  core.ProcessorConfig
	log  *logrus.Entry

	mu       sync.Mutex
	mixer    *mixer.Mixer
	epoch    uint64
	nextSeed func() int64
	started  int
}

// NewSession creates an idle session reading parameters from live.
func NewSession(live *control.Live, opts ...Option) (*Session, error) {
	if live == nil {
		return nil, fmt.Errorf("session needs a parameter block: %w", core.ErrInvalidParameter)
	}
	cfg := sessionConfig{proc: core.DefaultProcessorConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.log = logrus.NewEntry(l)
	}

	nextSeed := noise.RandomSeed
	if cfg.hasSeed {
		src := noise.NewSource(cfg.seed)
		first := true
		nextSeed = func() int64 {
			if first {
				first = false
				return cfg.seed
			}
			return src.Int63()
		}
	}

	return &Session{
		live:     live,
		cfg:      cfg.proc,
		log:      cfg.log,
		nextSeed: nextSeed,
	}, nil
}

// Config returns the session's sample rate and block size.
func (s *Session) Config() core.ProcessorConfig { return s.cfg }

// Running reports whether the session is producing audio.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mixer != nil
}

// Start begins a freshly seeded stream. It is a no-op while running.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mixer != nil {
		return nil
	}

	seed := s.nextSeed()
	m, err := mixer.New(s.cfg.SampleRate, mixer.WithSeed(seed))
	if err != nil {
		return err
	}
	s.epoch = s.live.PhaseEpoch()
	m.SetPhaseOffset(s.live.Load().Organic.PhaseOffset)
	s.mixer = m
	s.started++

	s.log.WithFields(logrus.Fields{
		"sample_rate": s.cfg.SampleRate,
		"block_size":  s.cfg.BlockSize,
		"seed":        seed,
		"run":         s.started,
	}).Info("session started")
	return nil
}

// Stop ends the stream and releases the generator state. It is a no-op
// while idle.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mixer == nil {
		return
	}
	s.mixer = nil
	s.log.WithField("run", s.started).Info("session stopped")
}

// Process fills left and right with the next frames of the stream. Any
// positive length is accepted; work is split into blocks of the configured
// size and parameters are re-read before each block. While idle the output
// is silence.
func (s *Session) Process(left, right []float64) error {
	if len(left) != len(right) {
		return fmt.Errorf("session channel length mismatch: left %d, right %d: %w",
			len(left), len(right), core.ErrInvalidBuffer)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mixer == nil {
		for i := range left {
			left[i] = 0
			right[i] = 0
		}
		return nil
	}

	for start := 0; start < len(left); start += s.cfg.BlockSize {
		end := start + s.cfg.BlockSize
		if end > len(left) {
			end = len(left)
		}

		if ep := s.live.PhaseEpoch(); ep != s.epoch {
			s.epoch = ep
			s.mixer.SetPhaseOffset(s.live.Load().Organic.PhaseOffset)
		}
		p := s.live.Load().MixerParams()
		if err := s.mixer.ProcessBlock(left[start:end], right[start:end], p); err != nil {
			return err
		}
	}
	return nil
}

// Phase returns the LFO phase of the running stream, or 0 when idle.
func (s *Session) Phase() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mixer == nil {
		return 0
	}
	return s.mixer.Phase()
}
