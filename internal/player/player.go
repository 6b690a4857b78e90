package player

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/sirupsen/logrus"
)

// DefaultBufferSize is the device buffer length used when none is set.
const DefaultBufferSize = 100 * time.Millisecond

// Option configures Open.
type Option func(*config)

type config struct {
	bufferSize time.Duration
	log        *logrus.Entry
}

// WithBufferSize sets the device buffer length. Smaller values lower the
// latency of live parameter changes at the risk of underruns.
func WithBufferSize(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.bufferSize = d
		}
	}
}

// WithLogger sets the logger for device events.
func WithLogger(log *logrus.Entry) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// Player plays a Source on the default output device. Only one Player may
// exist per process.
type Player struct {
	ctx    *oto.Context
	stream *Stream
	log    *logrus.Entry

	mu      sync.Mutex
	player  *oto.Player
	playing bool
}

// Open initialises the audio device at sampleRate and prepares playback of
// src. Playback begins with Play.
func Open(src Source, sampleRate int, opts ...Option) (*Player, error) {
	if src == nil {
		return nil, fmt.Errorf("player needs a source")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("player sample rate must be > 0: %d", sampleRate)
	}
	cfg := config{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.log = logrus.NewEntry(l)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   cfg.bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	stream := NewStream(src)
	p := &Player{
		ctx:    ctx,
		stream: stream,
		log:    cfg.log,
		player: ctx.NewPlayer(stream),
	}
	p.log.WithFields(logrus.Fields{
		"sample_rate": sampleRate,
		"buffer":      cfg.bufferSize,
	}).Debug("audio device ready")
	return p, nil
}

// Play starts or resumes playback.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player == nil || p.playing {
		return
	}
	p.player.Play()
	p.playing = true
	p.log.Debug("playback started")
}

// Pause suspends playback; the source is not pulled while paused.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player == nil || !p.playing {
		return
	}
	p.player.Pause()
	p.playing = false
	p.log.Debug("playback paused")
}

// Playing reports whether the device is pulling audio.
func (p *Player) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Err returns the last error from the source, if any.
func (p *Player) Err() error {
	if err := p.stream.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player == nil {
		return nil
	}
	return p.player.Err()
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.player == nil {
		return nil
	}
	err := p.player.Close()
	p.player = nil
	p.playing = false
	p.log.Debug("playback closed")
	return err
}
