package player

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-noise/dsp/buffer"
)

// frameBytes is one interleaved stereo float32 frame.
const frameBytes = 8

// Source produces stereo blocks on demand.
type Source interface {
	Process(left, right []float64) error
}

// Stream is an io.Reader that renders Source output as little-endian
// float32 stereo frames.
type Stream struct {
	src  Source
	pool *buffer.Pool

	mu  sync.Mutex
	err error
}

// NewStream returns a stream pulling from src.
func NewStream(src Source) *Stream {
	return &Stream{src: src, pool: buffer.NewPool()}
}

// Read fills whole frames of p. A trailing partial frame is left
// untouched and not counted.
func (s *Stream) Read(p []byte) (int, error) {
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}

	block := s.pool.Get(frames)
	defer s.pool.Put(block)

	if err := s.src.Process(block.Left, block.Right); err != nil {
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		return 0, fmt.Errorf("stream source: %w", err)
	}
	n := block.Interleave32LE(p)
	return n * frameBytes, nil
}

// Err returns the last source error seen by Read.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
