package buffer

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/algo-noise/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Stereo holds two equally long channels of float samples in [-1, 1].
type Stereo struct {
	Left  []float64
	Right []float64
}

// NewStereo returns a zero-filled buffer with the given number of frames.
func NewStereo(frames int) *Stereo {
	if frames < 0 {
		frames = 0
	}
	return &Stereo{
		Left:  make([]float64, frames),
		Right: make([]float64, frames),
	}
}

// Frames returns the number of stereo frames.
func (s *Stereo) Frames() int {
	return len(s.Left)
}

// Validate reports a channel length mismatch as core.ErrInvalidBuffer.
func (s *Stereo) Validate() error {
	if s == nil {
		return fmt.Errorf("stereo buffer is nil: %w", core.ErrInvalidBuffer)
	}
	if len(s.Left) != len(s.Right) {
		return fmt.Errorf("stereo channel length mismatch: left %d, right %d: %w",
			len(s.Left), len(s.Right), core.ErrInvalidBuffer)
	}
	return nil
}

// Resize sets both channels to n frames, reusing capacity when possible.
// Contents are unspecified after a resize.
func (s *Stereo) Resize(n int) {
	s.Left = core.EnsureLen(s.Left, n)
	s.Right = core.EnsureLen(s.Right, n)
}

// Zero sets all samples to 0.
func (s *Stereo) Zero() {
	for i := range s.Left {
		s.Left[i] = 0
	}
	for i := range s.Right {
		s.Right[i] = 0
	}
}

// Scale multiplies both channels by gain in place.
func (s *Stereo) Scale(gain float64) {
	vecmath.ScaleBlockInPlace(s.Left, gain)
	vecmath.ScaleBlockInPlace(s.Right, gain)
}

// Slice returns a view of frames [start, end). The view shares storage.
func (s *Stereo) Slice(start, end int) *Stereo {
	return &Stereo{Left: s.Left[start:end], Right: s.Right[start:end]}
}

// InterleaveFloat32 writes L,R,L,R... into dst and returns the number of
// frames written, limited by len(dst)/2.
func (s *Stereo) InterleaveFloat32(dst []float32) int {
	n := len(dst) / 2
	if f := s.Frames(); f < n {
		n = f
	}
	for i := 0; i < n; i++ {
		dst[2*i] = float32(s.Left[i])
		dst[2*i+1] = float32(s.Right[i])
	}
	return n
}

// Interleave32LE writes frames as little-endian float32 L,R pairs into dst
// and returns the number of frames written, limited by len(dst)/8.
func (s *Stereo) Interleave32LE(dst []byte) int {
	n := len(dst) / 8
	if f := s.Frames(); f < n {
		n = f
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(dst[8*i:], math.Float32bits(float32(s.Left[i])))
		binary.LittleEndian.PutUint32(dst[8*i+4:], math.Float32bits(float32(s.Right[i])))
	}
	return n
}
