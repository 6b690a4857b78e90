package player

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

type rampSource struct {
	next float64
}

func (r *rampSource) Process(left, right []float64) error {
	for i := range left {
		left[i] = r.next
		right[i] = -r.next
		r.next += 0.25
	}
	return nil
}

type failingSource struct{}

func (failingSource) Process(left, right []float64) error { return errors.New("boom") }

func readFloat(p []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p[4*i:]))
}

func TestStreamInterleaves(t *testing.T) {
	s := NewStream(&rampSource{})
	p := make([]byte, 4*frameBytes)
	n, err := s.Read(p)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != len(p) {
		t.Fatalf("Read() n = %d, want %d", n, len(p))
	}
	want := []float32{0, 0, 0.25, -0.25, 0.5, -0.5, 0.75, -0.75}
	for i, w := range want {
		if got := readFloat(p, i); got != w {
			t.Fatalf("sample %d = %v, want %v", i, got, w)
		}
	}
}

func TestStreamContinuesAcrossReads(t *testing.T) {
	s := NewStream(&rampSource{})
	p := make([]byte, 2*frameBytes)
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if _, err := s.Read(p); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got := readFloat(p, 0); got != 0.5 {
		t.Fatalf("first sample of second read = %v, want 0.5", got)
	}
}

func TestStreamPartialFrame(t *testing.T) {
	s := NewStream(&rampSource{})
	p := make([]byte, frameBytes+3)
	n, err := s.Read(p)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != frameBytes {
		t.Fatalf("Read() n = %d, want %d", n, frameBytes)
	}

	n, err = s.Read(make([]byte, 5))
	if n != 0 || err != nil {
		t.Fatalf("Read(short) = %d, %v; want 0, nil", n, err)
	}
}

func TestStreamSourceError(t *testing.T) {
	s := NewStream(failingSource{})
	if s.Err() != nil {
		t.Fatal("Err() before any read should be nil")
	}
	n, err := s.Read(make([]byte, 64))
	if err == nil || n != 0 {
		t.Fatalf("Read() = %d, %v; want 0 and an error", n, err)
	}
	if s.Err() == nil {
		t.Fatal("Err() should report the source error")
	}
}

func TestStreamIsReader(t *testing.T) {
	var r io.Reader = NewStream(&rampSource{})
	p := make([]byte, 1024)
	if _, err := io.ReadFull(r, p); err != nil {
		t.Fatalf("ReadFull() error = %v", err)
	}
}
