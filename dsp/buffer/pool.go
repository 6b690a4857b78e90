package buffer

import "sync"

// Pool provides sync.Pool-based Stereo reuse to reduce GC pressure in
// real-time streaming loops.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Stereo{}
			},
		},
	}
}

// Get returns a zeroed Stereo block with the requested number of frames.
// Callers must return it via Put when done.
func (p *Pool) Get(frames int) *Stereo {
	s := p.pool.Get().(*Stereo)
	s.Resize(frames)
	s.Zero()
	return s
}

// Put returns a block to the pool. The caller must not use it afterwards.
func (p *Pool) Put(s *Stereo) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
