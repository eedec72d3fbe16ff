// Package bufpool recycles byte slices between short-lived buffers.
package bufpool

import "sync"

// Pool hands out zeroed byte slices and takes them back for reuse.
// Slices with a capacity above the pool's limit are dropped on Put.
type Pool struct {
	pool    sync.Pool
	maxSize int
}

// New creates a Pool that keeps slices of capacity up to maxSize.
// A maxSize of 0 or less disables recycling.
func New(maxSize int) *Pool {
	return &Pool{maxSize: maxSize}
}

// Get returns a zeroed slice of length size.
func (p *Pool) Get(size int) []byte {
	if bp, ok := p.pool.Get().(*[]byte); ok && cap(*bp) >= size {
		b := (*bp)[:size]
		clear(b)
		return b
	}
	return make([]byte, size)
}

// Put returns b to the pool. b must not be used afterwards.
func (p *Pool) Put(b []byte) {
	if b == nil || cap(b) > p.maxSize {
		return
	}
	b = b[:0]
	p.pool.Put(&b)
}

// MaxSize returns the largest capacity the pool keeps.
func (p *Pool) MaxSize() int {
	return p.maxSize
}
