package databuf

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"github.com/zwutils/zwutil"
	"github.com/zwutils/zwutil/internal/bufpool"
)

// StashConfig contains configuration for a Stash.
type StashConfig struct {
	// InitialSlots is the number of buffers the stash expects to hold.
	// It only sizes the initial list.
	InitialSlots int

	// PrintSize is the size Printf allocates before formatting.
	// Zero lets PrintTo start from its own minimum.
	PrintSize int

	// MaxRecycleSize is the largest buffer capacity returned to the recycle
	// pool when the stash releases a buffer. Zero disables recycling.
	MaxRecycleSize int
}

// DefaultStashConfig returns a default stash configuration.
func DefaultStashConfig() *StashConfig {
	return &StashConfig{
		InitialSlots:   4,
		PrintSize:      64,
		MaxRecycleSize: 4096,
	}
}

var defaultPool = bufpool.New(DefaultStashConfig().MaxRecycleSize)

// Stash keeps a list of buffers alive until it is closed. Buffers are kept in
// allocation order and a buffer only joins the list once its preparation
// succeeded.
//
// A Stash is not safe for concurrent use; callers sharing one must serialize
// access themselves (see zwutil.AcquireLock).
type Stash struct {
	bufs      []*Buffer
	pool      *bufpool.Pool
	printSize int
	closed    bool

	stats stashStatsCollector
}

// NewStash creates a Stash. A nil config uses DefaultStashConfig.
func NewStash(config *StashConfig) *Stash {
	if config == nil {
		config = DefaultStashConfig()
	}

	pool := defaultPool
	if config.MaxRecycleSize != pool.MaxSize() {
		pool = bufpool.New(config.MaxRecycleSize)
	}

	return &Stash{
		bufs:      make([]*Buffer, 0, max(config.InitialSlots, 0)),
		pool:      pool,
		printSize: config.PrintSize,
	}
}

// Allocate appends a zero-filled buffer of the given size and returns it.
// The handle stays valid until Close.
func (s *Stash) Allocate(size int) *Buffer {
	b := s.newBuffer(size)
	s.commit(b)
	return b
}

// AllocateAndPrepare allocates a buffer and passes it to prepare. When
// prepare returns OK the buffer is appended to the stash; otherwise it is
// released and the stash is left exactly as it was, and prepare's code is
// returned.
//
// The buffer is not part of the stash while prepare runs, so nested
// allocations made by prepare keep their own order and are unaffected by a
// rollback. prepare must not retain the buffer after a failure. If prepare
// closes the stash, the buffer is released and CodeInvalidState returned.
func (s *Stash) AllocateAndPrepare(size int, prepare func(*Buffer) zwutil.Code) zwutil.Code {
	pending := zwutil.NewResource(s.newBuffer(size), s.release)
	defer pending.Close()

	s.stats.recordBegin()
	defer s.stats.recordEnd()

	if rc := prepare(pending.Get()); rc != zwutil.OK {
		s.stats.recordRollback()
		return rc
	}
	if s.closed {
		s.stats.recordRollback()
		return zwutil.CodeInvalidState
	}

	s.commit(pending.Drop())
	return zwutil.OK
}

// Printf stores formatted text in a new buffer and returns it.
func (s *Stash) Printf(format string, args ...any) string {
	var text string
	s.AllocateAndPrepare(s.printSize, func(b *Buffer) zwutil.Code {
		text = b.PrintTo(format, args...)
		return zwutil.OK
	})
	return text
}

// Len returns the number of committed buffers.
func (s *Stash) Len() int {
	return len(s.bufs)
}

// At returns the i-th committed buffer in allocation order. It panics if i
// is out of range.
func (s *Stash) At(i int) *Buffer {
	return s.bufs[i]
}

// Buffers returns the committed buffers in allocation order. The returned
// slice is a copy; the buffers are not.
func (s *Stash) Buffers() []*Buffer {
	out := make([]*Buffer, len(s.bufs))
	copy(out, s.bufs)
	return out
}

// Digest returns an xxh3 hash over the committed buffers, covering both
// their order and their contents.
func (s *Stash) Digest() uint64 {
	h := xxh3.New()
	var size [8]byte
	for _, b := range s.bufs {
		binary.LittleEndian.PutUint64(size[:], uint64(b.Len()))
		h.Write(size[:])
		h.Write(b.data)
	}
	return h.Sum64()
}

// Stats returns a snapshot of the stash counters.
func (s *Stash) Stats() StashStats {
	return s.stats.snapshot()
}

// Close releases every buffer. Handles obtained earlier become empty
// buffers. Closing twice is a no-op; using the stash after Close panics.
func (s *Stash) Close() {
	if s.closed {
		return
	}
	s.closed = true

	for i, b := range s.bufs {
		s.release(b)
		s.bufs[i] = nil
	}
	s.bufs = nil
	s.stats.recordClear()
}

func (s *Stash) newBuffer(size int) *Buffer {
	if s.closed {
		panic("databuf: allocate on closed stash")
	}
	if size < 0 {
		panic("databuf: negative size")
	}
	s.stats.recordAllocate()
	return &Buffer{data: s.pool.Get(size)}
}

func (s *Stash) commit(b *Buffer) {
	s.bufs = append(s.bufs, b)
	s.stats.recordCommit(b.Len())
}

// release wipes the storage, hands it back to the pool and detaches the
// handle.
func (s *Stash) release(b *Buffer) {
	clear(b.data)
	s.pool.Put(b.data)
	b.data = nil
	s.stats.recordRelease()
}
