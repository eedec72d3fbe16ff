package databuf

import (
	"bytes"
	"fmt"
)

// printToMinSize is the first size PrintTo tries before measuring.
const printToMinSize = 12

// Buffer is a growable byte sequence. The zero Buffer is empty and ready to use.
//
// Slices returned by Bytes are only valid until the next Resize, Grow or
// PrintTo, which may move the storage. For buffers owned by a Stash they are
// also invalidated by Close and by a rolled back AllocateAndPrepare: the
// storage is zeroed and may be handed to another buffer.
type Buffer struct {
	data []byte
}

// NewBuffer returns a zero-filled Buffer of the given size.
func NewBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size)}
}

// Len returns the current size.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the buffer contents.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Resize sets the size to n. Bytes added by growing are zero; shrinking
// keeps the first n bytes.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		panic("databuf: negative size")
	}
	old := len(b.data)
	if n <= cap(b.data) {
		b.data = b.data[:n]
		if n > old {
			clear(b.data[old:n])
		}
		return
	}

	grown := make([]byte, n)
	copy(grown, b.data)
	b.data = grown
}

// Grow resizes the buffer to at least n bytes. It never shrinks.
func (b *Buffer) Grow(n int) {
	if len(b.data) < n {
		b.Resize(n)
	}
}

// PrintTo formats into the buffer and returns the written text.
//
// The text is NUL-terminated inside the buffer like a C string. If it does
// not fit, the buffer grows to the measured size and formatting runs again;
// nothing is ever written past the current size. A buffer that is already
// large enough keeps its size.
func (b *Buffer) PrintTo(format string, args ...any) string {
	need := printToMinSize
	for {
		b.Grow(need)

		w := clampWriter{dst: b.data}
		fmt.Fprintf(&w, format, args...)

		// One extra byte for the terminator.
		need = w.n + 1
		if need <= len(b.data) {
			b.data[w.n] = 0
			return string(b.data[:w.n])
		}
	}
}

// String returns the contents up to the first NUL byte.
func (b *Buffer) String() string {
	if i := bytes.IndexByte(b.data, 0); i >= 0 {
		return string(b.data[:i])
	}
	return string(b.data)
}

// clampWriter copies what fits into dst and counts everything it was given.
type clampWriter struct {
	dst []byte
	n   int
}

func (w *clampWriter) Write(p []byte) (int, error) {
	if w.n < len(w.dst) {
		copy(w.dst[w.n:], p)
	}
	w.n += len(p)
	return len(p), nil
}
