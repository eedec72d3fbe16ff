package databuf

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zwutils/zwutil"
)

func printPrep(format string, args ...any) func(*Buffer) zwutil.Code {
	return func(b *Buffer) zwutil.Code {
		b.PrintTo(format, args...)
		return zwutil.OK
	}
}

func failPrep(code zwutil.Code) func(*Buffer) zwutil.Code {
	return func(b *Buffer) zwutil.Code {
		b.PrintTo("partial")
		return code
	}
}

func TestStash_Scenario(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	rc := stash.AllocateAndPrepare(20, printPrep("Test %d", 123))
	require.Equal(t, zwutil.OK, rc)
	require.Equal(t, 1, stash.Len())
	assert.Equal(t, "Test 123", stash.At(0).String())
	assert.GreaterOrEqual(t, stash.At(0).Len(), 20)
	assert.Equal(t, byte(0), stash.At(0).Bytes()[8])

	rc = stash.AllocateAndPrepare(20, failPrep(zwutil.CodeFail))
	assert.Equal(t, zwutil.CodeFail, rc)
	assert.Equal(t, 1, stash.Len())

	buf := stash.Allocate(20)
	assert.Equal(t, 2, stash.Len())
	assert.Same(t, buf, stash.At(1))
	assert.GreaterOrEqual(t, stash.At(1).Len(), 20)
}

func TestStash_AllocateAndPrintTo(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	buf1 := stash.Allocate(0)
	require.Equal(t, 1, stash.Len())
	assert.Equal(t, "Test 123", buf1.PrintTo("Test %d", 123))

	var text2 string
	rc := stash.AllocateAndPrepare(20, func(b *Buffer) zwutil.Code {
		text2 = b.PrintTo("Test %d", 234)
		return zwutil.OK
	})
	require.Equal(t, zwutil.OK, rc)
	assert.Equal(t, "Test 234", text2)
	assert.Equal(t, 2, stash.Len())

	// Earlier handles are unaffected by later allocations.
	assert.Equal(t, "Test 123", buf1.String())
}

func TestStash_RollbackLeavesContentsIdentical(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	require.Equal(t, zwutil.OK, stash.AllocateAndPrepare(8, printPrep("one")))
	require.Equal(t, zwutil.OK, stash.AllocateAndPrepare(8, printPrep("two")))

	before := make([][]byte, stash.Len())
	for i, b := range stash.Buffers() {
		before[i] = bytes.Clone(b.Bytes())
	}
	digest := stash.Digest()

	rc := stash.AllocateAndPrepare(8, failPrep(zwutil.CodeNoMem))
	assert.Equal(t, zwutil.CodeNoMem, rc)

	require.Equal(t, len(before), stash.Len())
	for i, b := range stash.Buffers() {
		assert.Equal(t, before[i], b.Bytes())
	}
	assert.Equal(t, digest, stash.Digest())
}

func TestStash_RollbackDetachesHandle(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	var leaked *Buffer
	stash.AllocateAndPrepare(16, func(b *Buffer) zwutil.Code {
		leaked = b
		b.PrintTo("secret")
		return zwutil.CodeInvalidState
	})

	require.NotNil(t, leaked)
	assert.Zero(t, leaked.Len(), "a rolled back buffer no longer exposes storage")
	assert.Zero(t, stash.Len())
}

func TestStash_RollbackOnPanic(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	assert.Panics(t, func() {
		stash.AllocateAndPrepare(8, func(*Buffer) zwutil.Code {
			panic("boom")
		})
	})

	assert.Zero(t, stash.Len())
	stats := stash.Stats()
	assert.Equal(t, uint64(1), stats.Released)
	assert.Zero(t, stats.Pending)
}

func TestStash_ClosedDuringPrepare(t *testing.T) {
	stash := NewStash(nil)

	var held *Buffer
	rc := stash.AllocateAndPrepare(8, func(b *Buffer) zwutil.Code {
		held = b
		b.PrintTo("late")
		stash.Close()
		return zwutil.OK
	})

	assert.Equal(t, zwutil.CodeInvalidState, rc)
	assert.Zero(t, stash.Len())
	assert.Zero(t, held.Len(), "the buffer was released, not committed")

	stats := stash.Stats()
	assert.Zero(t, stats.Commits)
	assert.Equal(t, uint64(1), stats.Rollbacks)
	assert.Equal(t, uint64(1), stats.Released)
	assert.Zero(t, stats.Buffers)
	assert.Zero(t, stats.Pending)
}

func TestStash_ReleaseWipesStorage(t *testing.T) {
	stash := NewStash(nil)
	b := stash.Allocate(32)
	b.PrintTo("secret-token")
	raw := b.Bytes()

	stash.Close()
	assert.Equal(t, make([]byte, 32), raw)

	other := NewStash(nil)
	defer other.Close()

	var pending []byte
	other.AllocateAndPrepare(16, func(b *Buffer) zwutil.Code {
		b.PrintTo("hunter2")
		pending = b.Bytes()
		return zwutil.CodeFail
	})
	assert.Equal(t, make([]byte, 16), pending)
}

func TestStash_NestedAllocation(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	rc := stash.AllocateAndPrepare(8, func(outer *Buffer) zwutil.Code {
		stash.Allocate(4).PrintTo("in")
		return zwutil.CodeFail
	})
	assert.Equal(t, zwutil.CodeFail, rc)
	require.Equal(t, 1, stash.Len(), "the nested buffer survives the outer rollback")
	assert.Equal(t, "in", stash.At(0).String())

	rc = stash.AllocateAndPrepare(8, func(outer *Buffer) zwutil.Code {
		stash.Allocate(4).PrintTo("b")
		outer.PrintTo("a")
		return zwutil.OK
	})
	require.Equal(t, zwutil.OK, rc)
	require.Equal(t, 3, stash.Len())
	assert.Equal(t, "b", stash.At(1).String())
	assert.Equal(t, "a", stash.At(2).String())
}

func TestStash_Printf(t *testing.T) {
	stash := NewStash(&StashConfig{PrintSize: 0})
	defer stash.Close()

	text := stash.Printf("max-age=%d", 3600)
	assert.Equal(t, "max-age=3600", text)
	require.Equal(t, 1, stash.Len())
	assert.Equal(t, "max-age=3600", stash.At(0).String())
}

func TestStash_Buffers(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	a := stash.Allocate(1)
	b := stash.Allocate(2)

	bufs := stash.Buffers()
	require.Len(t, bufs, 2)
	assert.Same(t, a, bufs[0])
	assert.Same(t, b, bufs[1])

	bufs[0] = nil
	assert.Same(t, a, stash.At(0), "the returned slice is a copy")
}

func TestStash_Digest(t *testing.T) {
	build := func(parts ...string) uint64 {
		s := NewStash(nil)
		defer s.Close()
		for _, p := range parts {
			copy(s.Allocate(len(p)).Bytes(), p)
		}
		return s.Digest()
	}

	assert.Equal(t, build("ab", "c"), build("ab", "c"))
	assert.NotEqual(t, build("ab", "c"), build("a", "bc"))
	assert.NotEqual(t, build("ab", "c"), build("c", "ab"))
}

func TestStash_Close(t *testing.T) {
	stash := NewStash(nil)
	a := stash.Allocate(8)
	b := stash.Allocate(8)

	stash.Close()
	assert.Zero(t, stash.Len())
	assert.Zero(t, a.Len())
	assert.Zero(t, b.Len())

	stats := stash.Stats()
	assert.Equal(t, uint64(2), stats.Released)
	assert.Zero(t, stats.Buffers)
	assert.Zero(t, stats.BytesHeld)

	stash.Close()
	assert.Equal(t, uint64(2), stash.Stats().Released, "second Close releases nothing")

	assert.Panics(t, func() { stash.Allocate(1) })
}

func TestStash_Stats(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	stash.Allocate(10)
	stash.AllocateAndPrepare(6, printPrep("ok"))
	stash.AllocateAndPrepare(6, failPrep(zwutil.CodeFail))

	stats := stash.Stats()
	assert.Equal(t, uint64(3), stats.Allocations)
	assert.Equal(t, uint64(2), stats.Commits)
	assert.Equal(t, uint64(1), stats.Rollbacks)
	assert.Equal(t, uint64(1), stats.Released)
	assert.Equal(t, uint64(22), stats.BytesHeld, "PrintTo grows the 6 byte buffer to 12")
	assert.Equal(t, int32(2), stats.Buffers)
	assert.Zero(t, stats.Pending)
}

func TestStash_PendingDuringPrepare(t *testing.T) {
	stash := NewStash(nil)
	defer stash.Close()

	stash.AllocateAndPrepare(4, func(*Buffer) zwutil.Code {
		assert.Equal(t, int32(1), stash.Stats().Pending)
		assert.Zero(t, stash.Len(), "pending buffer is not visible")
		return zwutil.OK
	})
	assert.Zero(t, stash.Stats().Pending)
	assert.Equal(t, 1, stash.Len())
}

func TestStash_Config(t *testing.T) {
	def := DefaultStashConfig()
	assert.Equal(t, 4, def.InitialSlots)
	assert.Equal(t, 4096, def.MaxRecycleSize)

	s := NewStash(&StashConfig{InitialSlots: 16, MaxRecycleSize: 0})
	defer s.Close()
	assert.Equal(t, 16, cap(s.bufs))
	assert.NotSame(t, defaultPool, s.pool)

	assert.Same(t, defaultPool, NewStash(nil).pool)
	assert.Panics(t, func() { s.Allocate(-1) })
}
