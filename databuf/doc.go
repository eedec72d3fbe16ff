// Package databuf provides growable byte buffers and a Stash that keeps a
// group of them alive together.
//
// A Stash is useful when several pieces of generated text must outlive the
// function that produced them, for example custom HTTP response headers that
// are only sent after the handler returns.
//
// # Transactional allocation
//
// AllocateAndPrepare allocates a buffer, lets a callback fill it, and keeps
// it only if the callback reports OK:
//
//	stash := databuf.NewStash(nil)
//	defer stash.Close()
//
//	rc := stash.AllocateAndPrepare(32, func(b *databuf.Buffer) zwutil.Code {
//	    if !haveValue {
//	        return zwutil.CodeNotFound
//	    }
//	    b.PrintTo("max-age=%d", ttl)
//	    return zwutil.OK
//	})
//
// On failure the buffer is released before AllocateAndPrepare returns and the
// stash has the same length, order and contents as before the call.
//
// # Buffer handles
//
// Allocate and At return *Buffer handles. A handle keeps pointing at the same
// buffer while further buffers are allocated; its Bytes slice, however, may
// move when the buffer itself is resized. Close releases all storage and
// leaves every handle empty. Released storage is zeroed and recycled, so a
// Bytes slice kept past Close or a rollback must not be used.
//
// # Thread Safety
//
// Buffer and Stash do no locking. Stats may be read from any goroutine.
package databuf
