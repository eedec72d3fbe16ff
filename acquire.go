package zwutil

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/puddle/v2"
	"golang.org/x/sync/semaphore"
)

// Scoped acquisition adapters. Each one takes a host primitive, acquires it,
// and hands back a Guard or Resource whose release action gives it back, so
// the usual pattern applies:
//
//	r := zwutil.AcquireWeighted(ctx, sem, 1)
//	g, err := r.Get()
//	if err != nil {
//		return err
//	}
//	defer g.Close()

// AcquireLock locks l and returns a Guard that unlocks it.
func AcquireLock(l sync.Locker) *Guard {
	l.Lock()
	return NewGuard(l.Unlock)
}

// AcquireWeighted acquires n units of sem, waiting until ctx is done. The
// returned Guard releases the same n units.
func AcquireWeighted(ctx context.Context, sem *semaphore.Weighted, n int64) Result[*Guard] {
	if err := sem.Acquire(ctx, n); err != nil {
		return FromError[*Guard](acquireError(err))
	}
	return MakeValue(NewGuard(func() { sem.Release(n) }))
}

// TryAcquireWeighted is AcquireWeighted without waiting. It fails with
// CodeTimeout when the units are not immediately available.
func TryAcquireWeighted(sem *semaphore.Weighted, n int64) Result[*Guard] {
	if !sem.TryAcquire(n) {
		return MakeErrorf[*Guard](CodeTimeout, "semaphore: %d units not available", n)
	}
	return MakeValue(NewGuard(func() { sem.Release(n) }))
}

// AcquirePooled checks a resource out of p. Closing the returned Resource
// gives it back to the pool; to discard a broken resource instead, take it
// out first:
//
//	res.Drop().Destroy()
func AcquirePooled[T any](ctx context.Context, p *puddle.Pool[T]) Result[*Resource[*puddle.Resource[T]]] {
	res, err := p.Acquire(ctx)
	if err != nil {
		return FromError[*Resource[*puddle.Resource[T]]](acquireError(err))
	}
	return MakeValue(NewResource(res, (*puddle.Resource[T]).Release))
}

func acquireError(err error) Error {
	switch {
	case errors.Is(err, puddle.ErrClosedPool):
		return NewError(CodeInvalidState, err.Error())
	case errors.Is(err, puddle.ErrNotAvailable):
		return NewError(CodeNotFound, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(CodeTimeout, err.Error())
	case errors.Is(err, context.Canceled):
		return NewError(CodeInvalidState, err.Error())
	default:
		return ErrorOf(err)
	}
}
