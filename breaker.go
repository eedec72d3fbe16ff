package zwutil

import (
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerSettings returns gobreaker settings with the default trip policy:
// open once at least 3 requests were seen in the interval and 60% of them
// failed.
func BreakerSettings(name string, maxRequests uint32, interval, timeout time.Duration) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: maxRequests,
		Interval:    interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	}
}

// Breaker guards a fallible operation with a circuit breaker. Failures of
// the operation count against the circuit; while the circuit is open the
// operation is not called and Execute fails with CodeInvalidState.
type Breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// NewBreaker creates a Breaker from gobreaker settings.
func NewBreaker[T any](settings gobreaker.Settings) *Breaker[T] {
	return &Breaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// Execute runs op through the circuit breaker.
func (b *Breaker[T]) Execute(op func() Result[T]) Result[T] {
	v, err := b.cb.Execute(func() (T, error) {
		return op().Get()
	})
	if err == nil {
		return MakeValue(v)
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return MakeErrorf[T](CodeInvalidState, "breaker %s: %v", b.cb.Name(), err)
	}
	return FromError[T](ErrorOf(err))
}

// State returns the current circuit state.
func (b *Breaker[T]) State() gobreaker.State {
	return b.cb.State()
}

// Counts returns the request counters of the current generation.
func (b *Breaker[T]) Counts() gobreaker.Counts {
	return b.cb.Counts()
}

// Retry calls op until it succeeds or attempts calls were made, and returns
// the last outcome. Fewer than one attempt counts as one.
func Retry[T any](attempts int, op func() Result[T]) Result[T] {
	if attempts < 1 {
		attempts = 1
	}

	var r Result[T]
	for range attempts {
		if r = op(); r.ok {
			return r
		}
	}
	return r
}
