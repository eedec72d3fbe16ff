package zwutil

import "fmt"

// Result holds either a value of type T or an Error, never both.
//
// The zero Result is a failure with CodeFail. A Result changes tag only
// through reassignment (Set, SetError, or assigning a new Result); the
// value of a failure can never be read.
//
// Results are meant to be consumed once. Take moves the payload out and
// leaves the source as the zero Result, which matters when T owns a handle.
type Result[T any] struct {
	value T
	err   Error
	ok    bool
}

// MakeValue returns a successful Result holding v.
func MakeValue[T any](v T) Result[T] {
	return Result[T]{value: v, ok: true}
}

// MakeError returns a failed Result. Passing OK panics.
func MakeError[T any](code Code) Result[T] {
	return Result[T]{err: NewError(code, "")}
}

// MakeErrorf returns a failed Result with a formatted message. Passing OK panics.
func MakeErrorf[T any](code Code, format string, args ...any) Result[T] {
	return Result[T]{err: Errorf(code, format, args...)}
}

// FromError returns a failed Result carrying e.
func FromError[T any](e Error) Result[T] {
	if e.code == OK {
		panic("zwutil: OK is not an error, supply a value instead")
	}
	return Result[T]{err: e}
}

// Of adapts a conventional (value, error) pair.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: ErrorOf(err)}
	}
	return MakeValue(v)
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.ok
}

// Unwrap returns the value. It panics if r is a failure.
func (r Result[T]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("zwutil: Unwrap on failed result: %v", r.failure()))
	}
	return r.value
}

// Get returns the value, or the zero T together with the failure.
func (r Result[T]) Get() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.failure()
	}
	return r.value, nil
}

// ErrorCode returns OK for a value and the failure code otherwise.
func (r Result[T]) ErrorCode() Code {
	if r.ok {
		return OK
	}
	return r.failure().code
}

// Err returns nil for a value and the failure otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return r.failure()
}

// Status drops the payload and keeps the outcome.
func (r Result[T]) Status() Status {
	if r.ok {
		return OkStatus()
	}
	return r.failure().Status()
}

func (r Result[T]) String() string {
	if r.ok {
		return fmt.Sprintf("Value(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.failure())
}

// Set replaces r with a value.
func (r *Result[T]) Set(v T) {
	*r = MakeValue(v)
}

// SetError replaces r with a failure. Passing OK panics.
func (r *Result[T]) SetError(code Code) {
	*r = MakeError[T](code)
}

// SetErrorf replaces r with a failure carrying a formatted message.
func (r *Result[T]) SetErrorf(code Code, format string, args ...any) {
	*r = MakeErrorf[T](code, format, args...)
}

// Take moves the Result out of r, leaving r as the zero Result.
func (r *Result[T]) Take() Result[T] {
	out := *r
	*r = Result[T]{}
	return out
}

func (r Result[T]) failure() Error {
	if r.err.code == OK {
		return Error{code: CodeFail}
	}
	return r.err
}
