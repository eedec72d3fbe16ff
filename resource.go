package zwutil

// Resource owns a value of type T and the obligation to release it.
//
// The release action runs at most once per live value: Close and Reset
// release the current value, Set releases the old value before storing the
// new one, and Swap/Drop hand the current value back to the caller without
// releasing it. Move transfers value and action to a new Resource and leaves
// the source empty.
//
// A Resource is not safe for concurrent use.
type Resource[T any] struct {
	noCopy  noCopy
	value   T
	release func(T)
	live    bool
}

// NewResource wraps v. release receives the value when it is released and
// may be nil.
func NewResource[T any](v T, release func(T)) *Resource[T] {
	return &Resource[T]{value: v, release: release, live: true}
}

// Get returns the held value.
func (r *Resource[T]) Get() T {
	return r.value
}

// Ptr returns a pointer to the held value, valid until the next Set, Swap,
// Drop, Reset or Move.
func (r *Resource[T]) Ptr() *T {
	return &r.value
}

// Live reports whether the held value is still owed a release.
func (r *Resource[T]) Live() bool {
	return r != nil && r.live && r.release != nil
}

// Reset releases the held value if it is live and leaves the zero value in
// its place. The release action stays attached for later Set or Swap.
func (r *Resource[T]) Reset() {
	if !r.live {
		return
	}
	v := r.Drop()
	if r.release != nil {
		r.release(v)
	}
}

// Close is Reset for use with defer. It is safe on a nil Resource.
func (r *Resource[T]) Close() {
	if r == nil {
		return
	}
	r.Reset()
}

// Set releases the current value, then holds v.
func (r *Resource[T]) Set(v T) {
	r.Reset()
	r.value = v
	r.live = true
}

// Swap holds v and returns the previous value without releasing it. The
// caller becomes responsible for the returned value.
func (r *Resource[T]) Swap(v T) T {
	old := r.value
	r.value = v
	r.live = true
	return old
}

// Drop returns the held value without releasing it and leaves r empty.
func (r *Resource[T]) Drop() T {
	old := r.value
	var zero T
	r.value = zero
	r.live = false
	return old
}

// Move transfers the value and the release action to a new Resource. r is
// left with no action and the zero value.
func (r *Resource[T]) Move() *Resource[T] {
	out := &Resource[T]{value: r.value, release: r.release, live: r.live}
	var zero T
	r.value = zero
	r.release = nil
	r.live = false
	return out
}
