package zwutil

// noCopy may be embedded into structs which must not be copied after first
// use. go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Guard runs a release action exactly once when its scope ends.
//
//	g := zwutil.NewGuard(func() { sem.Release(1) })
//	defer g.Close()
//
// Ownership of the action moves with Move; Disarm gives it up entirely.
// A Guard is not safe for concurrent use.
type Guard struct {
	noCopy noCopy
	fn     func()
}

// NewGuard returns a Guard armed with fn. A nil fn yields a disarmed Guard.
func NewGuard(fn func()) *Guard {
	return &Guard{fn: fn}
}

// Close runs the release action if armed, then disarms. Calling Close again
// does nothing.
func (g *Guard) Close() {
	if g == nil || g.fn == nil {
		return
	}
	fn := g.fn
	g.fn = nil
	fn()
}

// Disarm drops the release action without running it.
func (g *Guard) Disarm() {
	if g == nil {
		return
	}
	g.fn = nil
}

// Armed reports whether Close would run a release action.
func (g *Guard) Armed() bool {
	return g != nil && g.fn != nil
}

// Move transfers the release obligation to a new Guard and disarms g. On a
// nil Guard it returns a disarmed one.
func (g *Guard) Move() *Guard {
	if g == nil {
		return &Guard{}
	}
	out := &Guard{fn: g.fn}
	g.fn = nil
	return out
}
