package zwutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_ReleasesAtScopeEnd(t *testing.T) {
	released := false
	func() {
		g := NewGuard(func() { released = true })
		defer g.Close()
		assert.False(t, released)
	}()
	assert.True(t, released)
}

func TestGuard_ReleasesOnce(t *testing.T) {
	calls := 0
	g := NewGuard(func() { calls++ })
	g.Close()
	g.Close()
	assert.Equal(t, 1, calls)
	assert.False(t, g.Armed())
}

func TestGuard_ReleasesOnPanic(t *testing.T) {
	released := false
	assert.Panics(t, func() {
		g := NewGuard(func() { released = true })
		defer g.Close()
		panic("boom")
	})
	assert.True(t, released)
}

func TestGuard_Disarm(t *testing.T) {
	released := false
	g := NewGuard(func() { released = true })
	g.Disarm()
	g.Close()
	assert.False(t, released)
}

func TestGuard_Move(t *testing.T) {
	calls := 0
	a := NewGuard(func() { calls++ })
	b := a.Move()

	assert.False(t, a.Armed())
	assert.True(t, b.Armed())

	a.Close()
	assert.Equal(t, 0, calls)
	b.Close()
	assert.Equal(t, 1, calls)
}

func TestGuard_NilReceiver(t *testing.T) {
	var g *Guard
	assert.NotPanics(t, func() {
		g.Disarm()
		g.Close()
	})
	assert.False(t, g.Armed())

	moved := g.Move()
	require.NotNil(t, moved)
	assert.False(t, moved.Armed())
}

func TestGuard_NilAction(t *testing.T) {
	g := NewGuard(nil)
	assert.False(t, g.Armed())
	assert.NotPanics(t, g.Close)

	var nilGuard *Guard
	assert.NotPanics(t, nilGuard.Close)
}

func TestGuard_ReverseOrder(t *testing.T) {
	var order []string
	func() {
		outer := NewGuard(func() { order = append(order, "outer") })
		defer outer.Close()
		inner := NewGuard(func() { order = append(order, "inner") })
		defer inner.Close()
	}()
	assert.Equal(t, []string{"inner", "outer"}, order)
}
