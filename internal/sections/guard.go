package sections

import (
	"context"
	"sync"
)

// Guard is a liveness token for async section loads. The owner closes it
// when the section goes away; results that arrive afterwards are dropped
// instead of being applied to a dead consumer.
type Guard struct {
	mu     sync.Mutex
	closed bool
}

func NewGuard() *Guard {
	return &Guard{}
}

// Close marks the owner as gone. Idempotent.
func (g *Guard) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.closed = true
}

// Do runs fn only while the guard is open and reports whether it ran.
// fn runs under the guard's lock, so it cannot race with Close.
func (g *Guard) Do(fn func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return false
	}
	fn()
	return true
}

// Run loads a value on its own goroutine and applies it through the guard.
// The load itself is not cancelled on Close; its result is just discarded.
func Run[T any](ctx context.Context, g *Guard, load func(context.Context) T, apply func(T)) {
	go func() {
		v := load(ctx)
		g.Do(func() { apply(v) })
	}()
}
