// Package latest tags requests with a generation so that only the newest
// request of a view may update that view's state.
package latest

import (
	"context"
	"sync"
)

// Ticket identifies one request started through a Guard.
type Ticket uint64

// Guard tracks the newest request of a single view. Starting a request cancels
// the context of the one before it. The zero value is ready to use.
type Guard struct {
	mu     sync.Mutex
	gen    Ticket
	cancel context.CancelFunc
}

// Begin starts a new generation. The returned context is cancelled when a
// later Begin supersedes it or the parent is done; callers must call Done.
func (g *Guard) Begin(parent context.Context) (context.Context, Ticket) {
	ctx, cancel := context.WithCancel(parent)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	g.gen++
	g.cancel = cancel
	return ctx, g.gen
}

// Commit runs apply only if t is still the newest generation and reports
// whether it ran. apply runs under the guard's lock.
func (g *Guard) Commit(t Ticket, apply func()) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t != g.gen {
		return false
	}
	apply()
	return true
}

// Done releases the context of t. Superseded tickets were already cancelled.
func (g *Guard) Done(t Ticket) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if t == g.gen && g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

// Current returns the newest generation.
func (g *Guard) Current() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen
}
