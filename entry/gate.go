package entry

import (
	"context"
	"sync"
	"sync/atomic"
)

// SetupFunc prepares the application's backing services. It runs at most
// once per execution environment, on the first invocation that needs it.
type SetupFunc func(ctx context.Context) error

// Gate owns the one-time initialization state of an execution
// environment. Construct with NewGate; each Engine carries its own Gate
// so tests can build fresh, uninitialized instances at will.
type Gate struct {
	mu          sync.Mutex
	initialized atomic.Bool
	setup       SetupFunc
}

func NewGate(setup SetupFunc) *Gate {
	return &Gate{setup: setup}
}

// Initialized reports whether setup has completed successfully.
func (g *Gate) Initialized() bool {
	return g.initialized.Load()
}

// Ensure runs setup exactly once. Concurrent first callers serialize on
// the gate and every caller returns only after setup has finished. A
// setup failure leaves the gate unset, so the next invocation retries
// from scratch. A nil setup succeeds immediately.
func (g *Gate) Ensure(ctx context.Context) error {
	if g.initialized.Load() {
		return nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized.Load() {
		return nil
	}

	if g.setup != nil {
		if err := g.setup(ctx); err != nil {
			return err
		}
	}

	g.initialized.Store(true)
	return nil
}
