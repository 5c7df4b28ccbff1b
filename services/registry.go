package services

import (
	"context"
	"fmt"
	"sync"
)

// InitFunc prepares one backing service of the application, such as a
// database pool, a vector index or a model client. A failed attempt may
// be rerun in full on a later invocation, so an InitFunc must tolerate
// running again after its own or a sibling's failure.
type InitFunc func(ctx context.Context) error

type entry struct {
	name string
	init InitFunc
}

// Registry holds named initializers and runs them in registration order.
type Registry struct {
	mu      sync.Mutex
	entries []entry
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds an initializer under name. Registering a name twice
// replaces the earlier initializer but keeps its position.
func (r *Registry) Register(name string, init InitFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].name == name {
			r.entries[i].init = init
			return
		}
	}
	r.entries = append(r.entries, entry{name: name, init: init})
}

// InitAll runs every initializer in order and stops at the first failure.
func (r *Registry) InitAll(ctx context.Context) error {
	for _, e := range r.snapshot() {
		if e.init == nil {
			continue
		}
		if err := e.init(ctx); err != nil {
			return fmt.Errorf("init %s: %w", e.name, err)
		}
	}
	return nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	var names []string
	for _, e := range r.snapshot() {
		names = append(names, e.name)
	}
	return names
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) snapshot() []entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
