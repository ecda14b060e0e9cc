package screenflow

import (
	"fmt"
	"sync"
)

// registry is a name-keyed collection of screens or transitions. Adding
// under an existing name replaces the previous entry. Safe for concurrent
// registration and lookup; screens may be registered from outside the
// render loop.
type registry[E any] struct {
	kind string // "screen" or "transition", used in error messages

	mu      sync.RWMutex
	entries map[string]E
}

func newRegistry[E any](kind string) *registry[E] {
	return &registry[E]{
		kind:    kind,
		entries: make(map[string]E),
	}
}

func (r *registry[E]) add(name string, entity E, isNil bool) error {
	if name == "" {
		return fmt.Errorf("%w: %s name cannot be empty", ErrInvalidArgument, r.kind)
	}
	if isNil {
		return fmt.Errorf("%w: %s cannot be nil", ErrInvalidArgument, r.kind)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = entity
	return nil
}

func (r *registry[E]) get(name string) (E, error) {
	var zero E
	if name == "" {
		return zero, fmt.Errorf("%w: %s name cannot be empty", ErrInvalidArgument, r.kind)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entity, ok := r.entries[name]
	if !ok {
		return zero, fmt.Errorf("%w: no %s named %q", ErrNotFound, r.kind, name)
	}
	return entity, nil
}

func (r *registry[E]) values() []E {
	r.mu.RLock()
	defer r.mu.RUnlock()
	values := make([]E, 0, len(r.entries))
	for _, e := range r.entries {
		values = append(values, e)
	}
	return values
}
