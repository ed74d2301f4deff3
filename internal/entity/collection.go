package entity

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no entity has the requested UID.
var ErrNotFound = errors.New("entity: uid not found")

// Collection is an insertion-ordered list of entities of one kind.
// Lookups scan linearly; UID equality is the only key.
type Collection[T Entity] struct {
	items []T
}

// Add appends e.
func (c *Collection[T]) Add(e T) {
	c.items = append(c.items, e)
}

// Get returns the entity with the given UID.
func (c *Collection[T]) Get(uid string) (T, bool) {
	for _, e := range c.items {
		if e.UID() == uid {
			return e, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the first entity with the given UID, keeping the order of
// the rest.
func (c *Collection[T]) Remove(uid string) (T, error) {
	for i, e := range c.items {
		if e.UID() == uid {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return e, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("remove %q: %w", uid, ErrNotFound)
}

// All returns the backing slice. Callers must not append to it.
func (c *Collection[T]) All() []T {
	return c.items
}

// Len returns the number of entities.
func (c *Collection[T]) Len() int {
	return len(c.items)
}
