// Package store provides a small id-keyed collection with explicit
// optimistic-update bookkeeping. Every mutation flow in the client (add,
// delete, save, rename) goes through one of its operations instead of ad hoc
// slice rebuilding, so the apply/commit/rollback pattern is reviewed once.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Identifiable is anything keyed by a backend-assigned integer identifier.
type Identifiable interface {
	Key() int64
}

type snapshot[T Identifiable] struct {
	id    int64
	index int
	prev  T
}

// Collection is an ordered list of entities keyed by identifier. All methods
// are safe for concurrent use; iteration results are copies.
type Collection[T Identifiable] struct {
	mu      sync.Mutex
	items   []T
	pending map[string]snapshot[T]
}

// New returns an empty collection.
func New[T Identifiable]() *Collection[T] {
	return &Collection[T]{pending: make(map[string]snapshot[T])}
}

// Reset replaces the whole collection, discarding any pending operations.
func (c *Collection[T]) Reset(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{}, items...)
	c.pending = make(map[string]snapshot[T])
}

// Items returns a copy of the collection in its current order.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T{}, c.items...)
}

// Len reports the number of items.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a confirmed item to the end of the collection.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Remove deletes the item with the given id. Removing an absent id is a
// no-op and reports false.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.Key() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Update applies patch to the item with the given id without snapshotting.
// Used for confirmed state transitions.
func (c *Collection[T]) Update(id int64, patch func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.Key() == id {
			c.items[i] = patch(item)
			return true
		}
	}
	return false
}

// ApplyOptimistic patches the item with the given id and records its prior
// state under the returned operation token. The caller later calls Commit
// once the backend confirms, or Rollback to restore the snapshot.
func (c *Collection[T]) ApplyOptimistic(id int64, patch func(T) T) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.Key() == id {
			op := uuid.NewString()
			c.pending[op] = snapshot[T]{id: id, index: i, prev: item}
			c.items[i] = patch(item)
			return op, true
		}
	}
	return "", false
}

// Commit discards the snapshot for op, making the optimistic patch final.
func (c *Collection[T]) Commit(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, op)
}

// Rollback restores the state recorded for op. If the item has since been
// removed it is reinserted at its previous position.
func (c *Collection[T]) Rollback(op string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap, ok := c.pending[op]
	if !ok {
		return
	}
	delete(c.pending, op)

	for i, item := range c.items {
		if item.Key() == snap.id {
			c.items[i] = snap.prev
			return
		}
	}

	idx := snap.index
	if idx > len(c.items) {
		idx = len(c.items)
	}
	c.items = append(c.items[:idx], append([]T{snap.prev}, c.items[idx:]...)...)
}
