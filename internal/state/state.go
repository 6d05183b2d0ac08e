// Package state holds the per-session working set the dashboard operates
// on. A Store is built from the remote lists at login, mutated optimistically
// by the coordinator services, and discarded at logout.
package state

import "sync"

// Entity is implemented by every record kind a Store can hold.
type Entity interface {
	EntityID() string
}

// Collection is one entity kind's working set.
//
// Two locks keep the single-writer discipline of the dashboard: opMu
// serializes entire mutations (guard, optimistic apply, remote round-trip,
// settle) so one mutation completes before the next begins, while mu guards
// only the slice accesses, letting readers observe the optimistic value
// during the in-flight window of a remote call.
type Collection[T Entity] struct {
	opMu  sync.Mutex
	mu    sync.RWMutex
	items []T
}

// BeginMutation blocks until no other mutation on this collection is in
// flight. Every coordinator operation brackets itself with
// BeginMutation/EndMutation.
func (c *Collection[T]) BeginMutation() { c.opMu.Lock() }

func (c *Collection[T]) EndMutation() { c.opMu.Unlock() }

// Snapshot returns a copy of the current items. The copy is safe to read
// while mutations continue.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Reset replaces the whole working set, used at hydration and for wholesale
// rollback after a failed cascade.
func (c *Collection[T]) Reset(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// InsertHead prepends a newly created entity, matching the dashboard's
// newest-first list order.
func (c *Collection[T]) InsertHead(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
}

// InsertAt re-inserts a removed entity at its original position. An index
// beyond the current length appends.
func (c *Collection[T]) InsertAt(idx int, item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx < 0 {
		idx = 0
	}
	if idx >= len(c.items) {
		c.items = append(c.items, item)
		return
	}
	c.items = append(c.items[:idx], append([]T{item}, c.items[idx:]...)...)
}

// Replace swaps the entity with the same identity for item, returning the
// prior value for rollback.
func (c *Collection[T]) Replace(item T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == item.EntityID() {
			c.items[i] = item
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Remove deletes the entity by identity, returning the removed value and
// its position so a failed remote delete can restore it exactly.
func (c *Collection[T]) Remove(id string) (T, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return it, i, true
		}
	}
	var zero T
	return zero, 0, false
}

// RemoveWhere deletes every entity matching pred and returns the removed
// values in their original order.
func (c *Collection[T]) RemoveWhere(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var removed []T
	kept := c.items[:0]
	for _, it := range c.items {
		if pred(it) {
			removed = append(removed, it)
		} else {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return removed
}
