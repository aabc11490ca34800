// Package memory keeps the console's locally owned screens in process memory.
package memory

import (
	"slices"
	"sync"
)

// store is an ordered, mutex-guarded list keyed by id.
type store[T any] struct {
	mu    sync.RWMutex
	items []T
	id    func(T) string
}

func newStore[T any](seed []T, id func(T) string) *store[T] {
	return &store[T]{items: slices.Clone(seed), id: id}
}

func (s *store[T]) all() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *store[T]) put(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if s.id(existing) == s.id(item) {
			s.items[i] = item
			return true
		}
	}
	return false
}

// modify replaces the item with fn's result while holding the lock. found is
// false when no item has the id; fn's error leaves the item unchanged.
func (s *store[T]) modify(id string, fn func(T) (T, error)) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.items {
		if s.id(existing) != id {
			continue
		}
		next, err := fn(existing)
		if err != nil {
			return true, err
		}
		s.items[i] = next
		return true, nil
	}
	return false, nil
}

func (s *store[T]) add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

func (s *store[T]) remove(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if s.id(item) == id {
			s.items = slices.Delete(s.items, i, i+1)
			return item, true
		}
	}
	var zero T
	return zero, false
}
