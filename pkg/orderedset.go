// Package pkg is a package that provides utilities for fuze.
package pkg

// OrderedSet is a set of comparable items that remembers insertion order.
// The zero value is not usable; construct instances with NewOrderedSet.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// NewOrderedSet creates an OrderedSet seeded with the given items.
func NewOrderedSet[T comparable](items ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		index: make(map[T]struct{}, len(items)),
	}

	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts item and reports whether it was not already present.
func (s *OrderedSet[T]) Add(item T) bool {
	if _, ok := s.index[item]; ok {
		return false
	}

	s.index[item] = struct{}{}
	s.items = append(s.items, item)

	return true
}

// Has reports whether item is in the set.
func (s *OrderedSet[T]) Has(item T) bool {
	_, ok := s.index[item]
	return ok
}

// Len returns the number of distinct items.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *OrderedSet[T]) Items() []T {
	items := make([]T, len(s.items))
	copy(items, s.items)

	return items
}
