package person

import "sort"

// Set is an immutable collection of unique string-backed values. The zero
// Set is empty and ready to use.
type Set[T ~string] struct {
	items map[T]struct{}
}

// NewSet builds a Set from values, collapsing duplicates.
func NewSet[T ~string](values ...T) Set[T] {
	s := Set[T]{items: make(map[T]struct{}, len(values))}
	for _, v := range values {
		s.items[v] = struct{}{}
	}
	return s
}

// Len returns the number of values.
func (s Set[T]) Len() int { return len(s.items) }

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s.items[v]
	return ok
}

// Values returns a sorted copy of the values.
func (s Set[T]) Values() []T {
	out := make([]T, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports whether both sets hold the same values.
func (s Set[T]) Equal(other Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for v := range s.items {
		if !other.Has(v) {
			return false
		}
	}
	return true
}
