package model

// Predicate selects the items a FilteredList exposes.
type Predicate[T any] func(T) bool

// All is the predicate that keeps every item.
func All[T any](T) bool { return true }

// FilteredList is a read lens over a master collection. It stores the
// predicate and a reference to the source, and rematerialises synchronously
// whenever the predicate changes or the owner reports a mutation. Readers
// pull the current view with Items, Len and At.
type FilteredList[T any] struct {
	source    func() []T
	predicate Predicate[T]
	items     []T
}

func newFilteredList[T any](source func() []T) *FilteredList[T] {
	l := &FilteredList[T]{
		source:    source,
		predicate: All[T],
	}
	l.Refresh()
	return l
}

// SetPredicate replaces the predicate and recomputes the view. A nil
// predicate shows everything.
func (l *FilteredList[T]) SetPredicate(p Predicate[T]) {
	if p == nil {
		p = All[T]
	}
	l.predicate = p
	l.Refresh()
}

// Refresh recomputes the view from the source.
func (l *FilteredList[T]) Refresh() {
	src := l.source()
	items := make([]T, 0, len(src))
	for _, it := range src {
		if l.predicate(it) {
			items = append(items, it)
		}
	}
	l.items = items
}

// Items returns a copy of the current materialisation.
func (l *FilteredList[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Len returns the number of visible items.
func (l *FilteredList[T]) Len() int { return len(l.items) }

// At returns the zero-based i-th visible item.
func (l *FilteredList[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}
