// Package dedup provides first-occurrence filtering for sequences of
// comparable values.
package dedup

// Set is an insertion-only set of comparable values.
// It is not safe for concurrent mutation.
type Set[T comparable] struct {
	seen map[T]struct{}
}

// NewSet returns an empty Set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{seen: make(map[T]struct{})}
}

// Insert records v and reports whether it was absent before the call.
func (s *Set[T]) Insert(v T) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}
	s.seen[v] = struct{}{}
	return true
}

// Contains reports whether v has been inserted.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of distinct values inserted.
func (s *Set[T]) Len() int {
	return len(s.seen)
}

// Unique returns a predicate that is true the first time it sees a value and
// false on every later call with an equal value. Each call to Unique starts
// with an empty history.
//
// With T = any, values of different dynamic types never compare equal, so
// 1 and "1" are distinct. Passing a non-comparable dynamic type panics.
func Unique[T comparable]() func(T) bool {
	return NewSet[T]().Insert
}

// Filter returns the first occurrence of each distinct value in values,
// preserving order.
func Filter[T comparable](values []T) []T {
	keep := Unique[T]()
	out := make([]T, 0, len(values))
	for _, v := range values {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// FilterFunc is like Filter but compares values by the key returned from key.
func FilterFunc[T any, K comparable](values []T, key func(T) K) []T {
	keep := Unique[K]()
	out := make([]T, 0, len(values))
	for _, v := range values {
		if keep(key(v)) {
			out = append(out, v)
		}
	}
	return out
}
