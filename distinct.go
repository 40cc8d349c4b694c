// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

// DistinctStage yields each upstream value the first time it is seen.
// The set of seen values grows with the number of distinct values.
type DistinctStage[T comparable] struct {
	primer
	pred  Stage[T]
	seen  map[T]struct{}
	ahead T
}

var _ Stage[int] = (*DistinctStage[int])(nil)

// NewDistinctStage wraps the predecessor.
func NewDistinctStage[T comparable](pred Stage[T]) *DistinctStage[T] {
	return &DistinctStage[T]{pred: pred, seen: make(map[T]struct{})}
}

// HasMore implements [Stage].
func (s *DistinctStage[T]) HasMore() bool {
	if s.primed {
		return true
	}
	for s.pred.HasMore() {
		v := s.pred.Next()
		if _, dup := s.seen[v]; dup {
			continue
		}
		s.seen[v] = struct{}{}
		s.ahead = v
		s.primed = true
		return true
	}
	return false
}

// Next implements [Stage].
func (s *DistinctStage[T]) Next() T {
	s.consume("distinct")
	v := s.ahead
	s.ahead = *new(T)
	return v
}

// Distinct returns a stream that drops repeated values, preserving the
// order of first occurrence. When T is an interface type, every value
// must have a hashable dynamic type; a slice, map, or func value panics
// when it reaches the seen-set.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return derive(s, "Distinct", func(pred Stage[T]) Stage[T] {
		return NewDistinctStage(pred)
	})
}
