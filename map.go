// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

// MapStage transforms each upstream element. The function is called
// exactly once per element drawn, when Next is called.
type MapStage[T, U any] struct {
	primer
	pred Stage[T]
	fn   func(T) U
}

var _ Stage[string] = (*MapStage[int, string])(nil)

// NewMapStage wraps the predecessor.
func NewMapStage[T, U any](pred Stage[T], fn func(T) U) *MapStage[T, U] {
	return &MapStage[T, U]{pred: pred, fn: fn}
}

// HasMore implements [Stage].
func (s *MapStage[T, U]) HasMore() bool {
	s.primed = s.pred.HasMore()
	return s.primed
}

// Next implements [Stage].
func (s *MapStage[T, U]) Next() U {
	s.consume("map")
	return s.fn(s.pred.Next())
}

// Map returns a stream of fn applied to each element of s. It is a
// function rather than a method so that the element type may change.
func Map[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return derive(s, "Map", func(pred Stage[T]) Stage[U] {
		return NewMapStage(pred, fn)
	})
}

// Peek returns a stream that calls fn with each element as it is drawn
// downstream. Elements that are never demanded are never observed.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	return derive(s, "Peek", func(pred Stage[T]) Stage[T] {
		return NewMapStage(pred, func(v T) T {
			fn(v)
			return v
		})
	})
}
