// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

// FilterStage passes through the upstream elements that satisfy a
// predicate. The predicate is called exactly once per upstream element
// examined, in upstream order.
type FilterStage[T any] struct {
	primer
	pred  Stage[T]
	test  func(T) bool
	ahead T
}

var _ Stage[int] = (*FilterStage[int])(nil)

// NewFilterStage wraps the predecessor.
func NewFilterStage[T any](pred Stage[T], test func(T) bool) *FilterStage[T] {
	return &FilterStage[T]{pred: pred, test: test}
}

// HasMore implements [Stage].
func (s *FilterStage[T]) HasMore() bool {
	if s.primed {
		return true
	}
	for s.pred.HasMore() {
		v := s.pred.Next()
		if s.test(v) {
			s.ahead = v
			s.primed = true
			return true
		}
	}
	return false
}

// Next implements [Stage].
func (s *FilterStage[T]) Next() T {
	s.consume("filter")
	v := s.ahead
	s.ahead = *new(T)
	return v
}

// Filter returns a stream of the elements that satisfy test.
func (s *Stream[T]) Filter(test func(T) bool) *Stream[T] {
	return derive(s, "Filter", func(pred Stage[T]) Stage[T] {
		return NewFilterStage(pred, test)
	})
}

// TakeWhileStage yields upstream elements until the first one that
// fails a predicate. The failing element is discarded and nothing
// further is pulled.
type TakeWhileStage[T any] struct {
	primer
	pred    Stage[T]
	test    func(T) bool
	ahead   T
	stopped bool
}

var _ Stage[int] = (*TakeWhileStage[int])(nil)

// HasMore implements [Stage].
func (s *TakeWhileStage[T]) HasMore() bool {
	if s.primed {
		return true
	}
	if s.stopped || !s.pred.HasMore() {
		return false
	}
	v := s.pred.Next()
	if !s.test(v) {
		s.stopped = true
		return false
	}
	s.ahead = v
	s.primed = true
	return true
}

// Next implements [Stage].
func (s *TakeWhileStage[T]) Next() T {
	s.consume("take-while")
	v := s.ahead
	s.ahead = *new(T)
	return v
}

// TakeWhile returns a stream of the leading elements that satisfy test.
func (s *Stream[T]) TakeWhile(test func(T) bool) *Stream[T] {
	return derive(s, "TakeWhile", func(pred Stage[T]) Stage[T] {
		return &TakeWhileStage[T]{pred: pred, test: test}
	})
}

// SkipWhileStage discards the leading run of upstream elements that
// satisfy a predicate, then passes everything else through.
type SkipWhileStage[T any] struct {
	primer
	pred    Stage[T]
	test    func(T) bool
	ahead   T
	started bool
}

var _ Stage[int] = (*SkipWhileStage[int])(nil)

// HasMore implements [Stage].
func (s *SkipWhileStage[T]) HasMore() bool {
	if s.primed {
		return true
	}
	if s.started {
		if !s.pred.HasMore() {
			return false
		}
		s.ahead = s.pred.Next()
		s.primed = true
		return true
	}
	for s.pred.HasMore() {
		v := s.pred.Next()
		if !s.test(v) {
			s.started = true
			s.ahead = v
			s.primed = true
			return true
		}
	}
	return false
}

// Next implements [Stage].
func (s *SkipWhileStage[T]) Next() T {
	s.consume("skip-while")
	v := s.ahead
	s.ahead = *new(T)
	return v
}

// SkipWhile returns a stream without the leading elements that satisfy
// test.
func (s *Stream[T]) SkipWhile(test func(T) bool) *Stream[T] {
	return derive(s, "SkipWhile", func(pred Stage[T]) Stage[T] {
		return &SkipWhileStage[T]{pred: pred, test: test}
	})
}
