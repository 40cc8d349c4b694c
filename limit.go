// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

// LimitStage yields at most bound upstream elements. Once the bound is
// reached, the predecessor is never pulled again.
type LimitStage[T any] struct {
	primer
	pred  Stage[T]
	bound int
	count int
}

var _ Stage[int] = (*LimitStage[int])(nil)

// NewLimitStage wraps the predecessor.
func NewLimitStage[T any](pred Stage[T], bound int) *LimitStage[T] {
	if bound < 0 {
		violation("Limit: negative bound %d", bound)
	}
	return &LimitStage[T]{pred: pred, bound: bound}
}

// HasMore implements [Stage].
func (s *LimitStage[T]) HasMore() bool {
	if s.count >= s.bound {
		s.primed = false
		return false
	}
	s.primed = s.pred.HasMore()
	return s.primed
}

// Next implements [Stage].
func (s *LimitStage[T]) Next() T {
	s.consume("limit")
	s.count++
	return s.pred.Next()
}

// Limit returns a stream of at most n elements.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	return derive(s, "Limit", func(pred Stage[T]) Stage[T] {
		return NewLimitStage(pred, n)
	})
}

// SkipStage discards up to n upstream elements on the first call to
// HasMore, then passes everything else through.
type SkipStage[T any] struct {
	primer
	pred    Stage[T]
	n       int
	skipped bool
}

var _ Stage[int] = (*SkipStage[int])(nil)

// NewSkipStage wraps the predecessor.
func NewSkipStage[T any](pred Stage[T], n int) *SkipStage[T] {
	if n < 0 {
		violation("Skip: negative count %d", n)
	}
	return &SkipStage[T]{pred: pred, n: n}
}

// HasMore implements [Stage].
func (s *SkipStage[T]) HasMore() bool {
	if !s.skipped {
		s.skipped = true
		for i := 0; i < s.n && s.pred.HasMore(); i++ {
			s.pred.Next()
		}
	}
	s.primed = s.pred.HasMore()
	return s.primed
}

// Next implements [Stage].
func (s *SkipStage[T]) Next() T {
	s.consume("skip")
	return s.pred.Next()
}

// Skip returns a stream without its first n elements.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	return derive(s, "Skip", func(pred Stage[T]) Stage[T] {
		return NewSkipStage(pred, n)
	})
}
