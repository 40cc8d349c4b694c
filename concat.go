// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

// ConcatStage drains each of its predecessors in turn.
type ConcatStage[T any] struct {
	primer
	preds []Stage[T]
	idx   int
}

var _ Stage[int] = (*ConcatStage[int])(nil)

// HasMore implements [Stage].
func (s *ConcatStage[T]) HasMore() bool {
	for s.idx < len(s.preds) {
		if s.preds[s.idx].HasMore() {
			s.primed = true
			return true
		}
		s.preds[s.idx] = nil
		s.idx++
	}
	s.primed = false
	return false
}

// Next implements [Stage].
func (s *ConcatStage[T]) Next() T {
	s.consume("concat")
	return s.preds[s.idx].Next()
}

// Concat returns a stream of the elements of each input in order. The
// returned stream owns all of the inputs.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	life := &lifecycle{}
	preds := make([]Stage[T], len(streams))
	for i, s := range streams {
		preds[i] = s.take("Concat")
		life.merge(s.life)
	}
	return &Stream[T]{stage: &ConcatStage[T]{preds: preds}, life: life}
}
