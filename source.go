// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import "iter"

// SourceStage is a view over a caller-owned slice between two cursors.
// Elements are not copied; the slice must not be modified while the
// pipeline is in use.
type SourceStage[T any] struct {
	primer
	values []T
	cur    int
	end    int
}

var _ Stage[int] = (*SourceStage[int])(nil)

// HasMore implements [Stage].
func (s *SourceStage[T]) HasMore() bool {
	s.primed = s.cur != s.end
	return s.primed
}

// Next implements [Stage].
func (s *SourceStage[T]) Next() T {
	s.consume("source")
	v := s.values[s.cur]
	s.cur++
	return v
}

func newSource[T any](values []T, begin, end int) *Stream[T] {
	return From[T](&SourceStage[T]{values: values, cur: begin, end: end})
}

// Empty returns a stream with no elements.
func Empty[T any]() *Stream[T] {
	return newSource[T](nil, 0, 0)
}

// Of returns a stream over the arguments.
func Of[T any](values ...T) *Stream[T] {
	return newSource(values, 0, len(values))
}

// FromSlice returns a stream that views the slice.
func FromSlice[T any](values []T) *Stream[T] {
	return newSource(values, 0, len(values))
}

// OfN returns a stream over the first n elements of values.
func OfN[T any](values []T, n int) *Stream[T] {
	if n < 0 || n > len(values) {
		violation("OfN: length %d out of range [0, %d]", n, len(values))
	}
	return newSource(values, 0, n)
}

// Span returns a stream over values[begin:end], using the indices as a
// cursor pair.
func Span[T any](values []T, begin, end int) *Stream[T] {
	if begin < 0 || begin > end || end > len(values) {
		violation("Span: cursors [%d, %d) out of range for length %d", begin, end, len(values))
	}
	return newSource(values, begin, end)
}

// GenerateStage produces fn(0), fn(1), ... fn(n-1).
type GenerateStage[T any] struct {
	primer
	fn  func(idx int) T
	idx int
	n   int
}

var _ Stage[int] = (*GenerateStage[int])(nil)

// HasMore implements [Stage].
func (s *GenerateStage[T]) HasMore() bool {
	s.primed = s.idx < s.n
	return s.primed
}

// Next implements [Stage].
func (s *GenerateStage[T]) Next() T {
	s.consume("generate")
	v := s.fn(s.idx)
	s.idx++
	return v
}

// Generate returns a stream of n elements computed from their index.
// The function is called only when an element is demanded.
func Generate[T any](fn func(idx int) T, n int) *Stream[T] {
	if n < 0 {
		violation("Generate: negative length %d", n)
	}
	return From[T](&GenerateStage[T]{fn: fn, n: n})
}

// FuncStage adapts a pull function that returns false once exhausted.
type FuncStage[T any] struct {
	primer
	move func() (T, bool)
	next T
	done bool
}

var _ Stage[int] = (*FuncStage[int])(nil)

// HasMore implements [Stage].
func (s *FuncStage[T]) HasMore() bool {
	if s.primed {
		return true
	}
	if s.done {
		return false
	}
	v, ok := s.move()
	if !ok {
		s.done = true
		return false
	}
	s.next = v
	s.primed = true
	return true
}

// Next implements [Stage].
func (s *FuncStage[T]) Next() T {
	s.consume("func")
	v := s.next
	s.next = *new(T)
	return v
}

// FromFunc returns a stream that calls move for each element until it
// reports false. The function is not called again after that.
func FromFunc[T any](move func() (T, bool)) *Stream[T] {
	return From[T](&FuncStage[T]{move: move})
}

// FromSeq returns a stream over a standard-library iterator. The
// iterator is driven by [iter.Pull] and is stopped by [Stream.Close],
// which every terminal operation calls. A pipeline that is abandoned
// without a terminal operation, or whose [Stream.All] iterator is never
// ranged over, keeps the iterator's coroutine alive until Close is
// called; use defer s.Close() when that can happen.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	next, stop := iter.Pull(seq)
	ret := From[T](&FuncStage[T]{move: next})
	ret.life.closers = append(ret.life.closers, stop)
	return ret
}
