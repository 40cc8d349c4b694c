// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import "iter"

// A Stream is the fluent handle for a pipeline. It boxes the outermost
// [Stage] and enforces single ownership of that stage.
//
// Intermediate operations consume their receiver: the returned Stream
// owns the receiver's stage and the receiver must not be used again.
// Terminal operations leave ownership alone, so calling a second
// terminal operation on a drained Stream observes an empty sequence.
type Stream[T any] struct {
	stage Stage[T]
	life  *lifecycle
	owned bool
}

// lifecycle is shared along a single chain. It collects the release
// hooks of sources and the error reporters of fallible stages.
type lifecycle struct {
	closers []func()
	errs    []func() error
}

func (l *lifecycle) close() {
	closers := l.closers
	l.closers = nil
	for _, fn := range closers {
		fn()
	}
}

func (l *lifecycle) err() error {
	for _, fn := range l.errs {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}

func (l *lifecycle) merge(other *lifecycle) {
	l.closers = append(l.closers, other.closers...)
	l.errs = append(l.errs, other.errs...)
	other.closers = nil
	other.errs = nil
}

// From wraps a caller-implemented stage.
func From[T any](stage Stage[T]) *Stream[T] {
	return &Stream[T]{stage: stage, life: &lifecycle{}}
}

// derive transfers the receiver's stage into a new downstream stage.
func derive[T, U any](s *Stream[T], op string, build func(Stage[T]) Stage[U]) *Stream[U] {
	return &Stream[U]{stage: build(s.take(op)), life: s.life}
}

// take marks the receiver as owned by a downstream consumer.
func (s *Stream[T]) take(op string) Stage[T] {
	s.live(op)
	s.owned = true
	return s.stage
}

// live raises a violation if the receiver has already been chained.
func (s *Stream[T]) live(op string) {
	if s.owned {
		violation("%s: stream is already owned by a downstream stage", op)
	}
}

// Stage transfers ownership of the outermost stage to the caller, for
// manual pulling.
func (s *Stream[T]) Stage() Stage[T] {
	return s.take("Stage")
}

// All returns a single-use iterator over the remaining elements. The
// Stream is closed when the iteration ends.
func (s *Stream[T]) All() iter.Seq[T] {
	stage := s.take("All")
	return func(yield func(T) bool) {
		defer s.Close()
		for stage.HasMore() {
			if !yield(stage.Next()) {
				return
			}
		}
	}
}

// Close releases any resources held by the pipeline's sources. It is
// called by every terminal operation and is safe to call repeatedly.
func (s *Stream[T]) Close() {
	s.life.close()
}

// Err returns the first error recorded by a stage that can fail, such
// as [Stream.Throttle]. A stage that fails ends the stream early.
func (s *Stream[T]) Err() error {
	return s.life.err()
}
