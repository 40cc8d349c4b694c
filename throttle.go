// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"context"
	"runtime/trace"

	"golang.org/x/time/rate"
)

// ThrottleStage paces the delivery of upstream elements with a
// [rate.Limiter]. A token is reserved for each element before it is
// reported by HasMore. If waiting fails, the stage ends and retains
// the error.
type ThrottleStage[T any] struct {
	primer
	ctx     context.Context
	limiter *rate.Limiter
	pred    Stage[T]
	err     error
}

var _ Stage[int] = (*ThrottleStage[int])(nil)

// NewThrottleStage wraps the predecessor.
func NewThrottleStage[T any](ctx context.Context, pred Stage[T], limiter *rate.Limiter) *ThrottleStage[T] {
	return &ThrottleStage[T]{ctx: ctx, limiter: limiter, pred: pred}
}

// HasMore implements [Stage].
func (s *ThrottleStage[T]) HasMore() bool {
	if s.primed {
		return true
	}
	if s.err != nil || !s.pred.HasMore() {
		return false
	}
	// Fast-path: there's capacity.
	if !s.limiter.Allow() {
		region := trace.StartRegion(s.ctx, "stream throttle wait")
		err := s.limiter.Wait(s.ctx)
		region.End()
		if err != nil {
			s.err = err
			return false
		}
	}
	s.primed = true
	return true
}

// Next implements [Stage].
func (s *ThrottleStage[T]) Next() T {
	s.consume("throttle")
	return s.pred.Next()
}

// Err returns the error that ended the stage, if any.
func (s *ThrottleStage[T]) Err() error {
	return s.err
}

// Throttle returns a stream that delivers elements no faster than the
// limiter permits. If the context is canceled or the limiter cannot
// satisfy a wait, the stream ends early and [Stream.Err] reports why.
func (s *Stream[T]) Throttle(ctx context.Context, limiter *rate.Limiter) *Stream[T] {
	stage := NewThrottleStage(ctx, s.take("Throttle"), limiter)
	s.life.errs = append(s.life.errs, stage.Err)
	return &Stream[T]{stage: stage, life: s.life}
}
