// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"context"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// TestThrottlePacing uses synctest to advance fake time while the
// limiter waits.
func TestThrottlePacing(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		r := require.New(t)

		start := time.Now()
		var stamps []time.Duration
		lim := rate.NewLimiter(rate.Every(time.Second), 1)
		got := Of(1, 2, 3).
			Throttle(t.Context(), lim).
			Peek(func(int) { stamps = append(stamps, time.Since(start)) }).
			CollectInto(nil)

		r.Equal([]int{1, 2, 3}, got)
		r.Len(stamps, 3)
		r.Less(stamps[0], time.Second)
		r.GreaterOrEqual(stamps[1], time.Second)
		r.GreaterOrEqual(stamps[2], 2*time.Second)
	})
}

func TestThrottleIsLazy(t *testing.T) {
	r := require.New(t)

	lim := rate.NewLimiter(rate.Every(time.Hour), 1)
	s, counter := tracked(1, 2, 3)
	first := s.Throttle(t.Context(), lim).FindFirst()
	r.Equal(Some(1), first)
	r.Equal(1, counter.pulls)
	// Only the token for the delivered element was spent.
	r.InDelta(0, lim.Tokens(), 0.01)
}

func TestThrottleCanceled(t *testing.T) {
	r := require.New(t)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	lim := rate.NewLimiter(rate.Every(time.Hour), 1)
	s := Of(1, 2, 3).Throttle(ctx, lim).Filter(func(int) bool { return true })
	r.NoError(s.Err())

	// The burst admits one element, then the wait fails.
	r.Equal([]int{1}, s.CollectInto(nil))
	r.ErrorIs(s.Err(), context.Canceled)

	// The stage stays ended.
	r.Zero(s.Count())
}

func TestThrottleNoErrorWhenDrained(t *testing.T) {
	r := require.New(t)

	s := Of(1, 2).Throttle(t.Context(), rate.NewLimiter(rate.Inf, 0))
	r.Equal(2, s.Count())
	r.NoError(s.Err())
}
