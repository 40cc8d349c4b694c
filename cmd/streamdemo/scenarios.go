// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"math"

	"golang.org/x/time/rate"
	"vawter.tech/stream"
)

// scenario is a named, self-contained pipeline.
type scenario struct {
	Name string
	Run  func() any
}

func isEven(v int) bool { return v%2 == 0 }

// sequence returns the integers in [from, to].
func sequence(from, to int) []int {
	ret := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		ret = append(ret, i)
	}
	return ret
}

// scenarios returns the canned demonstrations.
func scenarios() []scenario {
	return []scenario{
		{"all-evens-positive", func() any {
			return stream.FromSlice(sequence(1, 100)).
				Filter(isEven).
				AllMatch(func(v int) bool { return v > 0 })
		}},
		{"count-evens", func() any {
			return stream.FromSlice(sequence(1, 100)).Filter(isEven).Count()
		}},
		{"reduce-max", func() any {
			return stream.Of(5, 3, 8, 1).Reduce(func(a, b int) int { return max(a, b) }).String()
		}},
		{"find-first-empty", func() any {
			return stream.Empty[int]().FindFirst().String()
		}},
		{"distinct", func() any {
			return stream.Distinct(stream.Of(1, 2, 2, 3, 3, 3)).CollectInto(nil)
		}},
		{"limit-evens", func() any {
			return stream.FromSlice(sequence(1, 100)).Filter(isEven).Limit(10).CollectInto(nil)
		}},
		{"average-filtered-empty", func() any {
			return stream.AverageOr(stream.Empty[int]().Filter(func(v int) bool { return !isEven(v) }), 0)
		}},
	}
}

// runPipeline builds the configured pipeline: the source range, less
// the first Skip even values, bounded to Limit and optionally paced.
func runPipeline(ctx context.Context, cfg *Config) ([]int, error) {
	s := stream.Span(sequence(cfg.From, cfg.To), 0, cfg.To-cfg.From+1).
		Filter(isEven).
		Skip(cfg.Skip).
		Limit(cfg.Limit)
	if cfg.Rate > 0 {
		burst := max(1, int(math.Ceil(cfg.Rate)))
		s = s.Throttle(ctx, rate.NewLimiter(rate.Limit(cfg.Rate), burst))
	}
	out := s.CollectInto(nil)
	return out, s.Err()
}
