// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLaziness(t *testing.T) {
	r := require.New(t)

	calls := 0
	s, counter := tracked(rangeOf(1, 10)...)
	chain := Distinct(Map(s.
		Skip(2).
		Filter(func(v int) bool { calls++; return true }).
		TakeWhile(func(int) bool { calls++; return true }).
		SkipWhile(func(int) bool { calls++; return false }).
		Peek(func(int) { calls++ }), func(v int) int { calls++; return v }).
		Limit(5))
	r.Zero(counter.pulls)
	r.Zero(calls)

	r.Equal([]int{3, 4, 5, 6, 7}, chain.CollectInto(nil))
	r.Equal(7, counter.pulls)
}

func TestFilter(t *testing.T) {
	r := require.New(t)

	values := rangeOf(1, 37)
	want := 0
	for _, v := range values {
		if v%3 == 0 {
			want++
		}
	}
	r.Equal(want, FromSlice(values).Filter(func(v int) bool { return v%3 == 0 }).Count())

	// The predicate sees each upstream element once, in order, and
	// nothing past the first match.
	var seen []int
	s, counter := tracked(1, 3, 5, 6, 7, 8)
	first := s.Filter(func(v int) bool {
		seen = append(seen, v)
		return isEven(v)
	}).FindFirst()
	r.Equal(Some(6), first)
	r.Equal([]int{1, 3, 5, 6}, seen)
	r.Equal(4, counter.pulls)

	r.Zero(Of(1, 3, 5).Filter(isEven).Count())
}

func TestMap(t *testing.T) {
	r := require.New(t)

	calls := 0
	got := Map(Of(1, 2, 3), func(v int) string {
		calls++
		return strconv.Itoa(v * 10)
	}).CollectInto(nil)
	r.Equal([]string{"10", "20", "30"}, got)
	r.Equal(3, calls)

	lengths := Map(Map(Of("a", "bb", "ccc"), func(s string) int { return len(s) }),
		func(n int) float64 { return float64(n) / 2 })
	r.Equal([]float64{0.5, 1, 1.5}, lengths.CollectInto(nil))
}

func TestLimit(t *testing.T) {
	tcs := []struct {
		name      string
		available int
		limit     int
	}{
		{"zero", 10, 0},
		{"fewer", 10, 3},
		{"exact", 10, 10},
		{"more", 4, 10},
		{"empty", 0, 5},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			values := rangeOf(1, tc.available)
			s, counter := tracked(values...)
			got := s.Limit(tc.limit).CollectInto(nil)
			want := min(tc.limit, tc.available)
			r.Len(got, want)
			r.Equal(append([]int(nil), values[:want]...), got)
			r.Equal(want, counter.pulls)
		})
	}
}

func TestLimitNegative(t *testing.T) {
	r := require.New(t)
	requireViolation(r, func() { Of(1).Limit(-1) }, "negative bound")
}

func TestSkip(t *testing.T) {
	tcs := []struct {
		name      string
		available int
		skip      int
	}{
		{"zero", 5, 0},
		{"fewer", 5, 2},
		{"exact", 5, 5},
		{"more", 3, 10},
		{"empty", 0, 1},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			r := require.New(t)

			values := rangeOf(1, tc.available)
			got := FromSlice(values).Skip(tc.skip).CollectInto(nil)
			want := max(tc.available-tc.skip, 0)
			r.Len(got, want)
			r.Equal(append([]int(nil), values[tc.available-want:]...), got)
		})
	}
}

func TestSkipIsDeferred(t *testing.T) {
	r := require.New(t)

	s, counter := tracked(1, 2, 3, 4)
	skipped := s.Skip(3)
	r.Zero(counter.pulls)
	stage := skipped.Stage()
	r.True(stage.HasMore())
	r.Equal(3, counter.pulls)
	r.Equal(4, stage.Next())

	requireViolation(r, func() { Of(1).Skip(-2) }, "negative count")
}

func TestDistinct(t *testing.T) {
	r := require.New(t)

	r.Equal([]int{1, 2, 3}, Distinct(Of(1, 2, 2, 3, 3, 3)).CollectInto(nil))
	r.Equal([]string{"b", "a", "c"}, Distinct(Of("b", "a", "b", "c", "a")).CollectInto(nil))
	r.Empty(Distinct(Empty[int]()).CollectInto(nil))

	type point struct{ X, Y int }
	r.Equal(2, Distinct(Of(point{1, 2}, point{1, 2}, point{2, 1})).Count())

	// Interface elements are fine while their dynamic types are hashable.
	r.Equal([]any{1, "a"}, Distinct(Of[any](1, "a", 1)).CollectInto(nil))
	r.Panics(func() { Distinct(Of[any](1, []int{2})).Count() })
}

func TestTakeWhile(t *testing.T) {
	r := require.New(t)

	s, counter := tracked(2, 4, 5, 6, 8)
	r.Equal([]int{2, 4}, s.TakeWhile(isEven).CollectInto(nil))
	// The failing element is pulled, nothing after it.
	r.Equal(3, counter.pulls)

	r.Empty(Of(1, 2).TakeWhile(isEven).CollectInto(nil))
}

func TestSkipWhile(t *testing.T) {
	r := require.New(t)

	r.Equal([]int{5, 6, 8}, Of(2, 4, 5, 6, 8).SkipWhile(isEven).CollectInto(nil))
	r.Empty(Of(2, 4).SkipWhile(isEven).CollectInto(nil))
	r.Equal([]int{1, 2}, Of(1, 2).SkipWhile(isEven).CollectInto(nil))
}

func TestPeek(t *testing.T) {
	r := require.New(t)

	var seen []int
	got := Of(1, 2, 3, 4).Peek(func(v int) { seen = append(seen, v) }).Limit(2).CollectInto(nil)
	r.Equal([]int{1, 2}, got)
	r.Equal([]int{1, 2}, seen)
}

func TestConcat(t *testing.T) {
	r := require.New(t)

	got := Concat(Of(1, 2), Empty[int](), Of(3), FromSlice([]int{4, 5})).CollectInto(nil)
	r.Equal([]int{1, 2, 3, 4, 5}, got)

	r.Zero(Concat[int]().Count())

	a, ca := tracked(1, 2)
	b, cb := tracked(3, 4)
	r.Equal(Some(2), Concat(a, b).Filter(isEven).FindFirst())
	r.Equal(2, ca.pulls)
	r.Zero(cb.pulls)
}

func TestSequenceScenarios(t *testing.T) {
	r := require.New(t)

	// Even numbers, less the first two, bounded to three.
	got := FromSlice(rangeOf(1, 100)).
		Filter(isEven).
		Skip(2).
		Limit(3).
		CollectInto(nil)
	r.Equal([]int{6, 8, 10}, got)

	words := Map(Distinct(Of(3, 1, 3, 2, 1)), strconv.Itoa)
	r.Equal("3,1,2", Collect(words, Joining(",")))
}
