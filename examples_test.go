// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream_test

import (
	"fmt"
	"strings"

	"vawter.tech/stream"
)

func Example() {
	values := make([]int, 100)
	for i := range values {
		values[i] = i + 1
	}

	// Nothing is evaluated until AllMatch pulls elements through the
	// filter.
	allPositive := stream.FromSlice(values).
		Filter(func(v int) bool { return v%2 == 0 }).
		AllMatch(func(v int) bool { return v > 0 })
	fmt.Println(allPositive)

	// Output:
	// true
}

func ExampleMap() {
	words := stream.Map(
		stream.Of("lazy", "streams", "in", "go"),
		strings.ToUpper,
	)
	fmt.Println(stream.Collect(words, stream.Joining(" ")))

	// Output:
	// LAZY STREAMS IN GO
}

func ExampleDistinct() {
	fmt.Println(stream.Distinct(stream.Of(1, 2, 2, 3, 3, 3)).CollectInto(nil))

	// Output:
	// [1 2 3]
}

func ExampleStream_Reduce() {
	largest := stream.Of(5, 3, 8, 1).Reduce(func(a, b int) int { return max(a, b) })
	fmt.Println(largest)

	empty := stream.Empty[int]().Reduce(func(a, b int) int { return a + b })
	fmt.Println(empty)

	// Output:
	// Some(8)
	// None
}

func ExampleStream_Limit() {
	evens := stream.Generate(func(idx int) int { return idx + 1 }, 100).
		Filter(func(v int) bool { return v%2 == 0 }).
		Limit(10).
		CollectInto(nil)
	fmt.Println(evens)

	// Output:
	// [2 4 6 8 10 12 14 16 18 20]
}

func ExampleAverageOr() {
	odd := func(v float64) bool { return int(v)%2 != 0 }
	fmt.Println(stream.AverageOr(stream.Empty[float64]().Filter(odd), 0))
	fmt.Println(stream.Average(stream.Of(1.0, 2.0, 3.0, 4.0)))

	// Output:
	// 0
	// 2.5
}

func ExampleCollect() {
	byLength := stream.Collect(
		stream.Of("go", "is", "fun", "and", "lazy"),
		stream.GroupBy(func(s string) int { return len(s) }),
	)
	fmt.Println(byLength[2], byLength[3], byLength[4])

	// Output:
	// [go is] [fun and] [lazy]
}

func ExampleCatch() {
	s := stream.Of(1, 2, 3)
	_ = s.Filter(func(v int) bool { return v > 1 })

	// The original stream is now owned by the filter.
	err := stream.Catch(func() { s.Count() })
	fmt.Println(err != nil)

	// Output:
	// true
}

func ExampleStream_All() {
	for v := range stream.Of("a", "b", "c").Skip(1).All() {
		fmt.Println(v)
	}

	// Output:
	// b
	// c
}
