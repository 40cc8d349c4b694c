// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"github.com/stretchr/testify/require"
)

// countingStage wraps a stage and records how many elements have been
// pulled through it.
type countingStage[T any] struct {
	Stage[T]
	pulls int
}

func (c *countingStage[T]) Next() T {
	c.pulls++
	return c.Stage.Next()
}

// tracked returns a stream over the values and the counter that
// observes its source.
func tracked[T any](values ...T) (*Stream[T], *countingStage[T]) {
	counter := &countingStage[T]{Stage: FromSlice(values).Stage()}
	return From[T](counter), counter
}

// rangeOf returns the integers in [from, to].
func rangeOf(from, to int) []int {
	ret := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		ret = append(ret, i)
	}
	return ret
}

func isEven(v int) bool { return v%2 == 0 }

// requireViolation asserts that fn panics with a contract violation.
func requireViolation(r *require.Assertions, fn func(), contains string) {
	err := Catch(fn)
	r.ErrorIs(err, ErrContract)
	r.ErrorContains(err, contains)
}
