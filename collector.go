// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import "strings"

// A Collector accumulates elements and produces a finished container.
// Any positional state belongs to the Collector instance, so a new
// Collector should be created for each call to [Collect].
type Collector[T, R any] interface {
	Insert(T)
	Finish() R
}

type funcCollector[T, R any] struct {
	insert func(T)
	finish func() R
}

func (c *funcCollector[T, R]) Insert(v T) { c.insert(v) }
func (c *funcCollector[T, R]) Finish() R { return c.finish() }

// NewCollector adapts a pair of functions into a [Collector].
func NewCollector[T, R any](insert func(T), finish func() R) Collector[T, R] {
	return &funcCollector[T, R]{insert: insert, finish: finish}
}

// ToSlice returns a Collector that appends elements to a new slice.
func ToSlice[T any]() Collector[T, []T] {
	var out []T
	return NewCollector(
		func(v T) { out = append(out, v) },
		func() []T { return out },
	)
}

// IndexedCollector places the Nth inserted element at dst[N]. The
// index starts at zero for each collection.
type IndexedCollector[T any] struct {
	dst []T
	idx int
}

var _ Collector[int, []int] = (*IndexedCollector[int])(nil)

// ToIndexed returns a Collector that writes into dst by position,
// without growing it. Inserting more than len(dst) elements is a
// contract violation.
func ToIndexed[T any](dst []T) *IndexedCollector[T] {
	return &IndexedCollector[T]{dst: dst}
}

// Insert implements [Collector].
func (c *IndexedCollector[T]) Insert(v T) {
	if c.idx >= len(c.dst) {
		violation("ToIndexed: element %d exceeds capacity %d", c.idx, len(c.dst))
	}
	c.dst[c.idx] = v
	c.idx++
}

// Finish implements [Collector]. It returns the filled prefix of the
// destination and rewinds the index, so a reused instance starts over
// at dst[0].
func (c *IndexedCollector[T]) Finish() []T {
	ret := c.dst[:c.idx]
	c.idx = 0
	return ret
}

// ToSet returns a Collector of the distinct elements.
func ToSet[T comparable]() Collector[T, map[T]struct{}] {
	out := make(map[T]struct{})
	return NewCollector(
		func(v T) { out[v] = struct{}{} },
		func() map[T]struct{} { return out },
	)
}

// ToMap returns a Collector that derives a key and value from each
// element. Later elements overwrite earlier ones with the same key.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V) Collector[T, map[K]V] {
	out := make(map[K]V)
	return NewCollector(
		func(v T) { out[key(v)] = value(v) },
		func() map[K]V { return out },
	)
}

// GroupBy returns a Collector that buckets elements by key. Each bucket
// preserves encounter order.
func GroupBy[T any, K comparable](key func(T) K) Collector[T, map[K][]T] {
	out := make(map[K][]T)
	return NewCollector(
		func(v T) {
			k := key(v)
			out[k] = append(out[k], v)
		},
		func() map[K][]T { return out },
	)
}

// Joining returns a Collector that concatenates strings with the
// separator between them.
func Joining(sep string) Collector[string, string] {
	var sb strings.Builder
	first := true
	return NewCollector(
		func(v string) {
			if !first {
				sb.WriteString(sep)
			}
			first = false
			sb.WriteString(v)
		},
		sb.String,
	)
}
