// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"cmp"
	"container/list"
)

// Number is satisfied by the built-in integer and floating-point types
// and by types derived from them.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// drain is the loop shared by the terminal operations. It stops early
// when fn returns false and closes the stream on the way out.
func (s *Stream[T]) drain(op string, fn func(T) bool) {
	s.live(op)
	defer s.Close()
	for s.stage.HasMore() {
		if !fn(s.stage.Next()) {
			return
		}
	}
}

// AllMatch reports whether every element satisfies test. It stops at
// the first element that does not. An empty stream matches.
func (s *Stream[T]) AllMatch(test func(T) bool) bool {
	ret := true
	s.drain("AllMatch", func(v T) bool {
		ret = test(v)
		return ret
	})
	return ret
}

// AnyMatch reports whether some element satisfies test. It stops at
// the first element that does.
func (s *Stream[T]) AnyMatch(test func(T) bool) bool {
	ret := false
	s.drain("AnyMatch", func(v T) bool {
		ret = test(v)
		return !ret
	})
	return ret
}

// NoneMatch reports whether no element satisfies test. It stops at the
// first element that does. An empty stream matches.
func (s *Stream[T]) NoneMatch(test func(T) bool) bool {
	ret := true
	s.drain("NoneMatch", func(v T) bool {
		ret = !test(v)
		return ret
	})
	return ret
}

// Count returns the number of elements produced.
func (s *Stream[T]) Count() int {
	n := 0
	s.drain("Count", func(T) bool {
		n++
		return true
	})
	return n
}

// FindFirst returns the first element, if any.
func (s *Stream[T]) FindFirst() Optional[T] {
	var ret Optional[T]
	s.drain("FindFirst", func(v T) bool {
		ret = Some(v)
		return false
	})
	return ret
}

// ForEach calls fn with each element, in order.
func (s *Stream[T]) ForEach(fn func(T)) {
	s.drain("ForEach", func(v T) bool {
		fn(v)
		return true
	})
}

// MinFunc returns the least element according to the three-way
// comparison. Among equal least elements, the first one wins.
func (s *Stream[T]) MinFunc(compare func(a, b T) int) Optional[T] {
	return s.best("MinFunc", func(candidate, best T) bool {
		return compare(candidate, best) < 0
	})
}

// MaxFunc returns the greatest element according to the three-way
// comparison. Among equal greatest elements, the first one wins.
func (s *Stream[T]) MaxFunc(compare func(a, b T) int) Optional[T] {
	return s.best("MaxFunc", func(candidate, best T) bool {
		return compare(candidate, best) > 0
	})
}

// best replaces the running result only when a candidate is strictly
// better, so ties keep the earliest element.
func (s *Stream[T]) best(op string, better func(candidate, best T) bool) Optional[T] {
	var ret T
	found := false
	s.drain(op, func(v T) bool {
		if !found || better(v, ret) {
			ret = v
			found = true
		}
		return true
	})
	if !found {
		return None[T]()
	}
	return Some(ret)
}

// Min returns the least element in natural order.
func Min[T cmp.Ordered](s *Stream[T]) Optional[T] {
	return s.MinFunc(cmp.Compare[T])
}

// Max returns the greatest element in natural order.
func Max[T cmp.Ordered](s *Stream[T]) Optional[T] {
	return s.MaxFunc(cmp.Compare[T])
}

// Reduce folds the elements left to right, using the first element as
// the initial accumulator. An empty stream yields an empty result.
func (s *Stream[T]) Reduce(fn func(acc, v T) T) Optional[T] {
	var acc T
	found := false
	s.drain("Reduce", func(v T) bool {
		if found {
			acc = fn(acc, v)
		} else {
			acc = v
			found = true
		}
		return true
	})
	if !found {
		return None[T]()
	}
	return Some(acc)
}

// ReduceFrom folds the elements left to right, starting from seed. The
// result is always present.
func (s *Stream[T]) ReduceFrom(seed T, fn func(acc, v T) T) Optional[T] {
	acc := seed
	s.drain("ReduceFrom", func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return Some(acc)
}

// Fold is a seeded left fold whose accumulator type may differ from the
// element type.
func Fold[T, A any](s *Stream[T], seed A, fn func(acc A, v T) A) A {
	acc := seed
	s.drain("Fold", func(v T) bool {
		acc = fn(acc, v)
		return true
	})
	return acc
}

// Average returns the arithmetic mean of the elements, or zero if there
// are none. The sum is accumulated in T, so integer types produce a
// truncated mean.
func Average[T Number](s *Stream[T]) T {
	var zero T
	return AverageOr(s, zero)
}

// AverageOr returns the arithmetic mean of the elements, or identity if
// there are none.
func AverageOr[T Number](s *Stream[T], identity T) T {
	var sum T
	count := 0
	s.drain("Average", func(v T) bool {
		sum += v
		count++
		return true
	})
	if count == 0 {
		return identity
	}
	return divide(sum, count)
}

// divide computes sum / count without converting count into T, which
// would wrap for narrow integer types.
func divide[T Number](sum T, count int) T {
	switch {
	case T(1)/T(2) != 0:
		// Floating point.
		return sum / T(count)
	case T(0)-T(1) < 0:
		return T(int64(sum) / int64(count))
	default:
		return T(uint64(sum) / uint64(count))
	}
}

// CollectInto appends each element to dst, in order, and returns the
// extended slice.
func (s *Stream[T]) CollectInto(dst []T) []T {
	s.drain("CollectInto", func(v T) bool {
		dst = append(dst, v)
		return true
	})
	return dst
}

// CollectList pushes each element onto the back of the list, in order,
// and returns the list.
func (s *Stream[T]) CollectList(dst *list.List) *list.List {
	s.drain("CollectList", func(v T) bool {
		dst.PushBack(v)
		return true
	})
	return dst
}

// Collect inserts each element into the collector, in order, and
// returns the finished result.
func Collect[T, R any](s *Stream[T], c Collector[T, R]) R {
	s.drain("Collect", func(v T) bool {
		c.Insert(v)
		return true
	})
	return c.Finish()
}
