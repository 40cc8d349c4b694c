// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import "fmt"

// Optional holds either a value or nothing. It is returned by terminal
// operations for which "no element" is a legitimate outcome.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.ok
}

// MustGet returns the value. It is a contract violation to call MustGet
// on an empty Optional.
func (o Optional[T]) MustGet() T {
	if !o.ok {
		violation("MustGet called on an empty Optional")
	}
	return o.value
}

// OrElse returns the value if present, otherwise the fallback.
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value if present, otherwise the result of
// calling fn.
func (o Optional[T]) OrElseGet(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// String is for debugging use only.
func (o Optional[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
