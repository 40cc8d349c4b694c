// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

package stream

import (
	"errors"

	"vawter.tech/stream/internal/safe"
)

// ErrContract is wrapped by the value of every panic raised when a
// pipeline is misused. Use [errors.Is] or [Catch] to detect it.
var ErrContract = errors.New("stream contract violated")

// A Stage is one link of a pipeline.
//
// HasMore reports whether another element is available, pulling from
// upstream as needed to find it. Calling HasMore again before Next must
// not pull a second element. Next returns the element located by the
// most recent call to HasMore that returned true. Calling Next at any
// other time is a contract violation.
//
// Stages are single-pass. Once HasMore returns false, it continues to
// return false.
type Stage[T any] interface {
	HasMore() bool
	Next() T
}

// Catch executes the function and returns any contract violation that
// it raises as an error. Panics that are not contract violations, such
// as those from caller-supplied callbacks, propagate unchanged.
func Catch(fn func()) error {
	return safe.Catch(fn)
}

// violation panics with an error that wraps [ErrContract].
func violation(format string, args ...any) {
	safe.Raise(ErrContract, format, args...)
}

// primer is embedded by stages to enforce the HasMore/Next protocol.
type primer struct {
	primed bool
}

// consume clears the primed flag or raises a violation if HasMore
// did not precede the call.
func (p *primer) consume(stage string) {
	if !p.primed {
		violation("%s: Next called without a preceding successful HasMore", stage)
	}
	p.primed = false
}
