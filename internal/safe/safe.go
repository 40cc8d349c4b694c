// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package safe contains utilities for reporting misuse of a pipeline.
package safe

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

const captureDepth = 32

// A Violation associates a contract error with the stack of the caller
// that broke the contract.
type Violation struct {
	Err   error
	Stack []uintptr
}

// Error implements error.
func (e *Violation) Error() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "violation: %v\n", e.Err)
	frames := runtime.CallersFrames(e.Stack)
	for {
		frame, more := frames.Next()
		_, _ = fmt.Fprintf(&sb, "%s ( %s:%d )\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}

// String is for debugging use only.
func (e *Violation) String() string {
	return e.Error()
}

// Unwrap return the enclosed error.
func (e *Violation) Unwrap() error { return e.Err }

// Raise panics with a [Violation] that wraps the sentinel error with a
// formatted message.
func Raise(sentinel error, format string, args ...any) {
	stack := make([]uintptr, captureDepth)
	stack = stack[:runtime.Callers(2, stack)]
	panic(&Violation{
		Err:   fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
		Stack: stack,
	})
}

// Catch executes the function. If the function panics with a
// [Violation], it is returned as an error. Any other panic value is
// re-raised unchanged.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			var v *Violation
			if errors.As(e, &v) {
				err = v
				return
			}
		}
		panic(r)
	}()
	fn()
	return
}
