// Copyright 2026 Bob Vawter (bob@vawter.org)
// SPDX-License-Identifier: Apache-2.0

// Package stream provides lazy, single-pass pipelines over sequences of
// values.
//
// A pipeline is a chain of [Stage] values rooted at exactly one source.
// Each intermediate stage owns its predecessor and pulls from it only
// when a downstream consumer asks for an element:
//
//  1. Construct a source – [Empty], [Of], [FromSlice], [OfN], [Span],
//     [Generate], [FromFunc], or [FromSeq].
//  2. Chain intermediate operations – [Stream.Filter], [Map],
//     [Stream.Limit], [Stream.Skip], [Distinct], and friends.
//  3. Drive the pipeline with exactly one terminal operation – for
//     example [Stream.Count], [Stream.Reduce], or [Collect].
//
// No work is done until step 3. Building a chain performs no pulls and
// calls no predicates or transforms.
//
//	n := stream.Of(1, 2, 3, 4, 5, 6).
//	    Filter(func(v int) bool { return v%2 == 0 }).
//	    Count() // 3
//
// # Ownership
//
// Intermediate operations consume their receiver. The receiver must
// not be chained again or used with a terminal operation; doing so
// panics with an error wrapping [ErrContract]. A pipeline is not
// restartable. Running a second terminal operation on a drained
// [Stream] sees no remaining elements rather than the original data.
//
// # Short-circuiting
//
// [Stream.AnyMatch], [Stream.AllMatch], [Stream.NoneMatch],
// [Stream.FindFirst], [Stream.Limit], and [Stream.TakeWhile] stop
// pulling once their result is known. Callbacks must therefore not
// assume a fixed number of invocations.
//
// # Type-changing operations
//
// Go methods cannot introduce type parameters, so operations that
// change the element type or require a narrower constraint are
// package-level functions: [Map], [Distinct], [Min], [Max], [Fold],
// [Average], [AverageOr], and [Collect].
//
// # Contract violations
//
// Calling [Stage.Next] without a preceding successful [Stage.HasMore],
// reusing a chained [Stream], and passing negative bounds to
// [Stream.Limit] or [Stream.Skip] all panic. The panic value wraps
// [ErrContract] and records the offending call stack. [Catch] converts
// such a panic into an error. Panics raised by caller-supplied
// functions pass through the pipeline untouched.
package stream
