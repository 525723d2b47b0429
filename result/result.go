/**
 * Copyright (c) 2023, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package result provides a Result type that holds the final outcome of an operation: either a
// value produced on success, or an error describing the failure. Exactly one of the two is active
// in any Result; there is no empty or partial state.
package result

import (
	"errors"
	"fmt"
)

// errUnspecified substitutes for a nil error given to Err so that a failure Result always carries
// a non-nil error.
var errUnspecified = errors.New("result: failure with unspecified error")

// A Result is a tagged union over a value of type T and an error. Use Ok and Err to construct one;
// the zero value is a success carrying the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a Result that carries value as a success.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err returns a Result that carries err as a failure. A nil err still produces a failure; it is
// replaced with a placeholder error to keep the failure tag representable.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errUnspecified
	}
	return Result[T]{err: err}
}

// IsSuccess returns true if r carries a value.
func (r Result[T]) IsSuccess() bool {
	return r.err == nil
}

// IsFailure returns true if r carries an error.
func (r Result[T]) IsFailure() bool {
	return r.err != nil
}

// Value projects r onto an optional value: the carried value and true on success, or the zero
// value of T and false on failure.
func (r Result[T]) Value() (T, bool) {
	if r.err != nil {
		var zero T
		return zero, false
	}
	return r.value, true
}

// Get unpacks r into Go's conventional (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Error returns the carried error, or nil if r is a success.
func (r Result[T]) Error() error {
	return r.err
}

// String renders r for diagnostics as either Success(value) or Failure(error).
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Failure(%v)", r.err)
	}
	return fmt.Sprintf("Success(%v)", r.value)
}
