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

package future

import (
	"errors"
	"fmt"

	"github.com/botobag/eventual/result"
)

// ErrNilChainedFuture is the failure delivered by Chain when the transform returns a nil Future
// with a nil error.
var ErrNilChainedFuture = errors.New("future: chained transform returned nil future")

// Chain sequences an asynchronous step after f: once f settles as a success, transform maps the
// value to a Future for the next step, and the returned Future forwards that step's eventual
// outcome verbatim.
//
// Failures short-circuit. If f settles as a failure, the returned Future settles with the same
// failure and transform is never invoked. If transform returns a non-nil error or panics, the
// returned Future settles with that failure and any Future transform produced is never consulted.
func Chain[T, U any](f Future[T], transform func(T) (Future[U], error)) Future[U] {
	out := NewPromise[U]()
	f.Observe(func(r result.Result[T]) {
		value, err := r.Get()
		if err != nil {
			out.Repudiate(err)
			return
		}

		next, err := applyTransform(transform, value)
		if err != nil {
			out.Repudiate(err)
			return
		}
		if next == nil {
			out.Repudiate(ErrNilChainedFuture)
			return
		}

		next.Observe(func(r result.Result[U]) {
			if value, err := r.Get(); err != nil {
				out.Repudiate(err)
			} else {
				out.Honor(value)
			}
		})
	})
	return out.Future()
}

// Transform maps the success value of f with a plain function. It wraps the transformed value as
// an already-successful Future and delegates sequencing and failure propagation to Chain.
func Transform[T, U any](f Future[T], transform func(T) (U, error)) Future[U] {
	return Chain(f, func(value T) (Future[U], error) {
		transformed, err := transform(value)
		if err != nil {
			return nil, err
		}
		return Ready(transformed), nil
	})
}

// applyTransform invokes transform, converting an escaping panic into an ordinary error so the
// failure travels the chain as data.
func applyTransform[T, U any](transform func(T) (Future[U], error), value T) (next Future[U], err error) {
	defer func() {
		if reason := recover(); reason != nil {
			next = nil
			if e, ok := reason.(error); ok {
				err = fmt.Errorf("future: transform panicked: %w", e)
			} else {
				err = fmt.Errorf("future: transform panicked: %v", reason)
			}
		}
	}()
	return transform(value)
}
