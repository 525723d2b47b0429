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

// Package future provides a single-fulfillment deferred value: a Promise that a producer settles
// exactly once, observed through a read-only Future by any number of consumers.
//
// A Future settles at most once, to either a success or a failure (see package result). Observers
// registered before settlement fire at settlement, in registration order; observers registered
// after settlement fire immediately and synchronously with the stored outcome. Either way every
// observer fires exactly once. An unsettled Future is simply silent; there is no "abandoned"
// notification.
//
// The package is concurrency-agnostic plumbing, not a scheduler. No operation blocks, hops
// threads, or takes a lock. All calls on a given Promise/Future instance must be serialized by
// the caller onto a single logical thread of control, such as a single-goroutine event loop;
// concurrent access from multiple goroutines is unsupported. There is no cancellation, no
// timeout, and no way to deregister an observer.
package future

import "github.com/botobag/eventual/result"

// A Future is a read-only handle to a value that becomes available at most once. Consumers
// register interest with Observe and compose derived futures with Chain and Transform; only the
// Promise that created the Future can settle it.
type Future[T any] interface {
	// Observe registers observer to receive the Future's outcome. If the Future has already
	// settled, observer is invoked immediately and synchronously with the stored outcome.
	// Otherwise it is appended to the observer list and invoked at settlement, after every
	// observer registered before it. Each registered observer is invoked exactly once over its
	// lifetime. Registration cannot fail.
	Observe(observer func(result.Result[T]))
}

// observeOnly narrows a Promise to its observation surface. It is the value handed to consumers
// so the fulfillment operations are not reachable even through a type assertion on the Future.
type observeOnly[T any] struct {
	promise *Promise[T]
}

// Observe implements Future.
func (f observeOnly[T]) Observe(observer func(result.Result[T])) {
	f.promise.Observe(observer)
}

// Ready returns a Future that is already settled with value as a success. Observing it delivers
// synchronously.
func Ready[T any](value T) Future[T] {
	promise := NewPromise[T]()
	promise.Honor(value)
	return promise.Future()
}

// Failed returns a Future that is already settled with err as a failure.
func Failed[T any](err error) Future[T] {
	promise := NewPromise[T]()
	promise.Repudiate(err)
	return promise.Future()
}
