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

import "github.com/botobag/eventual/result"

// A Promise is the write capability over a deferred value. The producer that creates a Promise
// keeps it private, settles it exactly once with Honor or Repudiate, and hands consumers the
// narrowed view obtained from Future.
//
// A Promise must not be settled twice; a second call to Honor or Repudiate panics.
type Promise[T any] struct {
	// Settled outcome; nil until the Promise settles, then never changes again.
	settled *result.Result[T]

	// Observers pending settlement, in registration order. Drained and discarded when the
	// Promise settles, which also breaks any reference cycle back through observer closures.
	observers []func(result.Result[T])
}

// Promise implements Future.
var _ Future[int] = (*Promise[int])(nil)

// NewPromise creates an unsettled Promise. Use future.Ready to build a value that is known
// synchronously.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{}
}

// Future returns the observation-only view of p to hand to consumers. The returned value cannot
// be asserted back to a *Promise, so honoring and repudiating stay with the producer.
func (p *Promise[T]) Future() Future[T] {
	return observeOnly[T]{promise: p}
}

// Observe implements Future.
func (p *Promise[T]) Observe(observer func(result.Result[T])) {
	if p.settled != nil {
		observer(*p.settled)
		return
	}
	p.observers = append(p.observers, observer)
}

// Honor settles p with value as a success and delivers it to every pending observer in
// registration order. It panics if p has already settled.
func (p *Promise[T]) Honor(value T) {
	p.settle(result.Ok(value))
}

// Repudiate settles p with err as a failure and delivers it to every pending observer in
// registration order. It panics if p has already settled.
func (p *Promise[T]) Repudiate(err error) {
	p.settle(result.Err[T](err))
}

func (p *Promise[T]) settle(r result.Result[T]) {
	if p.settled != nil {
		panic("future: promise settled more than once")
	}
	p.settled = &r

	// Detach the observer list before firing so an observer that registers further observers
	// sees the settled state and gets synchronous delivery.
	observers := p.observers
	p.observers = nil
	for _, observer := range observers {
		observer(r)
	}
}
