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

// Join creates a Future which aggregates values from a collection of Futures.
//
// The returned Future collects the success values into a []T in the same order as the inputs are
// given and settles once every input has settled. The first input to settle as a failure settles
// the output with that failure; values from the remaining inputs are discarded. Joining no
// futures yields an immediately-successful empty slice.
func Join[T any](futures ...Future[T]) Future[[]T] {
	out := NewPromise[[]T]()
	if len(futures) == 0 {
		out.Honor([]T{})
		return out.Future()
	}

	var (
		values  = make([]T, len(futures))
		pending = len(futures)
		failed  bool
	)
	for i, f := range futures {
		i := i
		f.Observe(func(r result.Result[T]) {
			if failed {
				return
			}

			value, err := r.Get()
			if err != nil {
				failed = true
				out.Repudiate(err)
				return
			}

			values[i] = value
			pending--
			if pending == 0 {
				out.Honor(values)
			}
		})
	}
	return out.Future()
}
