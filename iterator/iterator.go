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

// Package iterator provides lazy iterators over sequences of elements, following the Iterator
// Guidelines established for Google Cloud Client Libraries for Go [0]: an iterator exposes a
// single Next method which returns the sentinel error Done when there are no more elements.
//
//	iter := iterator.Of(1, 2, 3)
//	for {
//		n, err := iter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			handleError(err)
//		}
//		process(n)
//	}
//
// Elements can be piped through transformations with Pipe and Filter and drained with Collect
// and Each.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator

// done is defined to serve as type for Done. It allows us to define an immutable global variable.
type done int

// Error implements Go's error inteface for "done".
func (done) Error() string {
	return "no more items in iterator"
}

var _ error = done(0)

// Done is returned by an iterator's Next method when the iteration is complete; when there are no
// more items to return.
const Done done = 0

// An Iterator yields the elements of a sequence one at a time.
type Iterator[T any] interface {
	// Next returns the next element in the iteration. It returns the error Done to indicate that
	// there's no more element.
	Next() (T, error)
}

// sliceIterator implements Iterator over the elements of a slice.
type sliceIterator[T any] struct {
	elements []T
}

// Next implements Iterator.
func (iter *sliceIterator[T]) Next() (T, error) {
	if len(iter.elements) == 0 {
		var zero T
		return zero, Done
	}
	element := iter.elements[0]
	iter.elements = iter.elements[1:]
	return element, nil
}

// Of returns an iterator over the given elements in order.
func Of[T any](elements ...T) Iterator[T] {
	return FromSlice(elements)
}

// FromSlice returns an iterator over the elements of s in order. The iterator reads s directly;
// the caller must not mutate s before the iteration completes.
func FromSlice[T any](s []T) Iterator[T] {
	return &sliceIterator[T]{elements: s}
}
