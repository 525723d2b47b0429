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

package iterator

// pipe implements Iterator returned by Pipe.
type pipe[T, U any] struct {
	source    Iterator[T]
	transform func(T) (U, error)
}

// Next implements Iterator.
func (iter *pipe[T, U]) Next() (U, error) {
	element, err := iter.source.Next()
	if err != nil {
		var zero U
		return zero, err
	}
	return iter.transform(element)
}

// Pipe returns an iterator that yields the elements of source passed through transform, applied
// lazily as elements are requested. An error returned by transform terminates the iteration with
// that error; Done from source ends it as usual.
func Pipe[T, U any](source Iterator[T], transform func(T) (U, error)) Iterator[U] {
	return &pipe[T, U]{
		source:    source,
		transform: transform,
	}
}

// filter implements Iterator returned by Filter.
type filter[T any] struct {
	source Iterator[T]
	keep   func(T) bool
}

// Next implements Iterator.
func (iter *filter[T]) Next() (T, error) {
	for {
		element, err := iter.source.Next()
		if err != nil {
			return element, err
		}
		if iter.keep(element) {
			return element, nil
		}
	}
}

// Filter returns an iterator that yields only the elements of source for which keep returns
// true.
func Filter[T any](source Iterator[T], keep func(T) bool) Iterator[T] {
	return &filter[T]{
		source: source,
		keep:   keep,
	}
}

// Collect drains iter into a slice. Done ends the collection successfully; any other error is
// returned with a nil slice.
func Collect[T any](iter Iterator[T]) ([]T, error) {
	var elements []T
	for {
		element, err := iter.Next()
		if err == Done {
			return elements, nil
		} else if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
}

// Each drains iter, calling visit on every element in order. An error from visit or from the
// iteration stops the drain and is returned; Done is not.
func Each[T any](iter Iterator[T], visit func(T) error) error {
	for {
		element, err := iter.Next()
		if err == Done {
			return nil
		} else if err != nil {
			return err
		}
		if err := visit(element); err != nil {
			return err
		}
	}
}
