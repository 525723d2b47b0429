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

package iterator_test

import (
	"errors"
	"strconv"

	"github.com/botobag/eventual/iterator"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Pipe", func() {
	It("transforms elements lazily as they are requested", func() {
		applied := 0
		piped := iterator.Pipe(iterator.Of(1, 2, 3), func(n int) (string, error) {
			applied++
			return strconv.Itoa(n), nil
		})
		Expect(applied).Should(BeZero())

		Expect(piped.Next()).Should(Equal("1"))
		Expect(applied).Should(Equal(1))

		Expect(iterator.Collect(piped)).Should(Equal([]string{"2", "3"}))
		Expect(applied).Should(Equal(3))
	})

	It("terminates the iteration with an error from the transform", func() {
		testErr := errors.New("element rejected")
		piped := iterator.Pipe(iterator.Of(1, 2), func(n int) (int, error) {
			if n == 2 {
				return 0, testErr
			}
			return n * 10, nil
		})

		Expect(piped.Next()).Should(Equal(10))

		_, err := piped.Next()
		Expect(err).Should(MatchError(testErr))
	})
})

var _ = Describe("Filter", func() {
	It("yields only elements the predicate keeps", func() {
		odds := iterator.Filter(iterator.Of(1, 2, 3, 4, 5), func(n int) bool {
			return n%2 == 1
		})

		Expect(iterator.Collect(odds)).Should(Equal([]int{1, 3, 5}))
	})

	It("reaches Done when no element passes", func() {
		none := iterator.Filter(iterator.Of(2, 4), func(n int) bool {
			return n%2 == 1
		})

		_, err := none.Next()
		Expect(err).Should(MatchError(iterator.Done))
	})
})

var _ = Describe("Collect", func() {
	It("drains an iterator into a slice", func() {
		Expect(iterator.Collect(iterator.Of("a", "b"))).Should(Equal([]string{"a", "b"}))
	})

	It("returns nil for an empty iteration", func() {
		collected, err := iterator.Collect(iterator.Of[int]())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(collected).Should(BeNil())
	})
})

var _ = Describe("Each", func() {
	It("visits every element in order", func() {
		var visited []int
		err := iterator.Each(iterator.Of(1, 2, 3), func(n int) error {
			visited = append(visited, n)
			return nil
		})

		Expect(err).ShouldNot(HaveOccurred())
		Expect(visited).Should(Equal([]int{1, 2, 3}))
	})

	It("stops at the first error from the visitor", func() {
		testErr := errors.New("stop here")
		var visited []int
		err := iterator.Each(iterator.Of(1, 2, 3), func(n int) error {
			visited = append(visited, n)
			if n == 2 {
				return testErr
			}
			return nil
		})

		Expect(err).Should(MatchError(testErr))
		Expect(visited).Should(Equal([]int{1, 2}))
	})
})
