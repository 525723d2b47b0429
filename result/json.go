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

package result

import (
	jsoniter "github.com/json-iterator/go"
)

// jsonSuccess shapes the JSON encoding of a success Result.
type jsonSuccess[T any] struct {
	Value T `json:"value"`
}

// jsonFailure shapes the JSON encoding of a failure Result. Only the error message survives the
// encoding; the error value itself is not recoverable from JSON.
type jsonFailure struct {
	Error string `json:"error"`
}

// MarshalJSON implements json.Marshaler. A success encodes as {"value": ...} and a failure as
// {"error": "..."}.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.err != nil {
		return jsoniter.Marshal(jsonFailure{Error: r.err.Error()})
	}
	return jsoniter.Marshal(jsonSuccess[T]{Value: r.value})
}
