// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package baseenc implements the binary-to-text encodings described in
// RFC 4648 (base16, base32, base32hex, base64, and base64url) along with
// a binary encoding (base2).
//
// Every encoding is driven by the same engine, which repacks 8-bit bytes into
// k-bit groups (where k is 1, 4, 5, or 6) and maps each group to a symbol of
// an alphabet.Alphabet. Decoding reverses the process using the lazily built
// reverse lookup table of the alphabet and reports malformed input as either
// an invalid character (see CharacterError) or an invalid length.
//
// Data may be converted all at once with the methods of Encoding or
// incrementally with an Encoder or Decoder.
package baseenc

import (
	"fmt"
	"runtime"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "baseenc: " + string(e) }

var (
	// ErrInvalidCharacter is the underlying cause of every CharacterError.
	ErrInvalidCharacter error = Error("invalid character")

	// ErrInvalidLength reports that the input ended in the middle of a group
	// of symbols that cannot represent a whole number of bytes, or that the
	// padding does not complete exactly one block.
	ErrInvalidLength error = Error("invalid length")
)

// CharacterError reports an input byte that is neither a symbol of the
// alphabet, nor padding, nor skipped by the skip predicate.
// It is also used for padding followed by data and for a final symbol
// whose discarded bits are not zero.
type CharacterError struct {
	Offset int64 // Offset of the byte within the whole input
	Char   byte  // The offending byte
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("baseenc: invalid character %q at offset %d", e.Char, e.Offset)
}

// Unwrap returns ErrInvalidCharacter so that errors.Is reports the kind.
func (e *CharacterError) Unwrap() error { return ErrInvalidCharacter }

// Cause returns ErrInvalidCharacter for use with github.com/pkg/errors.
func (e *CharacterError) Cause() error { return ErrInvalidCharacter }

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
