// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package baseenc

import "github.com/dsnet/baseenc/internal"

// SkipFunc reports whether a decoder should discard the byte c.
//
// The predicate is only consulted for bytes that are not data symbols of the
// alphabet, so a predicate can never drop part of the encoded data.
// It may be consulted for the padding symbol, in which case returning true
// treats padding as noise.
type SkipFunc func(c byte) bool

var (
	// SkipNone skips nothing. It is the default for every Encoding.
	SkipNone SkipFunc = func(byte) bool { return false }

	// SkipAll skips every byte that is not a data symbol, including padding.
	SkipAll SkipFunc = func(byte) bool { return true }

	// SkipSpace skips ASCII white space.
	SkipSpace SkipFunc = func(c byte) bool { return internal.SpaceLUT[c] }
)

// SkipBytes returns a predicate that skips every byte in set.
func SkipBytes(set string) SkipFunc {
	var lut [256]bool
	for i := 0; i < len(set); i++ {
		lut[set[i]] = true
	}
	return func(c byte) bool { return lut[c] }
}
