// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of common lookup tables shared by the
// alphabet and codec packages.
//
// For performance reasons, these tables are plain arrays indexed by byte and
// the caller is responsible for never mutating them.
package internal

var (
	// UpperLUT maps ASCII lower-case letters to upper-case.
	// All other bytes map to themselves.
	UpperLUT [256]byte

	// LowerLUT maps ASCII upper-case letters to lower-case.
	// All other bytes map to themselves.
	LowerLUT [256]byte

	// SpaceLUT reports whether the byte is ASCII white space.
	SpaceLUT [256]bool
)

func init() {
	for i := range UpperLUT {
		UpperLUT[i] = uint8(i)
		LowerLUT[i] = uint8(i)
	}
	for c := 'a'; c <= 'z'; c++ {
		UpperLUT[c] = byte(c - 'a' + 'A')
		LowerLUT[c-'a'+'A'] = byte(c)
	}
	for _, c := range []byte{' ', '\t', '\n', '\v', '\f', '\r'} {
		SpaceLUT[c] = true
	}
}

// IsLetter reports whether c is an ASCII letter.
func IsLetter(c byte) bool {
	return UpperLUT[c] != LowerLUT[c]
}

// IsGraphic reports whether c is a printable, non-space ASCII character.
func IsGraphic(c byte) bool {
	return c > ' ' && c < 0x7f
}
