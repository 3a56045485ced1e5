// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

import "github.com/dsnet/golib/errs"

// These markers occupy the values of a Lookup that cannot be data values,
// since no alphabet has more than 64 symbols.
const (
	Pad     = 0xfe // The byte is the padding symbol
	Invalid = 0xff // The byte is not part of the alphabet
)

// Lookup classifies every possible input byte as either a data value in
// [0, 1<<Bits()), the Pad marker, or the Invalid marker.
type Lookup [256]uint8

var errCollision error = Error("lookup collision")

// Lookup returns the reverse lookup table for the case mode c.
//
// With Upper or Lower, only symbols rendered in that case are recognized.
// With AnyCase, symbols of either case are recognized if the alphabet folds
// case; otherwise only the canonical symbols are recognized.
// Alphabets that do not fold case have the same table for every mode.
//
// The table is built on first use and is immutable afterwards.
// The caller must not modify the returned table.
func (a *Alphabet) Lookup(c Case) *Lookup {
	if !a.fold || c < AnyCase || c > Lower {
		c = AnyCase
	}
	a.once[c].Do(func() { a.luts[c] = a.buildLookup(c) })
	return &a.luts[c]
}

func (a *Alphabet) buildLookup(c Case) (lut Lookup) {
	for i := range lut {
		lut[i] = Invalid
	}
	set := func(sym byte, v uint8) {
		errs.Assert(lut[sym] == Invalid || lut[sym] == v, errCollision)
		lut[sym] = v
	}
	for v := 0; v < a.size; v++ {
		switch c {
		case Upper:
			set(a.upper[v], uint8(v))
		case Lower:
			set(a.lower[v], uint8(v))
		default:
			set(a.canon[v], uint8(v))
			set(a.upper[v], uint8(v))
			set(a.lower[v], uint8(v))
		}
	}
	if a.hasPad {
		set(a.pad, Pad)
	}
	return lut
}
