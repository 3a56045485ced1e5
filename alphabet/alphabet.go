// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package alphabet implements the symbol tables used by the RFC 4648
// binary-to-text encodings.
//
// An Alphabet maps every k-bit value (where k is 1, 4, 5, or 6) to a single
// ASCII symbol and back. Alphabets whose letters have distinct upper and lower
// case variants (such as base16 and base32) support case-folded decoding and
// may be rendered in either case. The reverse mapping is provided by a Lookup
// table, which is built lazily and at most once for each case mode.
package alphabet

import (
	"sync"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/baseenc/internal"
)

// NoPadding is passed to New to create an alphabet without a padding symbol.
const NoPadding = -1

// Case selects the letter case used to render or recognize symbols.
type Case int

const (
	AnyCase Case = iota // Recognize both cases; render the canonical case
	Upper               // Upper-case symbols only
	Lower               // Lower-case symbols only
)

func (c Case) String() string {
	switch c {
	case AnyCase:
		return "any"
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "invalid"
	}
}

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "alphabet: " + string(e) }

var (
	ErrWidth     error = Error("unsupported bit-group width")
	ErrSize      error = Error("symbol count does not match bit-group width")
	ErrSymbol    error = Error("symbol is not a printable ASCII character")
	ErrDuplicate error = Error("duplicate symbol")
	ErrPadding   error = Error("padding symbol collides with a data symbol")
)

// Alphabet is an immutable table of 2^k symbols and an optional padding symbol.
// It is safe for concurrent use.
type Alphabet struct {
	bits   uint
	size   int
	upper  [64]byte // Symbols as rendered in upper-case
	lower  [64]byte // Symbols as rendered in lower-case
	canon  [64]byte // Symbols as given to New
	pad    byte
	hasPad bool
	fold   bool

	// Each Case has its own lazily built Lookup table.
	once [3]sync.Once
	luts [3]Lookup
}

// New creates an alphabet of the given bit-group width from the symbols.
// The length of symbols must be exactly 1<<bits, every symbol must be a
// printable ASCII character, and no two symbols may be equal.
// If pad is not NoPadding, then it is the padding symbol used to align
// the encoded output to whole blocks.
//
// Case-folding is enabled when the symbols contain at least one letter and
// no two symbols differ only in case.
func New(bits uint, symbols string, pad int) (*Alphabet, error) {
	switch bits {
	case 1, 4, 5, 6:
	default:
		return nil, ErrWidth
	}
	if len(symbols) != 1<<bits {
		return nil, ErrSize
	}

	a := &Alphabet{bits: bits, size: len(symbols), fold: true}
	var seen, seenFold [256]bool
	var hasLetter bool
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if !internal.IsGraphic(c) {
			return nil, ErrSymbol
		}
		if seen[c] {
			return nil, ErrDuplicate
		}
		seen[c] = true
		if seenFold[internal.LowerLUT[c]] {
			a.fold = false // Both cases of some letter are distinct symbols
		}
		seenFold[internal.LowerLUT[c]] = true
		hasLetter = hasLetter || internal.IsLetter(c)
		a.canon[i] = c
	}
	a.fold = a.fold && hasLetter

	if pad != NoPadding {
		if pad < 0 || pad > 0xff || !internal.IsGraphic(byte(pad)) {
			return nil, ErrSymbol
		}
		p := byte(pad)
		if seen[p] || (a.fold && seenFold[internal.LowerLUT[p]]) {
			return nil, ErrPadding
		}
		a.pad, a.hasPad = p, true
	}

	for i, c := range a.canon[:a.size] {
		if a.fold {
			a.upper[i], a.lower[i] = internal.UpperLUT[c], internal.LowerLUT[c]
		} else {
			a.upper[i], a.lower[i] = c, c
		}
	}
	return a, nil
}

// MustNew is like New, but panics if the alphabet is invalid.
func MustNew(bits uint, symbols string, pad int) *Alphabet {
	a, err := New(bits, symbols, pad)
	errs.Panic(err)
	return a
}

// Bits reports the bit-group width k.
func (a *Alphabet) Bits() uint { return a.bits }

// Len reports the number of data symbols, which is always 1<<Bits().
func (a *Alphabet) Len() int { return a.size }

// FoldCase reports whether the symbols have distinct upper and lower case
// variants, in which case decoding may be case-insensitive.
func (a *Alphabet) FoldCase() bool { return a.fold }

// Pad reports the padding symbol, if any.
func (a *Alphabet) Pad() (byte, bool) { return a.pad, a.hasPad }

// BlockBytes reports the number of input bytes in a whole block.
// A whole block of bytes always encodes to BlockSymbols symbols.
func (a *Alphabet) BlockBytes() int { return int(lcm8(a.bits) / 8) }

// BlockSymbols reports the number of symbols in a whole block.
// Padded output is always a multiple of this length.
func (a *Alphabet) BlockSymbols() int { return int(lcm8(a.bits) / a.bits) }

// Symbol returns the symbol for the value v, rendered in case c.
// AnyCase renders the symbol exactly as it was given to New.
// It panics if v is out of range.
func (a *Alphabet) Symbol(v int, c Case) byte {
	return a.Symbols(c)[v]
}

// Symbols returns the table of all symbols rendered in case c.
// The caller must not modify the returned slice.
func (a *Alphabet) Symbols(c Case) []byte {
	switch c {
	case Upper:
		return a.upper[:a.size]
	case Lower:
		return a.lower[:a.size]
	default:
		return a.canon[:a.size]
	}
}

// Value returns the value of the symbol c, recognizing both cases when the
// alphabet folds case. It reports false if c is not a data symbol.
func (a *Alphabet) Value(c byte) (int, bool) {
	v := a.Lookup(AnyCase)[c]
	if v >= Pad {
		return 0, false
	}
	return int(v), true
}

// String returns the canonical symbols followed by the padding symbol.
func (a *Alphabet) String() string {
	s := string(a.canon[:a.size])
	if a.hasPad {
		s += string(a.pad)
	}
	return s
}

// lcm8 returns the least common multiple of 8 and n.
func lcm8(n uint) uint {
	a, b := uint(8), n
	for b != 0 {
		a, b = b, a%b
	}
	return 8 * n / a
}
