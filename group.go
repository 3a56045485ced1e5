// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package baseenc

import "github.com/dsnet/baseenc/alphabet"

// GroupEncoder repacks bytes into k-bit groups and maps each group to a
// symbol. It holds the bits of an incomplete group between calls, so that
// a long input may be encoded piecewise. The zero value is not usable until
// Init is called.
type GroupEncoder struct {
	syms    []byte // Symbols in the output case
	bits    uint   // Bit-group width k
	bsize   int    // Symbols per block
	pad     byte
	padding bool

	acc   uint32 // Pending bits are the low nbits bits
	nbits uint   // Always less than bits between calls
	nsyms int    // Symbols emitted modulo bsize
}

// Init configures the encoder for e and discards any pending bits.
func (g *GroupEncoder) Init(e *Encoding) {
	pad, _ := e.alpha.Pad()
	*g = GroupEncoder{
		syms:    e.alpha.Symbols(e.enc),
		bits:    e.alpha.Bits(),
		bsize:   e.alpha.BlockSymbols(),
		pad:     pad,
		padding: e.padding,
	}
}

// Reset discards any pending bits.
func (g *GroupEncoder) Reset() {
	g.acc, g.nbits, g.nsyms = 0, 0, 0
}

// EncodedLen reports the number of symbols that Encode emits for n bytes.
func (g *GroupEncoder) EncodedLen(n int) int {
	return (int(g.nbits) + 8*n) / int(g.bits)
}

// MaxInput reports the largest number of bytes whose symbols fit in n bytes.
func (g *GroupEncoder) MaxInput(n int) int {
	m := ((n+1)*int(g.bits) - 1 - int(g.nbits)) / 8
	if m < 0 {
		return 0
	}
	return m
}

// Encode writes the symbols of every complete group in src to dst and
// returns the number of symbols written, which is EncodedLen(len(src)).
func (g *GroupEncoder) Encode(dst, src []byte) (n int) {
	k, mask := g.bits, uint32(1)<<g.bits-1
	acc, nbits := g.acc, g.nbits
	for _, b := range src {
		acc = acc<<8 | uint32(b)
		nbits += 8
		for nbits >= k {
			nbits -= k
			dst[n] = g.syms[acc>>nbits&mask]
			n++
		}
	}
	g.acc, g.nbits = acc&(1<<nbits-1), nbits
	g.nsyms = (g.nsyms + n) % g.bsize
	return n
}

// Flush writes the final partial group, left-aligned and zero filled,
// followed by padding if enabled. It returns the number of symbols written,
// which is at most one block, and resets the encoder.
func (g *GroupEncoder) Flush(dst []byte) (n int) {
	if g.nbits > 0 {
		mask := uint32(1)<<g.bits - 1
		dst[n] = g.syms[g.acc<<(g.bits-g.nbits)&mask]
		n++
		g.nsyms = (g.nsyms + 1) % g.bsize
	}
	if g.padding && g.nsyms > 0 {
		for ; g.nsyms < g.bsize; g.nsyms++ {
			dst[n] = g.pad
			n++
		}
	}
	g.Reset()
	return n
}

// GroupDecoder maps symbols to k-bit groups and repacks them into bytes.
// It holds the bits of an incomplete byte between calls, so that a long
// input may be decoded piecewise. Once an error is returned, the decoder
// must be reset before further use.
type GroupDecoder struct {
	lut     *alphabet.Lookup
	skip    SkipFunc
	bits    uint
	bsize   int
	lenient bool

	acc     uint32
	nbits   uint  // Always less than 8 between calls
	nsyms   int   // Data symbols modulo bsize
	npad    int   // Padding symbols seen
	off     int64 // Offset of the next input byte
	lastOff int64 // Offset of the last data symbol
	last    byte  // Last data symbol
}

// Init configures the decoder for e and discards any decoding state.
func (g *GroupDecoder) Init(e *Encoding) {
	*g = GroupDecoder{
		lut:     e.alpha.Lookup(e.dec),
		skip:    e.skip,
		bits:    e.alpha.Bits(),
		bsize:   e.alpha.BlockSymbols(),
		lenient: e.lenient,
	}
}

// Reset discards any decoding state.
func (g *GroupDecoder) Reset() {
	g.acc, g.nbits, g.nsyms, g.npad = 0, 0, 0, 0
	g.off, g.lastOff, g.last = 0, 0, 0
}

// InputOffset reports the number of input bytes consumed since the last reset.
func (g *GroupDecoder) InputOffset() int64 { return g.off }

// Decode decodes src into dst and returns the number of bytes written,
// which never exceeds len(src). The bytes decoded before an error are
// always written. Validation of the total length is left to Finish.
func (g *GroupDecoder) Decode(dst, src []byte) (n int, err error) {
	defer errRecover(&err)
	k := g.bits
	for _, c := range src {
		v := g.lut[c]
		if v >= alphabet.Pad && g.skip != nil && g.skip(c) {
			g.off++
			continue
		}
		switch v {
		case alphabet.Invalid:
			panic(&CharacterError{Offset: g.off, Char: c})
		case alphabet.Pad:
			g.npad++
		default:
			if g.npad > 0 {
				panic(&CharacterError{Offset: g.off, Char: c}) // Data after padding
			}
			g.acc = g.acc<<k | uint32(v)
			g.nbits += k
			if g.nsyms++; g.nsyms == g.bsize {
				g.nsyms = 0
			}
			g.last, g.lastOff = c, g.off
			if g.nbits >= 8 {
				g.nbits -= 8
				dst[n] = byte(g.acc >> g.nbits)
				n++
			}
		}
		g.off++
	}
	return n, nil
}

// Finish reports whether the input decoded so far forms a complete encoding.
func (g *GroupDecoder) Finish() error {
	if g.nbits >= g.bits {
		return ErrInvalidLength // Final symbol does not complete a byte
	}
	if g.npad > 0 && (g.nsyms == 0 || g.nsyms+g.npad != g.bsize) {
		return ErrInvalidLength
	}
	if !g.lenient && g.acc&(1<<g.nbits-1) != 0 {
		return &CharacterError{Offset: g.lastOff, Char: g.last}
	}
	return nil
}
