// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package baseenc

import (
	"bytes"

	"github.com/dsnet/baseenc/alphabet"
)

// Case selects the letter case of encoded symbols.
type Case = alphabet.Case

const (
	AnyCase = alphabet.AnyCase // Canonical case of the alphabet
	Upper   = alphabet.Upper
	Lower   = alphabet.Lower
)

// Encoding is a binary-to-text encoding defined by an alphabet and a set of
// options. Encodings are immutable and safe for concurrent use;
// the With methods return modified copies.
type Encoding struct {
	name    string
	alpha   *alphabet.Alphabet
	padding bool     // Pad output to whole blocks
	enc     Case     // Case of encoded symbols
	dec     Case     // Case mode of the decoding lookup table
	skip    SkipFunc // Predicate for bytes to ignore when decoding
	lenient bool     // Ignore non-zero discarded bits of the final symbol
}

// The standard encodings. Those with a padding symbol pad by default.
var (
	Base2     = NewEncoding("base2", alphabet.Base2)
	Base16    = NewEncoding("base16", alphabet.Base16)
	Base32    = NewEncoding("base32", alphabet.Base32)
	Base32Hex = NewEncoding("base32hex", alphabet.Base32Hex)
	Base64    = NewEncoding("base64", alphabet.Base64)
	Base64URL = NewEncoding("base64url", alphabet.Base64URL)
)

var encodings = []*Encoding{Base2, Base16, Base32, Base32Hex, Base64, Base64URL}

// ByName returns the standard encoding with the given name.
func ByName(name string) (*Encoding, bool) {
	for _, e := range encodings {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// Names returns the names of the standard encodings in order of width.
func Names() []string {
	var ss []string
	for _, e := range encodings {
		ss = append(ss, e.name)
	}
	return ss
}

// NewEncoding returns an encoding for the alphabet a.
// The encoding pads its output if the alphabet has a padding symbol,
// renders symbols in the canonical case of the alphabet, decodes symbols of
// either case, and skips nothing.
func NewEncoding(name string, a *alphabet.Alphabet) *Encoding {
	_, hasPad := a.Pad()
	return &Encoding{name: name, alpha: a, padding: hasPad, skip: SkipNone}
}

// WithPadding returns a copy that pads (or does not pad) encoded output.
// Padding has no effect for alphabets without a padding symbol.
// Decoding always accepts both padded and unpadded input.
func (e *Encoding) WithPadding(on bool) *Encoding {
	e2 := *e
	_, hasPad := e.alpha.Pad()
	e2.padding = on && hasPad
	return &e2
}

// WithCase returns a copy that renders symbols in case c.
// It has no effect for alphabets that do not fold case.
func (e *Encoding) WithCase(c Case) *Encoding {
	e2 := *e
	e2.enc = c
	if e.dec != AnyCase {
		e2.dec = e2.strictCase()
	}
	return &e2
}

// WithCaseSensitive returns a copy whose decoder only accepts symbols in the
// case that the encoding renders.
func (e *Encoding) WithCaseSensitive() *Encoding {
	e2 := *e
	e2.dec = e2.strictCase()
	return &e2
}

// strictCase returns the lookup mode that only accepts rendered symbols.
func (e *Encoding) strictCase() Case {
	switch {
	case e.enc == Upper || e.enc == Lower:
		return e.enc
	case bytes.Equal(e.alpha.Symbols(AnyCase), e.alpha.Symbols(Upper)):
		return Upper
	case bytes.Equal(e.alpha.Symbols(AnyCase), e.alpha.Symbols(Lower)):
		return Lower
	default:
		return AnyCase
	}
}

// WithSkip returns a copy whose decoder discards bytes for which skip is true.
// A nil skip is the same as SkipNone.
func (e *Encoding) WithSkip(skip SkipFunc) *Encoding {
	e2 := *e
	if skip == nil {
		skip = SkipNone
	}
	e2.skip = skip
	return &e2
}

// WithLenientTail returns a copy whose decoder ignores the bits that the
// final symbol carries beyond the last whole byte.
// By default, those bits must be zero.
func (e *Encoding) WithLenientTail() *Encoding {
	e2 := *e
	e2.lenient = true
	return &e2
}

// Name reports the name of the encoding.
func (e *Encoding) Name() string { return e.name }

// Alphabet returns the alphabet of the encoding.
func (e *Encoding) Alphabet() *alphabet.Alphabet { return e.alpha }

// Padding reports whether encoded output is padded.
func (e *Encoding) Padding() bool { return e.padding }

// BlockBytes reports the number of bytes encoded by a whole block.
func (e *Encoding) BlockBytes() int { return e.alpha.BlockBytes() }

// BlockSymbols reports the number of symbols in a whole block.
func (e *Encoding) BlockSymbols() int { return e.alpha.BlockSymbols() }

// MaxEncodeSize reports the length of the encoding of n bytes.
// The result is exact.
func (e *Encoding) MaxEncodeSize(n int) int {
	bb, bs, k := e.BlockBytes(), e.BlockSymbols(), int(e.alpha.Bits())
	m := n / bb * bs
	if rem := n % bb; rem > 0 {
		if e.padding {
			m += bs
		} else {
			m += (rem*8 + k - 1) / k
		}
	}
	return m
}

// MaxDecodeSize reports the maximum number of bytes produced by decoding
// n bytes of input.
func (e *Encoding) MaxDecodeSize(n int) int {
	bb, bs, k := e.BlockBytes(), e.BlockSymbols(), int(e.alpha.Bits())
	return n/bs*bb + n%bs*k/8
}

// EncodedLen is equivalent to MaxEncodeSize.
func (e *Encoding) EncodedLen(n int) int { return e.MaxEncodeSize(n) }

// DecodedLen is equivalent to MaxDecodeSize.
func (e *Encoding) DecodedLen(n int) int { return e.MaxDecodeSize(n) }

// Encode encodes src into dst, returning the number of bytes written,
// which is always MaxEncodeSize(len(src)).
// It panics if dst is too short.
func (e *Encoding) Encode(dst, src []byte) int {
	var g GroupEncoder
	g.Init(e)
	n := g.Encode(dst, src)
	return n + g.Flush(dst[n:])
}

// EncodeToString returns the encoding of src.
func (e *Encoding) EncodeToString(src []byte) string {
	buf := make([]byte, e.MaxEncodeSize(len(src)))
	e.Encode(buf, src)
	return string(buf)
}

// AppendEncode appends the encoding of src to dst.
func (e *Encoding) AppendEncode(dst, src []byte) []byte {
	n := e.MaxEncodeSize(len(src))
	dst = grow(dst, n)
	e.Encode(dst[len(dst):len(dst)+n], src)
	return dst[:len(dst)+n]
}

// Decode decodes src into dst using the skip predicate of the encoding.
// It returns the number of bytes written, which includes the bytes decoded
// before any error was detected.
// It panics if dst is shorter than MaxDecodeSize(len(src)).
func (e *Encoding) Decode(dst, src []byte) (int, error) {
	return e.DecodeSkip(dst, src, e.skip)
}

// DecodeSkip is like Decode, but discards bytes for which skip is true.
func (e *Encoding) DecodeSkip(dst, src []byte, skip SkipFunc) (int, error) {
	var g GroupDecoder
	g.Init(e)
	g.skip = skip
	n, err := g.Decode(dst, src)
	if err != nil {
		return n, err
	}
	return n, g.Finish()
}

// DecodeString returns the bytes represented by s.
// On error, the bytes decoded before the error are returned.
func (e *Encoding) DecodeString(s string) ([]byte, error) {
	buf := make([]byte, e.MaxDecodeSize(len(s)))
	n, err := e.Decode(buf, []byte(s))
	return buf[:n], err
}

// AppendDecode appends the decoding of src to dst.
func (e *Encoding) AppendDecode(dst, src []byte) ([]byte, error) {
	m := e.MaxDecodeSize(len(src))
	dst = grow(dst, m)
	n, err := e.Decode(dst[len(dst):len(dst)+m], src)
	return dst[:len(dst)+n], err
}

// grow ensures that b has room for n more bytes.
func grow(b []byte, n int) []byte {
	if cap(b)-len(b) >= n {
		return b
	}
	b2 := make([]byte, len(b), 2*cap(b)+n)
	copy(b2, b)
	return b2
}
