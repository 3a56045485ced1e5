// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBits decodes a Bits formatted string.
//
// The format describes a bit-stream as a series of tokens separated by white
// space. Bits are packed starting with the most-significant bit of each byte,
// which is the order in which the RFC 4648 encodings consume them.
// Any bytes on a line after a '#' character are ignored.
//
// A token of the pattern "[01]{1,64}" is a bit-string written left to right.
//
// A token of the pattern "D[0-9]+:[0-9]+" or "H[0-9]+:[0-9a-fA-F]{1,16}"
// is a decimal or hexadecimal value written as an unsigned binary number of
// the given bit-length, most-significant bit first.
//
// A token of the pattern "X:[0-9a-fA-F]+" is a sequence of literal bytes.
// It may only be used when the bit-stream is byte-aligned.
//
// Any token may be followed by a quantifier "[*][0-9]+", which repeats it.
//
// If the bit-stream does not end on a byte boundary, it is padded with 0 bits.
//
// Example:
//	D5:12   # Base32 symbol 'M'
//	110     # Top bits of the base32 symbol 'Y'
//
// This produces the single byte "f".
func DecodeBits(str string) ([]byte, error) {
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	var bb bitBuffer
	for _, t := range toks {
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		switch {
		case reBin.MatchString(t):
			v, _ := strconv.ParseUint(t, 2, 64)
			for i := 0; i < rep; i++ {
				bb.WriteBits64(v, uint(len(t)))
			}
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			base := 10
			if t[0] == 'H' {
				base = 16
			}
			n, err1 := strconv.Atoi(t[1:i])
			v, err2 := strconv.ParseUint(t[i+1:], base, 64)
			if err1 != nil || err2 != nil || n > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if n < 64 && v>>uint(n) != 0 {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			for i := 0; i < rep; i++ {
				bb.WriteBits64(v, uint(n))
			}
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			if _, err := bb.Write(bytes.Repeat(b, rep)); err != nil {
				return nil, err
			}
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}
	}
	return bb.Bytes(), nil
}

// bitBuffer packs bits starting with the most-significant bit of each byte.
type bitBuffer struct {
	b []byte
	m byte // Mask of the next bit to set; zero when byte-aligned
}

func (b *bitBuffer) Write(buf []byte) (int, error) {
	if b.m != 0x00 {
		return 0, errors.New("testutil: unaligned write")
	}
	b.b = append(b.b, buf...)
	return len(buf), nil
}

// WriteBits64 writes the low n bits of v, most-significant first.
func (b *bitBuffer) WriteBits64(v uint64, n uint) {
	for i := n; i > 0; i-- {
		if b.m == 0x00 {
			b.m = 0x80
			b.b = append(b.b, 0x00)
		}
		if v&(1<<(i-1)) != 0 {
			b.b[len(b.b)-1] |= b.m
		}
		b.m >>= 1
	}
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}
