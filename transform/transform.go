// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package transform adapts the encodings of package baseenc to the
// golang.org/x/text/transform.Transformer interface, so that they may be
// chained with other text conversions or used with transform.NewReader,
// transform.NewWriter, and transform.String.
package transform

import (
	"golang.org/x/text/transform"

	"github.com/dsnet/baseenc"
)

type encoder struct {
	enc *baseenc.Encoding
	grp baseenc.GroupEncoder
}

// NewEncoder returns a Transformer that encodes with e.
// The final partial group and padding are written when atEOF is true.
func NewEncoder(e *baseenc.Encoding) transform.Transformer {
	t := &encoder{enc: e}
	t.grp.Init(e)
	return t
}

func (t *encoder) Reset() { t.grp.Reset() }

func (t *encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	nSrc = t.grp.MaxInput(len(dst))
	if nSrc > len(src) {
		nSrc = len(src)
	}
	nDst = t.grp.Encode(dst, src[:nSrc])
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	if atEOF {
		if len(dst)-nDst < t.enc.BlockSymbols() {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += t.grp.Flush(dst[nDst:])
	}
	return nDst, nSrc, nil
}

type decoder struct {
	grp baseenc.GroupDecoder
}

// NewDecoder returns a Transformer that decodes with e, including its skip
// predicate. Malformed input is reported as an error from Transform with
// offsets relative to the start of the input since the last Reset.
func NewDecoder(e *baseenc.Encoding) transform.Transformer {
	t := new(decoder)
	t.grp.Init(e)
	return t
}

func (t *decoder) Reset() { t.grp.Reset() }

func (t *decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	// Every symbol produces at most one byte.
	nSrc = len(src)
	if nSrc > len(dst) {
		nSrc = len(dst)
	}
	start := t.grp.InputOffset()
	nDst, err = t.grp.Decode(dst, src[:nSrc])
	if err != nil {
		return nDst, int(t.grp.InputOffset() - start), err
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortDst
	}
	if atEOF {
		err = t.grp.Finish()
	}
	return nDst, nSrc, err
}
