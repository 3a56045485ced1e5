// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_std_lib

package bench

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"io"

	"github.com/dsnet/baseenc/internal"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func init() {
	RegisterEncoder(FormatBase16, "std",
		func(w io.Writer) io.WriteCloser {
			return nopCloser{hex.NewEncoder(upperWriter{w})}
		})
	RegisterDecoder(FormatBase16, "std",
		func(r io.Reader) io.Reader {
			return hex.NewDecoder(r)
		})
	for format, enc := range map[int]*base32.Encoding{
		FormatBase32:    base32.StdEncoding,
		FormatBase32Hex: base32.HexEncoding,
	} {
		enc := enc
		RegisterEncoder(format, "std",
			func(w io.Writer) io.WriteCloser {
				return base32.NewEncoder(enc, w)
			})
		RegisterDecoder(format, "std",
			func(r io.Reader) io.Reader {
				return base32.NewDecoder(enc, r)
			})
	}
	for format, enc := range map[int]*base64.Encoding{
		FormatBase64:    base64.StdEncoding,
		FormatBase64URL: base64.URLEncoding,
	} {
		enc := enc
		RegisterEncoder(format, "std",
			func(w io.Writer) io.WriteCloser {
				return base64.NewEncoder(enc, w)
			})
		RegisterDecoder(format, "std",
			func(r io.Reader) io.Reader {
				return base64.NewDecoder(enc, r)
			})
	}
}

// upperWriter converts hexadecimal digits to upper-case as RFC 4648 uses.
type upperWriter struct{ io.Writer }

func (w upperWriter) Write(buf []byte) (int, error) {
	b := make([]byte, len(buf))
	for i, c := range buf {
		b[i] = internal.UpperLUT[c]
	}
	return w.Writer.Write(b)
}
