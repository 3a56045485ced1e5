// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_ds_lib

package bench

import (
	"io"

	"github.com/dsnet/baseenc"
)

func init() {
	for format, enc := range map[int]*baseenc.Encoding{
		FormatBase2:     baseenc.Base2,
		FormatBase16:    baseenc.Base16,
		FormatBase32:    baseenc.Base32,
		FormatBase32Hex: baseenc.Base32Hex,
		FormatBase64:    baseenc.Base64,
		FormatBase64URL: baseenc.Base64URL,
	} {
		enc := enc
		RegisterEncoder(format, "ds",
			func(w io.Writer) io.WriteCloser {
				return baseenc.NewEncoder(enc, w)
			})
		RegisterDecoder(format, "ds",
			func(r io.Reader) io.Reader {
				return baseenc.NewDecoder(enc, r)
			})
	}
}
