// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package alphabet

// The alphabets defined by RFC 4648, plus the binary alphabet.
// Base2 and Base16 never need padding since 8 is a multiple of their widths.
var (
	Base2     = MustNew(1, "01", NoPadding)
	Base16    = MustNew(4, "0123456789ABCDEF", NoPadding)
	Base32    = MustNew(5, "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567", '=')
	Base32Hex = MustNew(5, "0123456789ABCDEFGHIJKLMNOPQRSTUV", '=')
	Base64    = MustNew(6, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/", '=')
	Base64URL = MustNew(6, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_", '=')
)
