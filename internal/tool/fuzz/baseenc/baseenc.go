// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package baseenc

import (
	"bytes"
	"encoding/base64"
	"io/ioutil"

	"github.com/dsnet/baseenc"
)

var encodings = []*baseenc.Encoding{
	baseenc.Base2,
	baseenc.Base16,
	baseenc.Base32,
	baseenc.Base32Hex,
	baseenc.Base64,
	baseenc.Base64URL,
}

func Fuzz(data []byte) int {
	ok := testReference(data)
	for _, enc := range encodings {
		testDecoders(enc, data)
		testRoundTrip(enc, data)
		testRoundTrip(enc.WithPadding(false), data)
	}
	if ok {
		return 1 // Favor valid inputs
	}
	return 0
}

// testReference tests that input accepted by the strict standard library
// decoder is also accepted, with the same output.
func testReference(data []byte) bool {
	want, err := base64.StdEncoding.Strict().DecodeString(string(data))
	if err != nil {
		return false
	}
	got, err := baseenc.Base64.WithSkip(baseenc.SkipBytes("\r\n")).DecodeString(string(data))
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(got, want) {
		panic("mismatching bytes")
	}
	return true
}

// testDecoders tests that the streaming decoder agrees with the single-shot
// decoder, both on the output and on the error.
func testDecoders(enc *baseenc.Encoding, data []byte) {
	want, werr := enc.DecodeString(string(data))
	got, gerr := ioutil.ReadAll(baseenc.NewDecoder(enc, bytes.NewReader(data)))
	if !bytes.Equal(got, want) {
		panic("mismatching bytes")
	}
	if (werr == nil) != (gerr == nil) || (werr != nil && werr.Error() != gerr.Error()) {
		panic("mismatching errors")
	}
}

// testRoundTrip tests that the data survives encoding and decoding,
// both single-shot and streamed.
func testRoundTrip(enc *baseenc.Encoding, data []byte) {
	s := enc.EncodeToString(data)
	if len(s) != enc.MaxEncodeSize(len(data)) {
		panic("mismatching length")
	}

	var bb bytes.Buffer
	ew := baseenc.NewEncoder(enc, &bb)
	if _, err := ew.Write(data); err != nil {
		panic(err)
	}
	if err := ew.Close(); err != nil {
		panic(err)
	}
	if bb.String() != s {
		panic("mismatching encoding")
	}

	b, err := enc.DecodeString(s)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(b, data) {
		panic("mismatching bytes")
	}
}
