// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package baseenc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsnet/baseenc/internal/testutil"
)

func TestLineWriter(t *testing.T) {
	var vectors = []struct {
		desc   string
		cols   int
		eol    string
		input  string
		output string
	}{
		{"empty", 4, "\n", "", ""},
		{"short line", 4, "\n", "abc", "abc"},
		{"exact line", 4, "\n", "abcd", "abcd"},
		{"two lines", 4, "\n", "abcdefgh", "abcd\nefgh"},
		{"partial line", 4, "\n", "abcdefghij", "abcd\nefgh\nij"},
		{"carriage return", 3, "\r\n", "abcdefg", "abc\r\ndef\r\ng"},
		{"single column", 1, "\n", "abc", "a\nb\nc"},
		{"disabled", 0, "\n", "abcdefghij", "abcdefghij"},
		{"negative", -1, "\n", "abcdefghij", "abcdefghij"},
	}

	rand := testutil.NewRand(0)
	for i, v := range vectors {
		fmt := "Check '%s' in trial %d: %s"

		var bb bytes.Buffer
		lw := NewLineWriter(&bb, v.cols, v.eol)
		for _, chunk := range rand.Split([]byte(v.input), 5) {
			cnt, err := lw.Write(chunk)
			require.NoError(t, err)
			assert.Equal(t, len(chunk), cnt, fmt, "count", i, v.desc)
		}
		assert.Equal(t, v.output, bb.String(), fmt, "output", i, v.desc)
	}
}

func TestLineWriterEncoder(t *testing.T) {
	var bb bytes.Buffer
	lw := NewLineWriter(&bb, 76, "\n")
	ew := NewEncoder(Base64, lw)
	input := testutil.NewRand(6).Bytes(1000)
	_, err := ew.Write(input)
	require.NoError(t, err)
	require.NoError(t, ew.Close())

	lines := strings.Split(bb.String(), "\n")
	for _, line := range lines[:len(lines)-1] {
		assert.Len(t, line, 76)
	}
	assert.True(t, len(lines[len(lines)-1]) <= 76)

	output, err := Base64.WithSkip(SkipSpace).DecodeString(bb.String())
	require.NoError(t, err)
	assert.Equal(t, input, output)

	lw.Reset(&bb)
	bb.Reset()
	_, err = lw.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, "abc", bb.String())
}
