// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package baseenc

import "io"

// LineWriter is an io.Writer that breaks its output into lines.
// An end-of-line sequence is written before any byte that would start a new
// line, so output ending exactly at a line boundary has no trailing EOL.
type LineWriter struct {
	wr   io.Writer
	cols int
	eol  []byte
	col  int // Bytes written on the current line
}

// NewLineWriter returns a LineWriter that writes eol to w after every cols
// bytes. If cols <= 0, then all writes pass through unchanged.
func NewLineWriter(w io.Writer, cols int, eol string) *LineWriter {
	return &LineWriter{wr: w, cols: cols, eol: []byte(eol)}
}

// Write writes buf with EOL sequences inserted and returns the number of
// bytes of buf that were written.
func (lw *LineWriter) Write(buf []byte) (int, error) {
	if lw.cols <= 0 {
		return lw.wr.Write(buf)
	}
	var n int
	for len(buf) > 0 {
		if lw.col == lw.cols {
			if _, err := lw.wr.Write(lw.eol); err != nil {
				return n, err
			}
			lw.col = 0
		}
		m := lw.cols - lw.col
		if m > len(buf) {
			m = len(buf)
		}
		cnt, err := lw.wr.Write(buf[:m])
		n += cnt
		lw.col += cnt
		buf = buf[cnt:]
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Reset discards the current column and makes the LineWriter write to w.
func (lw *LineWriter) Reset(w io.Writer) {
	lw.wr, lw.col = w, 0
}
