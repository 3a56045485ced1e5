// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package baseenc

import "io"

const chunkSize = 1024

// Encoder encodes the data written to it and writes the symbols to an
// underlying io.Writer. The final partial group is only written by Close.
type Encoder struct {
	InputOffset  int64 // Total number of bytes accepted by Write
	OutputOffset int64 // Total number of symbols written to the io.Writer

	wr  io.Writer
	enc GroupEncoder
	err error // Persistent error
	buf [chunkSize]byte
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(e *Encoding, w io.Writer) *Encoder {
	ew := new(Encoder)
	ew.enc.Init(e)
	ew.Reset(w)
	return ew
}

func (ew *Encoder) Write(buf []byte) (int, error) {
	var n int
	for ew.err == nil && len(buf) > 0 {
		m := ew.enc.MaxInput(len(ew.buf))
		if m > len(buf) {
			m = len(buf)
		}
		cnt := ew.enc.Encode(ew.buf[:], buf[:m])
		ew.write(ew.buf[:cnt])
		n += m
		buf = buf[m:]
		ew.InputOffset += int64(m)
	}
	if ew.err != nil {
		return n, ew.err
	}
	return n, nil
}

// Close writes the final partial group and any padding.
// It does not close the underlying io.Writer.
func (ew *Encoder) Close() error {
	if ew.err == io.ErrClosedPipe {
		return nil
	}
	if ew.err == nil {
		cnt := ew.enc.Flush(ew.buf[:])
		ew.write(ew.buf[:cnt])
	}
	if ew.err != nil {
		return ew.err
	}
	ew.err = io.ErrClosedPipe // Make sure future writes fail
	return nil
}

// Reset discards the Encoder state and makes it write to w,
// keeping the same encoding.
func (ew *Encoder) Reset(w io.Writer) error {
	ew.enc.Reset()
	ew.InputOffset, ew.OutputOffset = 0, 0
	ew.wr, ew.err = w, nil
	return nil
}

func (ew *Encoder) write(buf []byte) {
	if len(buf) == 0 {
		return
	}
	cnt, err := ew.wr.Write(buf)
	ew.OutputOffset += int64(cnt)
	if err == nil && cnt < len(buf) {
		err = io.ErrShortWrite
	}
	ew.err = err
}

// Decoder decodes the symbols read from an underlying io.Reader.
// Malformed input is reported by Read after all bytes decoded before the
// offending position have been returned.
type Decoder struct {
	InputOffset  int64 // Total number of bytes read from the io.Reader
	OutputOffset int64 // Total number of bytes emitted from Read

	rd     io.Reader
	dec    GroupDecoder
	toRead []byte // Decoded data ready to be emitted from Read
	err    error  // Persistent error
	src    [chunkSize]byte
	dst    [chunkSize]byte
}

// NewDecoder returns a new Decoder that reads from r.
func NewDecoder(e *Encoding, r io.Reader) *Decoder {
	dr := new(Decoder)
	dr.dec.Init(e)
	dr.Reset(r)
	return dr
}

func (dr *Decoder) Read(buf []byte) (int, error) {
	for {
		if len(dr.toRead) > 0 {
			cnt := copy(buf, dr.toRead)
			dr.toRead = dr.toRead[cnt:]
			dr.OutputOffset += int64(cnt)
			return cnt, nil
		}
		if dr.err != nil {
			return 0, dr.err
		}
		if len(buf) == 0 {
			return 0, nil
		}

		n, err := dr.rd.Read(dr.src[:])
		dr.InputOffset += int64(n)
		cnt, derr := dr.dec.Decode(dr.dst[:], dr.src[:n])
		dr.toRead = dr.dst[:cnt]
		switch {
		case derr != nil:
			dr.err = derr
		case err == io.EOF:
			dr.err = dr.dec.Finish()
			if dr.err == nil {
				dr.err = io.EOF
			}
		case err != nil:
			dr.err = err
		}
	}
}

// Reset discards the Decoder state and makes it read from r,
// keeping the same encoding.
func (dr *Decoder) Reset(r io.Reader) error {
	dr.dec.Reset()
	dr.InputOffset, dr.OutputOffset = 0, 0
	dr.rd, dr.toRead, dr.err = r, nil, nil
	return nil
}
