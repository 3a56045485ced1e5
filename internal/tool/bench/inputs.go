// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"bytes"
	"errors"
	"io"
	"sort"
	"sync"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/baseenc/internal/testutil"
)

// baseSize is the size of every generated input before resizing.
const baseSize = 1 << 20

var errUnknownInput = errors.New("bench: unknown input")

// Binary-to-text encodings mostly carry compressed or encrypted payloads,
// so compressed inputs are included alongside the synthetic ones.
var generators = map[string]func() ([]byte, error){
	"zeros":  func() ([]byte, error) { return make([]byte, baseSize), nil },
	"random": func() ([]byte, error) { return testutil.NewRand(0).Bytes(baseSize), nil },
	"text":   func() ([]byte, error) { return genText(baseSize), nil },
	"flate": func() ([]byte, error) {
		return compress(func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.DefaultCompression)
		})
	},
	"xz": func() ([]byte, error) {
		return compress(func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		})
	},
}

var (
	inputsMu sync.Mutex
	inputs   = make(map[string][]byte)
)

// Inputs returns the names of all inputs that LoadInput can generate.
func Inputs() []string {
	var ss []string
	for k := range generators {
		ss = append(ss, k)
	}
	sort.Strings(ss)
	return ss
}

// LoadInput generates the named input and resizes it to n bytes.
// If n < 0, then the input is returned at its generated size.
func LoadInput(name string, n int) ([]byte, error) {
	inputsMu.Lock()
	defer inputsMu.Unlock()
	b, ok := inputs[name]
	if !ok {
		gen, ok := generators[name]
		if !ok {
			return nil, errUnknownInput
		}
		var err error
		if b, err = gen(); err != nil {
			return nil, err
		}
		inputs[name] = b
	}
	return testutil.ResizeData(b, n), nil
}

var words = []string{
	"the", "of", "and", "to", "in", "a", "is", "that", "for", "it", "as",
	"was", "with", "be", "by", "on", "not", "he", "this", "are", "or", "his",
	"from", "at", "which", "but", "have", "an", "had", "they", "you", "were",
	"river", "raft", "town", "widow", "shore", "steamboat", "island", "night",
}

// genText generates n bytes of deterministic English-like text.
func genText(n int) []byte {
	rand := testutil.NewRand(1)
	var bb bytes.Buffer
	for col := 0; bb.Len() < n; {
		w := words[rand.Intn(len(words))]
		if col+len(w) > 72 {
			bb.WriteByte('\n')
			col = 0
		} else if col > 0 {
			bb.WriteByte(' ')
			col++
		}
		bb.WriteString(w)
		col += len(w)
	}
	return bb.Bytes()[:n]
}

// compress compresses the "text" input with the given compressor.
func compress(newWriter func(io.Writer) (io.WriteCloser, error)) ([]byte, error) {
	var bb bytes.Buffer
	zw, err := newWriter(&bb)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(genText(4 * baseSize)); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return bb.Bytes(), nil
}
