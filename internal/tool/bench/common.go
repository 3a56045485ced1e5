// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of various binary-to-text codec
// implementations with respect to encode speed, decode speed, and expansion.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"regexp"
	"runtime"
	"strings"
	"testing"

	strconv "github.com/dsnet/golib/unitconv"
)

const (
	FormatBase2 = iota
	FormatBase16
	FormatBase32
	FormatBase32Hex
	FormatBase64
	FormatBase64URL
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestExpansionRatio
)

type Encoder func(io.Writer) io.WriteCloser
type Decoder func(io.Reader) io.Reader

var (
	Encoders map[int]map[string]Encoder
	Decoders map[int]map[string]Decoder
)

func RegisterEncoder(format int, name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[int]map[string]Encoder)
	}
	if Encoders[format] == nil {
		Encoders[format] = make(map[string]Encoder)
	}
	Encoders[format][name] = enc
}

func RegisterDecoder(format int, name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[int]map[string]Decoder)
	}
	if Decoders[format] == nil {
		Decoders[format] = make(map[string]Decoder)
	}
	Decoders[format][name] = dec
}

// BenchmarkEncoder benchmarks a single encoder on the given input data
// and reports the result.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			wr := enc(ioutil.Discard)
			_, err := io.Copy(wr, bytes.NewReader(input))
			if err := wr.Close(); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (encSize/rawSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkEncoderSuite runs multiple benchmarks across all encoder
// implementations, inputs, and sizes.
//
// The values returned have the following structure:
//	results: [len(inputs)*len(sizes)][len(encs)]Result
//	names:   [len(inputs)*len(sizes)]string
func BenchmarkEncoderSuite(format int, encs, inputs []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, inputs, sizes, tick,
		func(input []byte, enc string) Result {
			result := BenchmarkEncoder(input, Encoders[format][enc])
			return rateOf(result)
		})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-encoded
// input data and reports the result.
func BenchmarkDecoder(input []byte, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			rd := dec(bytes.NewReader(input))
			cnt, err := io.Copy(ioutil.Discard, rd)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(cnt))
		}
	})
}

// BenchmarkDecoderSuite runs multiple benchmarks across all decoder
// implementations, inputs, and sizes. The ref encoder produces the encoded
// data that every decoder consumes.
//
// The values returned have the following structure:
//	results: [len(inputs)*len(sizes)][len(decs)]Result
//	names:   [len(inputs)*len(sizes)]string
func BenchmarkDecoderSuite(format int, decs, inputs []string, sizes []int, ref Encoder, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(decs, inputs, sizes, tick,
		func(input []byte, dec string) Result {
			output, err := encode(ref, input)
			if err != nil {
				return Result{}
			}
			result := BenchmarkDecoder(output, Decoders[format][dec])
			return rateOf(result)
		})
}

// BenchmarkRatioSuite measures the expansion of every encoder across all
// inputs and sizes.
//
// The values returned have the following structure:
//	results: [len(inputs)*len(sizes)][len(encs)]Result
//	names:   [len(inputs)*len(sizes)]string
func BenchmarkRatioSuite(format int, encs, inputs []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, inputs, sizes, tick,
		func(input []byte, enc string) Result {
			output, err := encode(Encoders[format][enc], input)
			if err != nil || len(input) == 0 {
				return Result{}
			}
			return Result{R: float64(len(output)) / float64(len(input))}
		})
}

func encode(enc Encoder, input []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	wr := enc(buf)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return nil, err
	}
	if err := wr.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rateOf(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	return Result{R: float64(result.Bytes) / us}
}

type benchFunc func(input []byte, codec string) Result

func benchmarkSuite(codecs, inputs []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(inputs) * len(sizes)
	d1 := len(codecs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every codec, input, and size.
	var i int
	for _, in := range inputs {
		for _, n := range sizes {
			b, err := LoadInput(in, n)
			name := getName(in, len(b))
			for j, c := range codecs {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, c)
				}
				results[i][j].D = results[i][j].R / results[i][0].R
			}
			i++
		}
	}
	return results, names
}

func getName(in string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", in, sn)
}
