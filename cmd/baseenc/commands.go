// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/dsnet/baseenc"
)

type codecOption struct {
	Codec string `short:"c" long:"codec" env:"BASEENC_CODEC" default:"base64" description:"Encoding to use (see the list command)"`
}

func (o *codecOption) encoding() (*baseenc.Encoding, error) {
	enc, ok := baseenc.ByName(o.Codec)
	if !ok {
		return nil, errors.Errorf("unknown encoding %q; supported: %s", o.Codec, strings.Join(baseenc.Names(), ", "))
	}
	return enc, nil
}

type encodeCommand struct {
	codecOption
	CRLF      bool `short:"m" long:"crlf" description:"Terminate lines with CRLF instead of LF"`
	NoPadding bool `short:"n" long:"no-padding" description:"Do not pad the final block"`
	Upper     bool `short:"u" long:"upper" description:"Use upper-case symbols for encodings with letter case"`
	Wrap      int  `short:"w" long:"wrap" env:"BASEENC_WRAP" default:"76" description:"Wrap lines after this many symbols (0 disables wrapping)"`

	app *app
}

func (c *encodeCommand) Execute(args []string) error {
	setupLogging(&c.app.general, c.app.stderr)

	enc, err := c.encoding()
	if err != nil {
		return err
	}
	enc = enc.WithPadding(!c.NoPadding).WithCase(baseenc.Lower)
	if c.Upper {
		enc = enc.WithCase(baseenc.Upper)
	}
	eol := "\n"
	if c.CRLF {
		eol = "\r\n"
	}
	log.WithFields(log.Fields{"codec": enc.Name(), "padding": enc.Padding(), "wrap": c.Wrap}).Debug("Encoding")

	bw := bufio.NewWriter(c.app.stdout)
	ew := baseenc.NewEncoder(enc, baseenc.NewLineWriter(bw, c.Wrap, eol))
	in := newInputReader(args, c.app.stdin)
	var result error
	if _, err = io.Copy(ew, in); err == nil {
		err = ew.Close()
	}
	if err == nil && c.Wrap != 0 && ew.OutputOffset > 0 {
		_, err = io.WriteString(bw, eol)
	}
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		result = multierror.Append(result, errors.Wrap(err, "writing output"))
	}
	log.Debugf("Encoded %d bytes into %d symbols", ew.InputOffset, ew.OutputOffset)
	return appendErrors(in.errs, result)
}

type decodeCommand struct {
	codecOption
	IgnoreGarbage bool `short:"i" long:"ignore-garbage" description:"Skip every character that is not a symbol of the alphabet"`
	Strict        bool `short:"s" long:"strict" description:"Do not skip white space"`

	app *app
}

func (c *decodeCommand) Execute(args []string) error {
	setupLogging(&c.app.general, c.app.stderr)

	enc, err := c.encoding()
	if err != nil {
		return err
	}
	switch {
	case c.IgnoreGarbage:
		enc = enc.WithSkip(baseenc.SkipAll)
	case c.Strict:
		enc = enc.WithSkip(baseenc.SkipNone)
	default:
		enc = enc.WithSkip(baseenc.SkipSpace)
	}
	log.WithFields(log.Fields{"codec": enc.Name(), "ignore-garbage": c.IgnoreGarbage, "strict": c.Strict}).Debug("Decoding")

	bw := bufio.NewWriter(c.app.stdout)
	in := newInputReader(args, c.app.stdin)
	dr := baseenc.NewDecoder(enc, in)
	var result error
	if _, err := io.Copy(bw, dr); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "decoding input"))
	}
	if err := bw.Flush(); err != nil {
		result = multierror.Append(result, errors.Wrap(err, "writing output"))
	}
	log.Debugf("Decoded %d bytes into %d bytes", dr.InputOffset, dr.OutputOffset)
	return appendErrors(in.errs, result)
}

type listCommand struct {
	Long bool `short:"l" long:"long" description:"Show the alphabet and block sizes of each encoding"`

	app *app
}

func (c *listCommand) Execute(args []string) error {
	setupLogging(&c.app.general, c.app.stderr)

	if !c.Long {
		_, err := fmt.Fprintln(c.app.stdout, strings.Join(baseenc.Names(), " "))
		return err
	}
	for _, name := range baseenc.Names() {
		enc, _ := baseenc.ByName(name)
		a := enc.Alphabet()
		if _, err := fmt.Fprintf(c.app.stdout, "%-10s %d bits, %d bytes per %d symbols, %s\n",
			name, a.Bits(), enc.BlockBytes(), enc.BlockSymbols(), a); err != nil {
			return err
		}
	}
	return nil
}

// appendErrors combines the input errors with the command errors.
func appendErrors(errs ...error) error {
	var result error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result
}
