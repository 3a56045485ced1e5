// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// inputReader reads the concatenation of the named inputs, where "-" is the
// standard input. Inputs that cannot be opened or read are skipped and their
// errors are collected in errs.
type inputReader struct {
	names []string
	stdin io.Reader
	cur   io.Reader
	name  string
	errs  error
}

func newInputReader(names []string, stdin io.Reader) *inputReader {
	if len(names) == 0 {
		names = []string{"-"}
	}
	return &inputReader{names: names, stdin: stdin}
}

func (ir *inputReader) Read(buf []byte) (int, error) {
	for {
		if ir.cur == nil {
			if len(ir.names) == 0 {
				return 0, io.EOF
			}
			ir.open(ir.names[0])
			ir.names = ir.names[1:]
			continue
		}

		n, err := ir.cur.Read(buf)
		if err != nil {
			if err != io.EOF {
				ir.errs = multierror.Append(ir.errs, errors.Wrapf(err, "reading %s", ir.name))
			}
			ir.close()
		}
		if n > 0 || len(buf) == 0 {
			return n, nil
		}
	}
}

func (ir *inputReader) open(name string) {
	log.Debugf("Processing %s", name)
	if name == "-" {
		ir.cur, ir.name = ir.stdin, "standard input"
		return
	}
	f, err := os.Open(name)
	if err != nil {
		ir.errs = multierror.Append(ir.errs, errors.WithStack(err))
		return
	}
	ir.cur, ir.name = f, name
}

func (ir *inputReader) close() {
	if c, ok := ir.cur.(io.Closer); ok && ir.cur != ir.stdin {
		c.Close()
	}
	ir.cur = nil
}
