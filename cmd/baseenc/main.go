// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command baseenc encodes and decodes data with the RFC 4648 encodings.
//
// Example usage:
//	$ baseenc encode -c base32 file.bin > file.txt
//	$ baseenc decode -c base32 file.txt > file.bin
//	$ echo -n foobar | baseenc encode
//	Zm9vYmFy
package main

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// app is the command-line front end. The standard streams are fields so that
// the commands can be tested without a process.
type app struct {
	parser  *flags.Parser
	general generalOptions
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

func newApp(name string, stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{
		parser: flags.NewNamedParser(name, flags.HelpFlag|flags.PassDoubleDash),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	a.mustAdd(a.parser.AddGroup("General", "General options", &a.general))
	a.mustAdd(a.parser.AddCommand(
		"encode",
		"Encode binary data",
		"Encode the concatenation of the FILEs (or standard input) to standard output",
		&encodeCommand{app: a},
	))
	a.mustAdd(a.parser.AddCommand(
		"decode",
		"Decode encoded data",
		"Decode the concatenation of the FILEs (or standard input) to standard output",
		&decodeCommand{app: a},
	))
	a.mustAdd(a.parser.AddCommand(
		"list",
		"List the encodings",
		"List the names of the supported encodings",
		&listCommand{app: a},
	))
	return a
}

func (a *app) mustAdd(_ interface{}, err error) {
	if err != nil {
		panic(errors.WithStack(err))
	}
}

// run parses the arguments and executes the selected command.
func (a *app) run(args []string) error {
	_, err := a.parser.ParseArgs(args)
	return err
}

// exitCode reports err and returns the process exit code for it.
// A request for help is not an error.
func (a *app) exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
		fmt.Fprintln(a.stdout, ferr.Message)
		return 0
	}
	log.StandardLogger().WithError(err).Errorf("%s failed", a.parser.Name)
	return 1
}

func main() {
	a := newApp(path.Base(os.Args[0]), os.Stdin, os.Stdout, os.Stderr)
	os.Exit(a.exitCode(a.run(os.Args[1:])))
}
