// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runApp runs the command line with the given standard input and returns
// the standard output and error.
func runApp(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := newApp("baseenc", strings.NewReader(input), &stdout, &stderr)
	err := a.run(args)
	return stdout.String(), stderr.String(), err
}

func TestEncode(t *testing.T) {
	var vectors = []struct {
		args   []string
		input  string
		output string
	}{
		{[]string{"encode"}, "", ""},
		{[]string{"encode"}, "foobar", "Zm9vYmFy\n"},
		{[]string{"encode", "-"}, "foob", "Zm9vYg==\n"},
		{[]string{"encode", "-n"}, "foob", "Zm9vYg\n"},
		{[]string{"encode", "-w", "0"}, "fo", "Zm8="},
		{[]string{"encode", "-c", "base16"}, "foo", "666f6f\n"},
		{[]string{"encode", "-c", "base16", "-u"}, "foo", "666F6F\n"},
		{[]string{"encode", "-c", "base32", "-w", "4"}, "foobar", "mzxw\n6ytb\noi==\n====\n"},
		{[]string{"encode", "-c", "base32hex", "-u", "-m", "-w", "8"}, "foobar", "CPNMUOJ1\r\nE8======\r\n"},
		{[]string{"encode", "-c", "base2", "--wrap", "8"}, "ab", "01100001\n01100010\n"},
		{[]string{"encode", "-c", "base64url"}, "\xfb\xff", "-_8=\n"},
	}

	for _, v := range vectors {
		t.Run(strings.Join(v.args, " "), func(t *testing.T) {
			stdout, _, err := runApp(t, v.input, v.args...)
			require.NoError(t, err)
			assert.Equal(t, v.output, stdout)
		})
	}
}

func TestDecode(t *testing.T) {
	var vectors = []struct {
		args   []string
		input  string
		output string
		errStr string
	}{
		{args: []string{"decode"}, input: "", output: ""},
		{args: []string{"decode"}, input: "Zm9v\nYmFy\n", output: "foobar"},
		{args: []string{"decode"}, input: "Zm9vYg\r\n", output: "foob"},
		{args: []string{"decode", "-c", "base16"}, input: "666F6f\n", output: "foo"},
		{args: []string{"decode", "-c", "base32"}, input: "mzxw\n6ytb\noi==\n====\n", output: "foobar"},
		{args: []string{"decode", "-i"}, input: "Zm9v!!Ym*Fy", output: "foobar"},
		{args: []string{"decode", "-s"}, input: "Zm9v\nYmFy", errStr: "invalid character '\\n' at offset 4"},
		{args: []string{"decode"}, input: "Zm9v!", errStr: "invalid character '!' at offset 4"},
		{args: []string{"decode"}, input: "Zm9vY", errStr: "invalid length"},
		{args: []string{"decode", "-c", "base58"}, input: "", errStr: "unknown encoding \"base58\""},
	}

	for _, v := range vectors {
		t.Run(strings.Join(v.args, " "), func(t *testing.T) {
			stdout, _, err := runApp(t, v.input, v.args...)
			if v.errStr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), v.errStr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, v.output, stdout)
		})
	}
}

func TestFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "baseenc")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	foo := filepath.Join(dir, "foo.txt")
	bar := filepath.Join(dir, "bar.txt")
	missing := filepath.Join(dir, "missing.txt")
	require.NoError(t, ioutil.WriteFile(foo, []byte("foo"), 0644))
	require.NoError(t, ioutil.WriteFile(bar, []byte("bar"), 0644))

	stdout, _, err := runApp(t, "", "encode", foo, bar)
	require.NoError(t, err)
	assert.Equal(t, "Zm9vYmFy\n", stdout)

	// Standard input may appear among the files.
	stdout, _, err = runApp(t, "-", "encode", foo, "-", bar)
	require.NoError(t, err)
	assert.Equal(t, "Zm9vLWJhcg==\n", stdout)

	// Inputs that cannot be opened are reported after the rest are processed.
	stdout, _, err = runApp(t, "", "encode", foo, missing, bar)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.Equal(t, "Zm9vYmFy\n", stdout)

	enc := filepath.Join(dir, "foo.b64")
	require.NoError(t, ioutil.WriteFile(enc, []byte("Zm9v\n"), 0644))
	stdout, _, err = runApp(t, "", "decode", enc)
	require.NoError(t, err)
	assert.Equal(t, "foo", stdout)
}

func TestList(t *testing.T) {
	stdout, _, err := runApp(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, "base2 base16 base32 base32hex base64 base64url\n", stdout)

	stdout, _, err = runApp(t, "", "list", "-l")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[2], "base32 "), "line %q", lines[2])
	assert.Contains(t, lines[2], "5 bits, 5 bytes per 8 symbols")
	assert.Contains(t, lines[2], "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567=")
}

func TestEnvironment(t *testing.T) {
	require.NoError(t, os.Setenv("BASEENC_CODEC", "base16"))
	require.NoError(t, os.Setenv("BASEENC_WRAP", "2"))
	defer os.Unsetenv("BASEENC_CODEC")
	defer os.Unsetenv("BASEENC_WRAP")

	stdout, _, err := runApp(t, "foo", "encode")
	require.NoError(t, err)
	assert.Equal(t, "66\n6f\n6f\n", stdout)

	// Flags take precedence over the environment.
	stdout, _, err = runApp(t, "foo", "encode", "-c", "base64", "-w", "0")
	require.NoError(t, err)
	assert.Equal(t, "Zm9v", stdout)
}

func TestExitCode(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a := newApp("baseenc", strings.NewReader(""), &stdout, &stderr)
	err := a.run([]string{"--help"})
	require.Error(t, err)
	ferr, ok := err.(*flags.Error)
	require.True(t, ok, "error %T", err)
	assert.Equal(t, flags.ErrHelp, ferr.Type)
	assert.Equal(t, 0, a.exitCode(err))
	assert.Contains(t, stdout.String(), "encode")
	assert.Contains(t, stdout.String(), "decode")

	stdout.Reset()
	stderr.Reset()
	a = newApp("baseenc", strings.NewReader("Zm9v!"), &stdout, &stderr)
	err = a.run([]string{"decode"})
	require.Error(t, err)
	assert.Equal(t, 1, a.exitCode(err))
	assert.Contains(t, stderr.String(), "baseenc failed")
	assert.Contains(t, stderr.String(), "invalid character")

	assert.Equal(t, 0, a.exitCode(nil))
}

func TestVerbosity(t *testing.T) {
	_, stderr, err := runApp(t, "foo", "-vv", "encode")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Encoding")

	_, stderr, err = runApp(t, "foo", "--log-format", "json", "-vv", "encode")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"Encoding"`)
	assert.Contains(t, stderr, `"codec":"base64"`)

	_, stderr, err = runApp(t, "foo", "encode")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}
