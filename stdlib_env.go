// stdlib_env.go - standard library execution environment.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import (
	"io"
	"os"
)

// StdlibEnv is a highly-customizable [Env] whose default implementation
// uses the standard library.
//
// The zero value is not ready to use. Use [NewStdlibEnv] to create a
// new instance. Customize fields as needed.
type StdlibEnv struct {
	// OSArgs is initialized with [os.Args].
	OSArgs []string

	// OSExit is initialized with [os.Exit].
	OSExit func(exitcode int)

	// OSLookupEnv is initialized with [os.LookupEnv].
	OSLookupEnv func(key string) (string, bool)

	// OSStderr is initialized with [os.Stderr].
	OSStderr io.Writer

	// OSStdout is initialized with [os.Stdout].
	OSStdout io.Writer

	// OSStdin is initialized with [os.Stdin].
	OSStdin io.Reader
}

var _ Env = &StdlibEnv{}

// NewStdlibEnv creates a new [StdlibEnv] instance.
func NewStdlibEnv() *StdlibEnv {
	return &StdlibEnv{
		OSArgs:      os.Args,
		OSExit:      os.Exit,
		OSLookupEnv: os.LookupEnv,
		OSStderr:    os.Stderr,
		OSStdout:    os.Stdout,
		OSStdin:     os.Stdin,
	}
}

// Args implements [Env].
func (ee *StdlibEnv) Args() []string {
	return ee.OSArgs
}

// Exit implements [Env].
func (ee *StdlibEnv) Exit(exitcode int) {
	ee.OSExit(exitcode)
}

// LookupEnv implements [Env].
func (ee *StdlibEnv) LookupEnv(key string) (string, bool) {
	return ee.OSLookupEnv(key)
}

// Stderr implements [Env].
func (ee *StdlibEnv) Stderr() io.Writer {
	return ee.OSStderr
}

// Stdin implements [Env].
func (ee *StdlibEnv) Stdin() io.Reader {
	return ee.OSStdin
}

// Stdout implements [Env].
func (ee *StdlibEnv) Stdout() io.Writer {
	return ee.OSStdout
}
