// error.go - input processor failure kinds.
// SPDX-License-Identifier: GPL-3.0-or-later

package inputproc

import "fmt"

// ErrResponseFileInDefault is returned when a default string contains
// an `@file` reference, which is forbidden outright.
type ErrResponseFileInDefault struct {
	Token string
}

func (e ErrResponseFileInDefault) Error() string {
	return fmt.Sprintf("response-file reference %q is not allowed in a default string", e.Token)
}

// ErrHelpOutsideCommandLine is returned when `--help` is produced from
// any source other than the command line.
type ErrHelpOutsideCommandLine struct {
	Source string
}

func (e ErrHelpOutsideCommandLine) Error() string {
	return fmt.Sprintf("--help is not allowed from %s", e.Source)
}

// ErrUnmatchedCommentClose is returned for a stand-alone `}-` with no
// matching open `-{` on the same source.
type ErrUnmatchedCommentClose struct{}

func (ErrUnmatchedCommentClose) Error() string {
	return "}- has no matching -{"
}

// ErrUnopenableResponseFile wraps the failure to open an `@file`
// reference.
type ErrUnopenableResponseFile struct {
	Name string
	Err  error
}

func (e ErrUnopenableResponseFile) Error() string {
	return fmt.Sprintf("cannot open response file %q: %v", e.Name, e.Err)
}

func (e ErrUnopenableResponseFile) Unwrap() error {
	return e.Err
}
