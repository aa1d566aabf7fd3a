// errors.go - exported error kinds.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import (
	"errors"
	"fmt"
)

// ErrHelpRequested is returned by [Parse] (wrapped, never bare) when
// `--help` was recognized on the command line. It is not strictly an
// error: it is returned out-of-band, which in Go means a sentinel
// checkable with [errors.Is] rather than a distinct return channel.
var ErrHelpRequested = errors.New("help requested")

// RegistryInvalidError wraps a registry validation failure.
type RegistryInvalidError struct {
	Err error
}

func (e RegistryInvalidError) Error() string {
	return fmt.Sprintf("invalid option registry: %v", e.Err)
}

func (e RegistryInvalidError) Unwrap() error { return e.Err }

// InputFailureError wraps a failure from the input-acquisition layer:
// an unopenable or recursive response file, a second read of standard
// input, or input-stack depth exhaustion.
type InputFailureError struct {
	Err error
}

func (e InputFailureError) Error() string {
	return fmt.Sprintf("input failure: %v", e.Err)
}

func (e InputFailureError) Unwrap() error { return e.Err }

// TokenizerFailureError wraps an unterminated quote or a dangling
// escape at input end.
type TokenizerFailureError struct {
	Err error
}

func (e TokenizerFailureError) Error() string {
	return fmt.Sprintf("tokenizer failure: %v", e.Err)
}

func (e TokenizerFailureError) Unwrap() error { return e.Err }

// CommentUnbalancedError wraps a bracketed-comment nesting failure: a
// stand-alone `}-` with no matching `-{`, or a source that ends while
// a `-{` level is still open.
type CommentUnbalancedError struct {
	Err error
}

func (e CommentUnbalancedError) Error() string {
	return fmt.Sprintf("bracketed comment: %v", e.Err)
}

func (e CommentUnbalancedError) Unwrap() error { return e.Err }

// ExtractionError wraps a failure from the Flagged or Unflagged
// Extractor: an unclaimed flag-like token, missing parameters, or an
// extraneous token ("UnknownFlag", "MissingParameters",
// "UnexpectedArgument").
type ExtractionError struct {
	Err error
}

func (e ExtractionError) Error() string {
	return fmt.Sprintf("argument extraction failed: %v", e.Err)
}

func (e ExtractionError) Unwrap() error { return e.Err }

// DefaultParseFailureError wraps a failure originating from default
// tokenization or parsing rather than user input.
type DefaultParseFailureError struct {
	Err error
}

func (e DefaultParseFailureError) Error() string {
	return fmt.Sprintf("default value parse failed: %v", e.Err)
}

func (e DefaultParseFailureError) Unwrap() error { return e.Err }

// ValueParseError wraps a failure from the Value Setter: a type
// mismatch, an enum miss, or a user callback failure.
type ValueParseError struct {
	Err error
}

func (e ValueParseError) Error() string {
	return fmt.Sprintf("%v", e.Err)
}

func (e ValueParseError) Unwrap() error { return e.Err }
