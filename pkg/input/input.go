// input.go - one source of characters feeding the tokenizer.
// SPDX-License-Identifier: GPL-3.0-or-later

// Package input implements the tagged-union [Input] sources and the
// bounded [Stack] of them, driven by package inputproc.
package input

import "github.com/go-hest/hest/pkg/arg"

// Kind distinguishes the three flavors of [Input].
type Kind int

// These constants define the allowed [Kind] values.
const (
	// CommandLine wraps a borrowed argv slice and a cursor into it.
	// Each element is already one complete token as delivered by the
	// host OS: command-line tokens are
	// never re-split by the tokenizer DFA.
	CommandLine = Kind(iota)

	// ResponseFile wraps an open file and feeds it byte by byte to
	// the tokenizer DFA.
	ResponseFile

	// Default wraps a borrowed default string and feeds it byte by
	// byte to the tokenizer DFA, exactly like ResponseFile minus the
	// ability to contain `@file` references.
	Default
)

// Input is one source of tokens on the [Stack]. Every [Input] carries
// an open-comment-level counter, since `-{ ... }-` nesting is tracked
// per source.
type Input interface {
	// Kind reports which concrete flavor this Input is.
	Kind() Kind

	// Name returns a human-readable name used in diagnostics: "command
	// line" for command-line, the name the `@name` reference used for
	// response files, and "default for " plus the owning option's name
	// for defaults.
	Name() string

	// Source returns the provenance tag to stamp onto tokens
	// acquired from this Input.
	Source() arg.Source

	// CommentDepth returns the number of currently open `-{` levels.
	CommentDepth() int

	// IncCommentDepth opens one more `-{` level.
	IncCommentDepth()

	// DecCommentDepth closes one `-{` level. It returns false if no
	// level was open (i.e. an unmatched `}-`).
	DecCommentDepth() bool
}

// commentCounter is embedded by every concrete [Input] implementation.
type commentCounter struct {
	depth int
}

func (c *commentCounter) CommentDepth() int { return c.depth }

func (c *commentCounter) IncCommentDepth() { c.depth++ }

func (c *commentCounter) DecCommentDepth() bool {
	if c.depth <= 0 {
		return false
	}
	c.depth--
	return true
}
