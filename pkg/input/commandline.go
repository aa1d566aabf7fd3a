// commandline.go - argv-backed Input.
// SPDX-License-Identifier: GPL-3.0-or-later

package input

import "github.com/go-hest/hest/pkg/arg"

// CommandLineInput acquires tokens directly from a borrowed argv slice,
// one element per call, with no tokenizer involvement.
type CommandLineInput struct {
	commentCounter

	argv   []string
	cursor int
}

var _ Input = (*CommandLineInput)(nil)

// NewCommandLineInput returns an [*CommandLineInput] over argv. The
// slice is borrowed: CommandLineInput never mutates or owns it.
func NewCommandLineInput(argv []string) *CommandLineInput {
	return &CommandLineInput{argv: argv}
}

// Kind implements [Input].
func (c *CommandLineInput) Kind() Kind { return CommandLine }

// Name implements [Input].
func (c *CommandLineInput) Name() string { return "command line" }

// Source implements [Input].
func (c *CommandLineInput) Source() arg.Source { return arg.CommandLine }

// Next returns the next whole token, or ok=false once argv is
// exhausted.
func (c *CommandLineInput) Next() (token string, ok bool) {
	if c.cursor >= len(c.argv) {
		return "", false
	}
	token = c.argv[c.cursor]
	c.cursor++
	return token, true
}
