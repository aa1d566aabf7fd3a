// doc.go - package documentation.
// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package tokenizer implements the character-level deterministic finite
automaton that turns a stream of raw bytes into [arg.Arg] tokens.

The automaton has no notion of options, flags, or response files: it
only understands whitespace splitting, single- and double-quoting,
backslash escaping (including line continuation), and `#` line
comments. Higher layers (package inputproc) drive a fresh [DFA] for
each token read from a byte source and interpret the resulting raw
tokens.

This package is a from-scratch deterministic state machine: a single
entry point that consumes characters left to right and classifies
them. [DFA] recognizes the bytes that make up one token, because
hest's contract starts from a character grammar rather than a
pre-tokenized argv.
*/
package tokenizer
