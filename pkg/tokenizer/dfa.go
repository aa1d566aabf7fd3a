// dfa.go - tokenizer deterministic finite automaton.
// SPDX-License-Identifier: GPL-3.0-or-later

package tokenizer

import "github.com/go-hest/hest/pkg/arg"

// state is one of the automaton's internal states.
type state int

const (
	stateStart state = iota
	stateInside
	stateSingleQuote
	stateDoubleQuote
	stateEscapeInside
	stateEscapeInDQuote
	stateComment
)

// DFA is the tokenizer deterministic finite automaton. The zero value
// is ready to use and starts in the start state.
//
// A *DFA is not safe for concurrent use; it is meant to be driven by
// exactly one goroutine processing exactly one input source at a
// time.
type DFA struct {
	st state
}

// New returns a [*DFA] ready to tokenize a fresh stream.
func New() *DFA {
	return &DFA{st: stateStart}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Step advances the automaton by one byte, possibly appending to cur,
// and reports the resulting [Status]. When eof is true, b is ignored
// and Step instead evaluates the end-of-input transition for the
// current state.
func (d *DFA) Step(cur *arg.Arg, b byte, eof bool) (Status, error) {
	if eof {
		return d.stepEOF()
	}
	switch d.st {
	case stateStart:
		return d.stepStart(cur, b)
	case stateInside:
		return d.stepInside(cur, b)
	case stateSingleQuote:
		return d.stepSingleQuote(cur, b)
	case stateDoubleQuote:
		return d.stepDoubleQuote(cur, b)
	case stateEscapeInside:
		return d.stepEscapeInside(cur, b)
	case stateEscapeInDQuote:
		return d.stepEscapeInDQuote(cur, b)
	case stateComment:
		return d.stepComment(b)
	default:
		panic("tokenizer: unhandled state")
	}
}

func (d *DFA) stepEOF() (Status, error) {
	switch d.st {
	case stateStart, stateComment:
		return TryAgain, nil
	case stateInside:
		d.st = stateStart
		return Behold, nil
	case stateSingleQuote, stateDoubleQuote:
		return Unknown, &Error{Kind: UnterminatedQuote}
	case stateEscapeInside, stateEscapeInDQuote:
		return Unknown, &Error{Kind: DanglingEscape}
	default:
		panic("tokenizer: unhandled state at end of input")
	}
}

func (d *DFA) stepStart(cur *arg.Arg, b byte) (Status, error) {
	switch {
	case isSpace(b):
		// stay in start, skip whitespace
	case b == '\'':
		d.st = stateSingleQuote
	case b == '"':
		d.st = stateDoubleQuote
	case b == '\\':
		d.st = stateEscapeInside
	case b == '#':
		d.st = stateComment
	default:
		cur.Append(b)
		d.st = stateInside
	}
	return Unknown, nil
}

func (d *DFA) stepInside(cur *arg.Arg, b byte) (Status, error) {
	switch {
	case isSpace(b):
		d.st = stateStart
		return Behold, nil
	case b == '\'':
		d.st = stateSingleQuote
	case b == '"':
		d.st = stateDoubleQuote
	case b == '\\':
		d.st = stateEscapeInside
	default:
		cur.Append(b)
	}
	return Unknown, nil
}

func (d *DFA) stepSingleQuote(cur *arg.Arg, b byte) (Status, error) {
	if b == '\'' {
		d.st = stateInside
	} else {
		cur.Append(b)
	}
	return Unknown, nil
}

func (d *DFA) stepDoubleQuote(cur *arg.Arg, b byte) (Status, error) {
	switch b {
	case '"':
		d.st = stateInside
	case '\\':
		d.st = stateEscapeInDQuote
	default:
		cur.Append(b)
	}
	return Unknown, nil
}

func (d *DFA) stepEscapeInside(cur *arg.Arg, b byte) (Status, error) {
	if b != '\n' {
		cur.Append(b)
	}
	d.st = stateInside
	return Unknown, nil
}

func (d *DFA) stepEscapeInDQuote(cur *arg.Arg, b byte) (Status, error) {
	switch {
	case b == '\n':
		// line continuation: swallowed
	case b == '$' || b == '\'' || b == '"' || b == '\\':
		cur.Append(b)
	default:
		cur.Append('\\')
		cur.Append(b)
	}
	d.st = stateDoubleQuote
	return Unknown, nil
}

func (d *DFA) stepComment(b byte) (Status, error) {
	if b == '\n' {
		d.st = stateStart
	}
	return Unknown, nil
}
