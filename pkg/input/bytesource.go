// bytesource.go - ResponseFile and Default Input.
// SPDX-License-Identifier: GPL-3.0-or-later

package input

import (
	"bufio"
	"io"

	"github.com/go-hest/hest/pkg/arg"
)

// ByteSource is implemented by Input flavors that feed the tokenizer
// DFA one byte at a time (ResponseFileInput and DefaultInput).
type ByteSource interface {
	Input

	// NextByte returns the next byte, or eof=true once the source is
	// drained. err is non-nil only for ResponseFileInput, on a read
	// failure unrelated to EOF.
	NextByte() (b byte, eof bool, err error)
}

// ResponseFileInput feeds the bytes of an open response file to the
// tokenizer DFA. It owns the underlying [io.ReadCloser] and the file
// name it was opened under (kept for diagnostics and for the
// recursion guard in [Stack.Push]).
type ResponseFileInput struct {
	commentCounter

	name   string
	reader *bufio.Reader
	closer io.Closer
}

var _ ByteSource = (*ResponseFileInput)(nil)

// NewResponseFileInput wraps an already-opened file. name is the
// `@name` argument the caller used to open it (possibly "-" for
// standard input).
func NewResponseFileInput(name string, rc io.ReadCloser) *ResponseFileInput {
	return &ResponseFileInput{
		name:   name,
		reader: bufio.NewReader(rc),
		closer: rc,
	}
}

// Kind implements [Input].
func (r *ResponseFileInput) Kind() Kind { return ResponseFile }

// Name implements [Input].
func (r *ResponseFileInput) Name() string { return r.name }

// Source implements [Input].
func (r *ResponseFileInput) Source() arg.Source { return arg.ResponseFile }

// NextByte implements [ByteSource].
func (r *ResponseFileInput) NextByte() (byte, bool, error) {
	b, err := r.reader.ReadByte()
	switch {
	case err == io.EOF:
		return 0, true, nil
	case err != nil:
		return 0, true, err
	default:
		return b, false, nil
	}
}

// Close releases the underlying file handle.
func (r *ResponseFileInput) Close() error {
	return r.closer.Close()
}

// DefaultInput feeds the bytes of an option's default string to the
// tokenizer DFA. Default strings may never contain `@file` references;
// the input processor rejects any such token read from an Input of
// this [Kind].
type DefaultInput struct {
	commentCounter

	optionName string
	text       string
	cursor     int
}

var _ ByteSource = (*DefaultInput)(nil)

// NewDefaultInput returns a [*DefaultInput] over text, the default
// string of the option named optionName (used for diagnostics).
func NewDefaultInput(optionName, text string) *DefaultInput {
	return &DefaultInput{optionName: optionName, text: text}
}

// Kind implements [Input].
func (d *DefaultInput) Kind() Kind { return Default }

// Name implements [Input].
func (d *DefaultInput) Name() string { return "default for " + d.optionName }

// Source implements [Input].
func (d *DefaultInput) Source() arg.Source { return arg.Default }

// NextByte implements [ByteSource].
func (d *DefaultInput) NextByte() (byte, bool, error) {
	if d.cursor >= len(d.text) {
		return 0, true, nil
	}
	b := d.text[d.cursor]
	d.cursor++
	return b, false, nil
}
