// arg.go - growable token buffer.
// SPDX-License-Identifier: GPL-3.0-or-later

package arg

// Arg is one finished token produced by the tokenizer, tagged with the
// [Source] it was acquired from.
//
// The original C implementation this package is modeled after keeps Arg
// as an always NUL-terminated byte buffer; in Go a string already carries
// its own length, so the buffer collapses to a plain byte slice and the
// systems-language ownership machinery collapses into ordinary value
// types. What survives is the shape: a token starts empty and only
// grows by appending bytes, one at a time, from the tokenizer.
type Arg struct {
	buf    []byte
	source Source
}

// New returns an empty [Arg] tagged with source.
func New(source Source) *Arg {
	return &Arg{source: source}
}

// NewFromString returns an [Arg] whose buffer already holds s.
func NewFromString(s string, source Source) *Arg {
	return &Arg{buf: []byte(s), source: source}
}

// Append appends one byte to the token buffer.
func (a *Arg) Append(b byte) {
	a.buf = append(a.buf, b)
}

// String returns the token's text.
func (a *Arg) String() string {
	if a == nil {
		return ""
	}
	return string(a.buf)
}

// Len returns the number of bytes accumulated so far.
func (a *Arg) Len() int {
	return len(a.buf)
}

// Source returns the token's provenance.
func (a *Arg) Source() Source {
	return a.source
}

// SetSource overwrites the token's provenance.
func (a *Arg) SetSource(s Source) {
	a.source = s
}

// Clone returns an independent copy of a.
func (a *Arg) Clone() *Arg {
	buf := make([]byte, len(a.buf))
	copy(buf, a.buf)
	return &Arg{buf: buf, source: a.source}
}
