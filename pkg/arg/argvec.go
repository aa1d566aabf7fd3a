// argvec.go - ordered sequence of Arg.
// SPDX-License-Identifier: GPL-3.0-or-later

package arg

import "github.com/go-hest/hest/internal/assert"

// Vec is an ordered sequence of [*Arg]. Insertion order is meaningful
// and preserved by every operation below.
//
// Modeled on a generic deque, but Vec additionally supports indexed
// removal: the Flagged Extractor needs to cut a flag token and a
// variable-length run of its parameters out of the middle of the
// vector, not just the front.
type Vec struct {
	items []*Arg
}

// NewVec returns an empty [Vec].
func NewVec() *Vec {
	return &Vec{}
}

// Len returns the number of tokens currently held.
func (v *Vec) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// At returns the token at index i.
func (v *Vec) At(i int) *Arg {
	assert.True(i >= 0 && i < len(v.items), "arg.Vec.At: index out of range")
	return v.items[i]
}

// Slice returns the underlying tokens. Callers must not mutate the
// returned slice.
func (v *Vec) Slice() []*Arg {
	return v.items
}

// Append copies a's content into the vector as a brand-new [*Arg].
func (v *Vec) Append(a *Arg) {
	v.items = append(v.items, a.Clone())
}

// AppendMove appends a to the vector by reference: the caller
// relinquishes ownership of a, and no copy is made. Used when a token
// already lives on the heap and is simply being relocated from one
// [Vec] to another (e.g. the Flagged Extractor moving a parameter run
// out of the raw ArgVec and into an option's private ArgVec).
func (v *Vec) AppendMove(a *Arg) {
	v.items = append(v.items, a)
}

// RemoveAt removes and returns the token at index i. The caller now
// owns the returned [*Arg].
func (v *Vec) RemoveAt(i int) *Arg {
	assert.True(i >= 0 && i < len(v.items), "arg.Vec.RemoveAt: index out of range")
	removed := v.items[i]
	v.items = append(v.items[:i], v.items[i+1:]...)
	return removed
}

// Clear empties the vector, discarding every token.
func (v *Vec) Clear() {
	v.items = nil
}

// Strings returns the token texts, in order.
func (v *Vec) Strings() []string {
	out := make([]string, 0, v.Len())
	for _, a := range v.items {
		out = append(out, a.String())
	}
	return out
}
