// kind.go - the five option arity shapes.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

// Kind is one of the five option shapes derived from an
// option's (min, max) parameter-count range.
type Kind int

// These constants define the allowed [Kind] values.
const (
	// KindFlag is min=max=0: a stand-alone flag.
	KindFlag = Kind(iota)

	// KindOne is min=max=1: a single fixed parameter.
	KindOne

	// KindFixed is min=max>=2: multiple fixed parameters.
	KindFixed

	// KindOptional is min=0, max=1: a single optional parameter.
	KindOptional

	// KindVariadic is min<max (max>=2, or max=-1 for unbounded):
	// multiple variadic parameters.
	KindVariadic
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindOne:
		return "one"
	case KindFixed:
		return "fixed"
	case KindOptional:
		return "optional"
	case KindVariadic:
		return "variadic"
	default:
		return "invalid"
	}
}

// Unbounded marks a max value with no upper bound.
const Unbounded = -1

// DeriveKind maps a (min, max) parameter-count range onto a [Kind].
// max == [Unbounded] stands for "no upper bound" and is never compared
// numerically against min: it always satisfies the variadic case
// regardless of min's value (so long as min itself is non-negative).
func DeriveKind(min, max int) (Kind, bool) {
	switch {
	case min == 0 && max == 0:
		return KindFlag, true
	case min == 1 && max == 1:
		return KindOne, true
	case min == max && min >= 2:
		return KindFixed, true
	case min == 0 && max == 1:
		return KindOptional, true
	case min < 0:
		return 0, false
	case max == Unbounded:
		return KindVariadic, true
	case min < max && max >= 2:
		return KindVariadic, true
	default:
		return 0, false
	}
}
