// error.go - bind package error types.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import "fmt"

// ErrInvalidArity is returned when an option's (Min, Max) pair does
// not correspond to any [Kind] in derivation table.
type ErrInvalidArity struct {
	Name     string
	Min, Max int
}

func (e ErrInvalidArity) Error() string {
	return fmt.Sprintf("option %q: (min=%d, max=%d) is not a valid arity", e.Name, e.Min, e.Max)
}

// ErrNoFlagSpelling is returned when a flagged option declares neither
// a short nor a long spelling.
type ErrNoFlagSpelling struct{ Name string }

func (e ErrNoFlagSpelling) Error() string {
	return fmt.Sprintf("option %q: must declare a short or a long flag", e.Name)
}

// ErrMalformedFlag is returned when a flag spelling is empty,
// whitespace, or otherwise not a valid token.
type ErrMalformedFlag struct {
	Name string
	Flag string
}

func (e ErrMalformedFlag) Error() string {
	return fmt.Sprintf("option %q: malformed flag %q", e.Name, e.Flag)
}

// ErrReservedLongFlag is returned when a long flag collides with
// "help" while [*Params] respects --help.
type ErrReservedLongFlag struct{ Name string }

func (e ErrReservedLongFlag) Error() string {
	return fmt.Sprintf("option %q: long flag \"help\" is reserved", e.Name)
}

// ErrDuplicateFlag is returned when two options declare the same short
// or long spelling.
type ErrDuplicateFlag struct {
	Flag   string
	First  string
	Second string
}

func (e ErrDuplicateFlag) Error() string {
	return fmt.Sprintf("flag %q used by both %q and %q", e.Flag, e.First, e.Second)
}

// ErrMultipleUnflaggedVariadic is returned when more than one
// unflagged option of KindVariadic is registered: a registry may
// have at most one unflagged variadic option.
type ErrMultipleUnflaggedVariadic struct {
	First  string
	Second string
}

func (e ErrMultipleUnflaggedVariadic) Error() string {
	return fmt.Sprintf("only one unflagged variadic option is allowed, found %q and %q", e.First, e.Second)
}

// ErrUnflaggedMinZero is returned when an unflagged option other than
// the variadic one declares Min == 0.
type ErrUnflaggedMinZero struct{ Name string }

func (e ErrUnflaggedMinZero) Error() string {
	return fmt.Sprintf("unflagged option %q: min must be >= 1", e.Name)
}

// ErrUnflaggedNotLast is returned when an unflagged variadic option is
// not the last unflagged option in registration order. Name is the
// variadic option's name.
type ErrUnflaggedNotLast struct{ Name string }

func (e ErrUnflaggedNotLast) Error() string {
	return fmt.Sprintf("unflagged variadic option %q must be the last unflagged option declared", e.Name)
}

// ErrSideChannelMismatch is returned when an option's Enum or Other
// side channel is set but Type disagrees, or vice versa.
type ErrSideChannelMismatch struct {
	Name string
	Type Type
}

func (e ErrSideChannelMismatch) Error() string {
	return fmt.Sprintf("option %q: type %s requires its matching side channel to be set, and no other", e.Name, e.Type)
}

// ErrKindFourTypeRestricted is returned when a KindOptional option
// declares a Type that is not numeric-scalar (resolved in DESIGN.md:
// kind-4 options are restricted to numeric-scalar types).
type ErrKindFourTypeRestricted struct {
	Name string
	Type Type
}

func (e ErrKindFourTypeRestricted) Error() string {
	return fmt.Sprintf("option %q: optional-parameter options must use a numeric-scalar type, got %s", e.Name, e.Type)
}
