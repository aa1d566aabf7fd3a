// option.go - the declarative option descriptor.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import "github.com/go-hest/hest/pkg/arg"

// OtherCallbacks is the side channel an [Option] of [Type] Other
// carries: user-supplied hooks that parse a token into caller memory
// and, symmetrically, render caller memory back into a token for the
// round-trip unparser.
type OtherCallbacks struct {
	// Parse converts token into the representation the caller's
	// storage expects and writes it through storage.
	Parse func(token string, storage any) error

	// Unparse renders storage back into a token. Used only by the
	// round-trip unparser; may be nil if round-tripping is not needed.
	Unparse func(storage any) (string, error)
}

// Option is the declarative description of a single command-line
// option: its flag spelling(s), arity, value type, and the storage it
// populates.
//
// Callers never construct Option directly; they go through one of
// [*Registry]'s typed Add* methods, which fill in Kind from (Min, Max).
// The type/side-channel pairing is checked later, by
// [*Registry.Validate].
type Option struct {
	// Short is the short flag spelling without its dash, e.g. "v"
	// (matched as "-v"). Empty if the option has no short form.
	Short string

	// Long is the long flag spelling without its dashes, e.g.
	// "verbose" (matched as "--verbose"). Empty if the option has no
	// long form. At least one of Short, Long must be
	// non-empty, unless Unflagged is true.
	Long string

	// Unflagged marks a positional option: one matched by position
	// rather than by a leading flag.
	Unflagged bool

	// Name identifies the option in diagnostics and in the Usage
	// glossary. For an unflagged option this also names the
	// metavariable shown in the synopsis.
	Name string

	// Help is the one-line description rendered by Usage.
	Help string

	// Type is the value type this option's tokens are parsed as.
	Type Type

	// Min and Max are the parameter-count bounds Kind is derived from.
	// Max may be [Unbounded].
	Min, Max int

	// Kind is derived from (Min, Max) by [DeriveKind] when the option
	// is registered; callers never set it directly.
	Kind Kind

	// Storage is the address of the caller-owned variable(s) this
	// option populates. Its concrete shape depends on Kind and Type:
	// a scalar pointer for KindOne/KindOptional, a slice pointer for
	// KindFixed/KindVariadic, a *bool for KindFlag.
	Storage any

	// Default is the default-value string tokenized by the Default
	// Processor when the option is never supplied on the command
	// line. Ignored for KindFlag.
	Default string

	// CountObserved, if non-nil, receives the number of tokens a
	// KindVariadic option actually consumed. It must be nil for every
	// other kind.
	CountObserved *int

	// Enum is the enumeration side channel; required iff Type == Enum.
	Enum *EnumDef

	// Other is the user-callback side channel; required iff
	// Type == Other.
	Other *OtherCallbacks

	// tokens accumulates the raw tokens the extractors assign to this
	// option, pending value-set parsing.
	tokens *arg.Vec

	// source records where the option's value ultimately came from:
	// the command line, a response file, or its own Default string.
	source arg.Source

	// seen records whether MarkSeen has been called: by an extractor
	// that placed the option, or by the Default Processor filling it
	// in (distinct from Source, which is meaningful only once seen is
	// true).
	seen bool
}

// Tokens returns the option's accumulated token vector, creating it on
// first use.
func (o *Option) Tokens() *arg.Vec {
	if o.tokens == nil {
		o.tokens = arg.NewVec()
	}
	return o.tokens
}

// Seen reports whether the option was placed by an extractor or filled
// in by the Default Processor.
func (o *Option) Seen() bool { return o.seen }

// MarkSeen records that the option was matched, along with the
// provenance of the tokens it received.
func (o *Option) MarkSeen(source arg.Source) {
	o.seen = true
	o.source = source
}

// Source returns the provenance recorded by the most recent
// [*Option.MarkSeen] call. Meaningful only if [*Option.Seen] is true.
func (o *Option) Source() arg.Source { return o.source }

// Flags reports the option's configured flag pair.
func (o *Option) Flags() (short, long string) { return o.Short, o.Long }

// HasShort and HasLong report which spellings are configured.
func (o *Option) HasShort() bool { return o.Short != "" }
func (o *Option) HasLong() bool  { return o.Long != "" }

// Strings reconstructs, from the option's current flag spelling and
// accumulated tokens, the argv slice that would reproduce this
// option's contribution to the command line. Unflagged options
// contribute only their tokens; flagged ones are prefixed with
// whichever spelling is configured (short over long, matching the
// usage renderer's own preference).
//
// A flag followed by zero or more parameter tokens, reassembled in
// the order the original command line would have carried them.
func (o *Option) Strings() []string {
	var out []string
	if !o.Unflagged {
		switch {
		case o.HasShort():
			out = append(out, "-"+o.Short)
		case o.HasLong():
			out = append(out, "--"+o.Long)
		}
	}
	if o.Kind != KindFlag {
		out = append(out, o.Tokens().Strings()...)
	}
	return out
}
