// registry.go - the set of options a program declares.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import "strings"

// Registry collects the [*Option] values a program declares, in
// registration order, and validates them as a whole before any
// parsing begins.
type Registry struct {
	options []*Option

	// RespectHelp mirrors the RespectDoubleDashHelp setting of the
	// root package's Params; when true, Validate rejects any option
	// whose long flag is "help".
	RespectHelp bool

	// RespectBracketedComments mirrors the [*Params] setting of the
	// same name; when true, Validate rejects any flag spelling
	// containing `{` or `}`, since `-{`/`}-` are meta-tokens to the
	// input processor.
	RespectBracketedComments bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// add appends opt after deriving its Kind, and returns it for further
// configuration.
func (r *Registry) add(opt *Option) *Option {
	kind, ok := DeriveKind(opt.Min, opt.Max)
	opt.Kind = kind
	_ = ok // surfaced by Validate, not here: registration order may still change
	r.options = append(r.options, opt)
	return opt
}

// Options returns the registry's options in registration order.
func (r *Registry) Options() []*Option { return r.options }

// Validate enforces the whole-registry invariants:
// every option has a valid arity, every flag spelling is well-formed
// and unique, at most one unflagged option is variadic and it is the
// last one declared, every other unflagged option has Min >= 1, kind-4
// (optional-parameter) options are restricted to numeric-scalar types,
// and exactly one of an option's Enum/Other side channels is set when
// its Type requires one.
func (r *Registry) Validate() error {
	seenShort := map[string]string{}
	seenLong := map[string]string{}
	var lastUnflagged *Option
	var variadicUnflagged *Option

	for _, opt := range r.options {
		kind, ok := DeriveKind(opt.Min, opt.Max)
		if !ok {
			return ErrInvalidArity{Name: opt.Name, Min: opt.Min, Max: opt.Max}
		}
		opt.Kind = kind

		if opt.Kind == KindOptional && !opt.Type.IsNumericScalar() {
			return ErrKindFourTypeRestricted{Name: opt.Name, Type: opt.Type}
		}

		switch opt.Type {
		case Enum:
			if opt.Enum == nil || opt.Other != nil {
				return ErrSideChannelMismatch{Name: opt.Name, Type: opt.Type}
			}
		case Other:
			if opt.Other == nil || opt.Enum != nil {
				return ErrSideChannelMismatch{Name: opt.Name, Type: opt.Type}
			}
		default:
			if opt.Enum != nil || opt.Other != nil {
				return ErrSideChannelMismatch{Name: opt.Name, Type: opt.Type}
			}
		}

		if opt.Unflagged {
			// The general "every unflagged option has min>=1" rule
			// exempts the (at most one) variadic unflagged option,
			// which may legitimately declare min=0 provided it either
			// carries a default or the caller accepts it claiming
			// nothing when argv runs short.
			if opt.Min < 1 && opt.Kind != KindVariadic {
				return ErrUnflaggedMinZero{Name: opt.Name}
			}
			if variadicUnflagged != nil {
				if opt.Kind == KindVariadic {
					return ErrMultipleUnflaggedVariadic{First: variadicUnflagged.Name, Second: opt.Name}
				}
				return ErrUnflaggedNotLast{Name: variadicUnflagged.Name}
			}
			if opt.Kind == KindVariadic {
				variadicUnflagged = opt
			}
			lastUnflagged = opt
			continue
		}

		if !opt.HasShort() && !opt.HasLong() {
			return ErrNoFlagSpelling{Name: opt.Name}
		}
		if opt.HasShort() {
			if err := validateFlagSpelling(opt.Name, opt.Short, r.RespectBracketedComments); err != nil {
				return err
			}
			if prev, dup := seenShort[opt.Short]; dup {
				return ErrDuplicateFlag{Flag: opt.Short, First: prev, Second: opt.Name}
			}
			seenShort[opt.Short] = opt.Name
		}
		if opt.HasLong() {
			if err := validateFlagSpelling(opt.Name, opt.Long, r.RespectBracketedComments); err != nil {
				return err
			}
			if r.RespectHelp && opt.Long == "help" {
				return ErrReservedLongFlag{Name: opt.Name}
			}
			if prev, dup := seenLong[opt.Long]; dup {
				return ErrDuplicateFlag{Flag: opt.Long, First: prev, Second: opt.Name}
			}
			seenLong[opt.Long] = opt.Name
		}
	}
	_ = lastUnflagged // reserved for future positional-gap diagnostics

	return nil
}

// validateFlagSpelling rejects anything that is not a bare token: the
// empty string, whitespace, or a spelling containing a dash anywhere
// (not just the whole-string "-"), since a dash inside a flag spelling
// collides with the `-a-b`-style token grammar. When
// respectBracketedComments is set, `{` and `}` are rejected too, since
// `-{`/`}-` are meta-tokens to the input processor.
func validateFlagSpelling(name, flag string, respectBracketedComments bool) error {
	if flag == "" || strings.ContainsAny(flag, " \t\r\n-") {
		return ErrMalformedFlag{Name: name, Flag: flag}
	}
	if respectBracketedComments && strings.ContainsAny(flag, "{}") {
		return ErrMalformedFlag{Name: name, Flag: flag}
	}
	return nil
}
