// enum.go - named enumeration side channel.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

import "fmt"

// EnumDef is the side channel an [Option] of [Type] Enum carries: the
// mapping between the strings a user may type and the ordinals stored
// into caller memory.
type EnumDef struct {
	// Name identifies the enumeration in diagnostics, so an unknown
	// value's error can name the enum it failed to match.
	Name string

	// Values maps each accepted case-sensitive string to its ordinal.
	Values map[string]int
}

// ErrUnknownEnumValue is returned by [*EnumDef.Lookup] when token does
// not name any of the enumeration's values.
type ErrUnknownEnumValue struct {
	Enum  string
	Token string
}

func (e ErrUnknownEnumValue) Error() string {
	return fmt.Sprintf("%q is not a valid value for enum %q", e.Token, e.Enum)
}

// Lookup resolves token to its ordinal.
func (d *EnumDef) Lookup(token string) (int, error) {
	v, ok := d.Values[token]
	if !ok {
		return 0, ErrUnknownEnumValue{Enum: d.Name, Token: token}
	}
	return v, nil
}

// NameOf resolves an ordinal back to its string, used by the round-trip
// unparser and by the usage/glossary renderer. Returns ok=false if no
// value maps to ordinal.
func (d *EnumDef) NameOf(ordinal int) (string, bool) {
	for name, v := range d.Values {
		if v == ordinal {
			return name, true
		}
	}
	return "", false
}
