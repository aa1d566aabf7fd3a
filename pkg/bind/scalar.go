// scalar.go - explicit registration for the non-generic types.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

// String, Char, Enum, and Other values have no uniform Go zero-value
// family the way the numeric types do (a char needs length-1
// validation, an enum needs its [EnumDef], a string needs allocation
// tracking, Other needs user [OtherCallbacks]), so each gets its own
// explicit, non-generic registration method rather than sharing
// [AddScalar]'s type parameter.

// AddString declares a kind-2 option taking exactly one string
// parameter.
func (r *Registry) AddString(short, long, name, help, def string, storage *string) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: String, Min: 1, Max: 1, Storage: storage, Default: def,
	})
}

// AddStringVariadic declares a kind-5 option taking between min and
// max string parameters.
func (r *Registry) AddStringVariadic(short, long, name, help string, min, max int, storage *[]string, countObserved *int, unflagged bool) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: String, Min: min, Max: max, Storage: storage,
		CountObserved: countObserved, Unflagged: unflagged,
	})
}

// AddStringFixed declares a kind-3 option taking exactly n (n>=2)
// string parameters.
func (r *Registry) AddStringFixed(short, long, name, help string, n int, storage *[]string, unflagged bool) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: String, Min: n, Max: n, Storage: storage, Unflagged: unflagged,
	})
}

// AddChar declares a kind-2 option taking exactly one single-byte
// token.
func (r *Registry) AddChar(short, long, name, help, def string, storage *byte) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: Char, Min: 1, Max: 1, Storage: storage, Default: def,
	})
}

// AddEnum declares a kind-2 option whose single token is looked up
// against enum's [EnumDef].
func (r *Registry) AddEnum(short, long, name, help, def string, storage *int, enum *EnumDef) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: Enum, Min: 1, Max: 1, Storage: storage, Default: def, Enum: enum,
	})
}

// AddOther declares a kind-2 option whose single token is parsed by
// user-supplied callbacks rather than a built-in type.
func (r *Registry) AddOther(short, long, name, help, def string, storage any, callbacks *OtherCallbacks) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: Other, Min: 1, Max: 1, Storage: storage, Default: def, Other: callbacks,
	})
}

// AddSize declares a kind-2 option taking exactly one size-typed
// parameter. Size shares uint64's representation with ULong, so it
// cannot be reached through [AddScalar]'s generic dispatch (which
// infers Type from the Go type alone) and needs this explicit
// counterpart instead.
func (r *Registry) AddSize(short, long, name, help, def string, storage *uint64) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: Size, Min: 1, Max: 1, Storage: storage, Default: def,
	})
}

// AddSizeVariadic declares a kind-5 option taking between min and max
// size-typed parameters.
func (r *Registry) AddSizeVariadic(short, long, name, help string, min, max int, storage *[]uint64, countObserved *int, unflagged bool) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: Size, Min: min, Max: max, Storage: storage,
		CountObserved: countObserved, Unflagged: unflagged,
	})
}

// AddUnflaggedOne declares a single required positional parameter.
func (r *Registry) AddUnflaggedOne(name, help string, typ Type, storage any) *Option {
	return r.add(&Option{
		Name: name, Help: help, Type: typ, Min: 1, Max: 1,
		Storage: storage, Unflagged: true,
	})
}
