// registry.go - the public option-registration surface.
// SPDX-License-Identifier: GPL-3.0-or-later

package hest

import "github.com/go-hest/hest/pkg/bind"

// Registry, Option, Type, Kind, EnumDef, and OtherCallbacks are
// re-exported from package bind so callers never need to import it
// directly: the facade is the only supported entry point.
type (
	Registry       = bind.Registry
	Option         = bind.Option
	Type           = bind.Type
	Kind           = bind.Kind
	EnumDef        = bind.EnumDef
	OtherCallbacks = bind.OtherCallbacks
)

// Type constants, re-exported.
const (
	Bool   = bind.Bool
	Short  = bind.Short
	UShort = bind.UShort
	Int    = bind.Int
	UInt   = bind.UInt
	Long   = bind.Long
	ULong  = bind.ULong
	Size   = bind.Size
	Float  = bind.Float
	Double = bind.Double
	Char   = bind.Char
	String = bind.String
	Enum   = bind.Enum
	Other  = bind.Other
)

// Kind constants, re-exported.
const (
	KindFlag     = bind.KindFlag
	KindOne      = bind.KindOne
	KindFixed    = bind.KindFixed
	KindOptional = bind.KindOptional
	KindVariadic = bind.KindVariadic
	Unbounded    = bind.Unbounded
)

// NewRegistry returns an empty [Registry].
func NewRegistry() *Registry {
	return bind.NewRegistry()
}

// AddScalar declares a kind-2 option taking exactly one numeric-scalar
// parameter. See [bind.AddScalar].
func AddScalar[T bind.Numeric](r *Registry, short, long, name, help, def string, storage *T) *Option {
	return bind.AddScalar(r, short, long, name, help, def, storage)
}

// AddOptional declares a kind-4 option taking zero or one numeric
// parameter. See [bind.AddOptional].
func AddOptional[T bind.Numeric](r *Registry, short, long, name, help, def string, storage *T) *Option {
	return bind.AddOptional(r, short, long, name, help, def, storage)
}

// AddFixed declares a kind-3 option taking exactly n numeric
// parameters. See [bind.AddFixed].
func AddFixed[T bind.Numeric](r *Registry, short, long, name, help string, n int, storage *[]T, unflagged bool) *Option {
	return bind.AddFixed(r, short, long, name, help, n, storage, unflagged)
}

// AddVariadic declares a kind-5 option taking between min and max
// numeric parameters. See [bind.AddVariadic].
func AddVariadic[T bind.Numeric](r *Registry, short, long, name, help string, min, max int, storage *[]T, countObserved *int, unflagged bool) *Option {
	return bind.AddVariadic(r, short, long, name, help, min, max, storage, countObserved, unflagged)
}
