// numeric.go - generic registration for the numeric-scalar types.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

// Numeric constrains the Go types backing the numeric-scalar [Type]
// values (Bool, Short, UShort, Int, UInt, Long, ULong, Size, Float,
// Double). Collapses what would otherwise be macro-generated
// per-type functions into one generic implementation.
type Numeric interface {
	~bool | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

// numericType maps a Go numeric type parameter to its [Type] tag. It
// is resolved once per call via a type switch on a zero value, since
// Go generics have no direct type-to-constant reflection.
func numericType[T Numeric](zero T) Type {
	switch any(zero).(type) {
	case bool:
		return Bool
	case int16:
		return Short
	case uint16:
		return UShort
	case int32:
		return Int
	case uint32:
		return UInt
	case int64:
		return Long
	case uint64:
		return ULong
	case float32:
		return Float
	case float64:
		return Double
	default:
		return Other
	}
}

// AddFlag declares a kind-1 stand-alone flag option.
func (r *Registry) AddFlag(short, long, name, help string, storage *bool) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: Bool, Min: 0, Max: 0, Storage: storage,
	})
}

// AddScalar declares a kind-2 option taking exactly one numeric-scalar
// parameter.
func AddScalar[T Numeric](r *Registry, short, long, name, help, def string, storage *T) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: numericType(*new(T)), Min: 1, Max: 1,
		Storage: storage, Default: def,
	})
}

// AddOptional declares a kind-4 option taking zero or one numeric
// parameter.
func AddOptional[T Numeric](r *Registry, short, long, name, help, def string, storage *T) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: numericType(*new(T)), Min: 0, Max: 1,
		Storage: storage, Default: def,
	})
}

// AddFixed declares a kind-3 option taking exactly n (n>=2) numeric
// parameters, or an unflagged positional group of the same shape when
// short and long are both empty and unflagged is true.
func AddFixed[T Numeric](r *Registry, short, long, name, help string, n int, storage *[]T, unflagged bool) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: numericType(*new(T)), Min: n, Max: n,
		Storage: storage, Unflagged: unflagged,
	})
}

// AddVariadic declares a kind-5 option taking between min and max
// (max may be [Unbounded]) numeric parameters.
func AddVariadic[T Numeric](r *Registry, short, long, name, help string, min, max int, storage *[]T, countObserved *int, unflagged bool) *Option {
	return r.add(&Option{
		Short: short, Long: long, Name: name, Help: help,
		Type: numericType(*new(T)), Min: min, Max: max,
		Storage: storage, CountObserved: countObserved, Unflagged: unflagged,
	})
}
