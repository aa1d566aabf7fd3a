// numeric.go - generic per-type numeric parsing.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueset

import (
	"fmt"
	"strconv"

	"github.com/go-hest/hest/pkg/bind"
)

func numericParser(typ bind.Type) (kind string, parse func(name, token string) (any, error)) {
	switch typ {
	case bind.Bool:
		return "bool", func(name, token string) (any, error) {
			return ParseBool(name, token)
		}
	case bind.Short:
		return "short", intParser[int16](16)
	case bind.UShort:
		return "ushort", uintParser[uint16](16)
	case bind.Int:
		return "int", intParser[int32](32)
	case bind.UInt:
		return "uint", uintParser[uint32](32)
	case bind.Long:
		return "long", intParser[int64](64)
	case bind.ULong:
		return "ulong", uintParser[uint64](64)
	case bind.Size:
		return "size", uintParser[uint64](64)
	case bind.Float:
		return "float", floatParser[float32](32)
	case bind.Double:
		return "double", floatParser[float64](64)
	default:
		return "", nil
	}
}

func intParser[T bind.Numeric](bits int) func(name, token string) (any, error) {
	return func(name, token string) (any, error) {
		n, err := strconv.ParseInt(token, 10, bits)
		if err != nil {
			return T(0), ErrIntegerParse{Name: name, Token: token, Type: fmt.Sprintf("int%d", bits), Err: err}
		}
		return T(n), nil
	}
}

func uintParser[T bind.Numeric](bits int) func(name, token string) (any, error) {
	return func(name, token string) (any, error) {
		n, err := strconv.ParseUint(token, 10, bits)
		if err != nil {
			return T(0), ErrIntegerParse{Name: name, Token: token, Type: fmt.Sprintf("uint%d", bits), Err: err}
		}
		return T(n), nil
	}
}

func floatParser[T bind.Numeric](bits int) func(name, token string) (any, error) {
	return func(name, token string) (any, error) {
		f, err := strconv.ParseFloat(token, bits)
		if err != nil {
			return T(0), ErrFloatParse{Name: name, Token: token, Type: fmt.Sprintf("float%d", bits), Err: err}
		}
		return T(f), nil
	}
}

// invertNumeric implements the kind-4 inversion rule over the
// dynamically-typed result numericParser produces.
func invertNumeric(typ bind.Type, v any) any {
	switch x := v.(type) {
	case bool:
		return !x
	case int16:
		return invertZeroOne(x)
	case uint16:
		return invertZeroOne(x)
	case int32:
		return invertZeroOne(x)
	case uint32:
		return invertZeroOne(x)
	case int64:
		return invertZeroOne(x)
	case uint64:
		return invertZeroOne(x)
	case float32:
		return invertZeroOne(x)
	case float64:
		return invertZeroOne(x)
	default:
		return v
	}
}

// numericNonBool excludes bool from [bind.Numeric]: T(1) below is not a
// valid conversion when T's type set includes bool.
type numericNonBool interface {
	~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 | ~float32 | ~float64
}

func invertZeroOne[T numericNonBool](v T) T {
	var zero T
	if v == zero {
		return T(1)
	}
	return zero
}
