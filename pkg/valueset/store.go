// store.go - writing parsed numeric values into caller storage.
// SPDX-License-Identifier: GPL-3.0-or-later

package valueset

import (
	"fmt"

	"github.com/go-hest/hest/pkg/bind"
)

// storeNumericScalar writes v (the dynamically-typed result of
// numericParser) into storage, which must be a pointer to the Go type
// typ corresponds to.
func storeNumericScalar(typ bind.Type, storage any, v any) error {
	switch typ {
	case bind.Bool:
		p, ok := storage.(*bool)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(bool)
	case bind.Short:
		p, ok := storage.(*int16)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(int16)
	case bind.UShort:
		p, ok := storage.(*uint16)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(uint16)
	case bind.Int:
		p, ok := storage.(*int32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(int32)
	case bind.UInt:
		p, ok := storage.(*uint32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(uint32)
	case bind.Long:
		p, ok := storage.(*int64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(int64)
	case bind.ULong, bind.Size:
		p, ok := storage.(*uint64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(uint64)
	case bind.Float:
		p, ok := storage.(*float32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(float32)
	case bind.Double:
		p, ok := storage.(*float64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = v.(float64)
	default:
		return badStorage(typ, storage)
	}
	return nil
}

// appendNumericSlice appends v onto the slice storage points to.
func appendNumericSlice(typ bind.Type, storage any, v any) error {
	switch typ {
	case bind.Bool:
		p, ok := storage.(*[]bool)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(bool))
	case bind.Short:
		p, ok := storage.(*[]int16)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(int16))
	case bind.UShort:
		p, ok := storage.(*[]uint16)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(uint16))
	case bind.Int:
		p, ok := storage.(*[]int32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(int32))
	case bind.UInt:
		p, ok := storage.(*[]uint32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(uint32))
	case bind.Long:
		p, ok := storage.(*[]int64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(int64))
	case bind.ULong, bind.Size:
		p, ok := storage.(*[]uint64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(uint64))
	case bind.Float:
		p, ok := storage.(*[]float32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(float32))
	case bind.Double:
		p, ok := storage.(*[]float64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = append(*p, v.(float64))
	default:
		return badStorage(typ, storage)
	}
	return nil
}

// resetNumericSlice truncates the slice storage points to, so a
// variadic option re-parsed (e.g. across repeated [Run] calls in
// tests) does not accumulate stale entries.
func resetNumericSlice(typ bind.Type, storage any) error {
	switch typ {
	case bind.Bool:
		p, ok := storage.(*[]bool)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.Short:
		p, ok := storage.(*[]int16)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.UShort:
		p, ok := storage.(*[]uint16)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.Int:
		p, ok := storage.(*[]int32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.UInt:
		p, ok := storage.(*[]uint32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.Long:
		p, ok := storage.(*[]int64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.ULong, bind.Size:
		p, ok := storage.(*[]uint64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.Float:
		p, ok := storage.(*[]float32)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	case bind.Double:
		p, ok := storage.(*[]float64)
		if !ok {
			return badStorage(typ, storage)
		}
		*p = (*p)[:0]
	default:
		return badStorage(typ, storage)
	}
	return nil
}

func badStorage(typ bind.Type, storage any) error {
	return fmt.Errorf("valueset: storage %T does not match type %s", storage, typ)
}
