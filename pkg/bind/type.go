// type.go - the closed set of value types an Option can carry.
// SPDX-License-Identifier: GPL-3.0-or-later

package bind

// Type is the closed set of value types an [Option] may declare.
type Type int

// These constants define the allowed [Type] values.
const (
	Bool = Type(iota)
	Short
	UShort
	Int
	UInt
	Long
	ULong
	Size
	Float
	Double
	Char
	String
	Enum
	Other
)

// String implements [fmt.Stringer].
func (t Type) String() string {
	switch t {
	case Bool:
		return "bool"
	case Short:
		return "short"
	case UShort:
		return "ushort"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Long:
		return "long"
	case ULong:
		return "ulong"
	case Size:
		return "size"
	case Float:
		return "float"
	case Double:
		return "double"
	case Char:
		return "char"
	case String:
		return "string"
	case Enum:
		return "enum"
	case Other:
		return "other"
	default:
		return "invalid"
	}
}

// IsNumericScalar reports whether t is one of the numeric-scalar types
// allowed as the type of a kind-4 (single optional parameter) option.
func (t Type) IsNumericScalar() bool {
	switch t {
	case Bool, Short, UShort, Int, UInt, Long, ULong, Size, Float, Double:
		return true
	default:
		return false
	}
}
