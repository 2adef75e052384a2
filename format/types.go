// Package format defines the normalized element-type representation used
// throughout arraykit.
//
// A DType is a small comparable value: contract checks compare dtypes with
// ==, and sets of acceptable dtypes are plain membership tests. Parse
// normalizes the common spellings ("float64", "f8", "u4", ...) to the same
// canonical value, so two callers naming the same type always produce
// equal DTypes.
package format

import (
	"fmt"

	"github.com/arloliu/arraykit/errs"
)

// Kind is the coarse category of a DType.
type Kind uint8

const (
	KindBool   Kind = 0x1 // KindBool represents boolean element types.
	KindInt    Kind = 0x2 // KindInt represents signed integer element types.
	KindUint   Kind = 0x3 // KindUint represents unsigned integer element types.
	KindFloat  Kind = 0x4 // KindFloat represents floating-point element types.
	KindString Kind = 0x5 // KindString represents variable-length string element types.
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// DType identifies the storage type of an array element: its kind plus the
// element width in bytes. Width is 0 for variable-length kinds (strings).
//
// DType is comparable; two DTypes are the same type iff they are ==.
type DType struct {
	Kind  Kind
	Width int
}

// Canonical dtypes. Callers should use these (or Parse) rather than
// constructing DType literals.
var (
	Bool    = DType{Kind: KindBool, Width: 1}
	Int8    = DType{Kind: KindInt, Width: 1}
	Int16   = DType{Kind: KindInt, Width: 2}
	Int32   = DType{Kind: KindInt, Width: 4}
	Int64   = DType{Kind: KindInt, Width: 8}
	Uint8   = DType{Kind: KindUint, Width: 1}
	Uint16  = DType{Kind: KindUint, Width: 2}
	Uint32  = DType{Kind: KindUint, Width: 4}
	Uint64  = DType{Kind: KindUint, Width: 8}
	Float32 = DType{Kind: KindFloat, Width: 4}
	Float64 = DType{Kind: KindFloat, Width: 8}
	String  = DType{Kind: KindString, Width: 0}
)

func (d DType) String() string {
	switch d.Kind {
	case KindBool:
		return "bool"
	case KindInt:
		return fmt.Sprintf("int%d", d.Width*8)
	case KindUint:
		return fmt.Sprintf("uint%d", d.Width*8)
	case KindFloat:
		return fmt.Sprintf("float%d", d.Width*8)
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// dtypeNames maps accepted spellings to canonical dtypes. Both the Go-style
// names and the single-letter width codes are accepted.
var dtypeNames = map[string]DType{
	"bool": Bool, "b1": Bool,
	"int8": Int8, "i1": Int8,
	"int16": Int16, "i2": Int16,
	"int32": Int32, "i4": Int32,
	"int64": Int64, "i8": Int64,
	"uint8": Uint8, "u1": Uint8,
	"uint16": Uint16, "u2": Uint16,
	"uint32": Uint32, "u4": Uint32,
	"uint64": Uint64, "u8": Uint64,
	"float32": Float32, "f4": Float32,
	"float64": Float64, "f8": Float64,
	"string": String, "str": String,
}

// Parse normalizes a dtype spelling to its canonical DType.
func Parse(name string) (DType, error) {
	dt, ok := dtypeNames[name]
	if !ok {
		return DType{}, fmt.Errorf("%w: unknown dtype %q", errs.ErrTypeContract, name)
	}

	return dt, nil
}
