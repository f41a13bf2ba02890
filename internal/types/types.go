package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	KindScalar
	KindVector
	KindMatrix
	KindArray
	KindStruct
	KindOpaque
	KindGeneric
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindOpaque:
		return "opaque"
	case KindGeneric:
		return "generic"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Scalar identifies the component scalar of a numeric type.
type Scalar uint8

const (
	ScalarNone Scalar = iota
	ScalarFloat
	ScalarHalf
	ScalarInt
	ScalarUint
	ScalarBool
)

// NumberKind partitions scalars into coercion families: scalars convert
// only within their own family.
type NumberKind uint8

const (
	NumberNone NumberKind = iota
	NumberFloat
	NumberSigned
	NumberUnsigned
	NumberBoolean
)

func (s Scalar) Name() string {
	switch s {
	case ScalarFloat:
		return "float"
	case ScalarHalf:
		return "half"
	case ScalarInt:
		return "int"
	case ScalarUint:
		return "uint"
	case ScalarBool:
		return "bool"
	default:
		return "?"
	}
}

// Abbrev returns the single-character form used in mangled names.
func (s Scalar) Abbrev() string {
	switch s {
	case ScalarFloat:
		return "f"
	case ScalarHalf:
		return "h"
	case ScalarInt:
		return "i"
	case ScalarUint:
		return "I"
	case ScalarBool:
		return "b"
	default:
		return "?"
	}
}

func (s Scalar) NumberKind() NumberKind {
	switch s {
	case ScalarFloat, ScalarHalf:
		return NumberFloat
	case ScalarInt:
		return NumberSigned
	case ScalarUint:
		return NumberUnsigned
	case ScalarBool:
		return NumberBoolean
	default:
		return NumberNone
	}
}

// Priority orders scalars within a number kind: coercion toward a
// higher-or-equal priority is widening, toward a lower one narrowing.
func (s Scalar) Priority() uint8 {
	switch s {
	case ScalarFloat:
		return 10
	case ScalarHalf:
		return 9
	case ScalarInt:
		return 7
	case ScalarUint:
		return 6
	default:
		return 0
	}
}

// OpaqueKind identifies a resource-handle type. Opaque values cannot be
// returned from functions and pass through parameters under restricted
// modifier sets.
type OpaqueKind uint8

const (
	OpaqueNone OpaqueKind = iota
	OpaqueShader
	OpaqueColorFilter
	OpaqueBlender
	OpaqueTexture2D
)

func (o OpaqueKind) Name() string {
	switch o {
	case OpaqueShader:
		return "shader"
	case OpaqueColorFilter:
		return "colorFilter"
	case OpaqueBlender:
		return "blender"
	case OpaqueTexture2D:
		return "texture2D"
	default:
		return "?"
	}
}

// IsEffectChild reports whether the handle names a nested effect
// (shader/colorFilter/blender). Effect-child parameters are restricted to
// builtin code.
func (o OpaqueKind) IsEffectChild() bool {
	switch o {
	case OpaqueShader, OpaqueColorFilter, OpaqueBlender:
		return true
	default:
		return false
	}
}

// Type is a compact descriptor for any supported type.
type Type struct {
	Kind    Kind
	Scalar  Scalar     // component scalar for scalar/vector/matrix kinds
	Columns uint8      // vector length; matrix column count
	Rows    uint8      // matrix row count
	Opaque  OpaqueKind // for KindOpaque
	Elem    TypeID     // for arrays
	Count   uint32     // array length
	Payload uint32     // side-array slot for structs and generic families
}

// Descriptor helpers ---------------------------------------------------------

// MakeScalar describes one of the five scalar types.
func MakeScalar(s Scalar) Type {
	return Type{Kind: KindScalar, Scalar: s}
}

// MakeVector describes a vector of 2 to 4 components.
func MakeVector(s Scalar, columns uint8) Type {
	return Type{Kind: KindVector, Scalar: s, Columns: columns}
}

// MakeMatrix describes a columns x rows matrix.
func MakeMatrix(s Scalar, columns, rows uint8) Type {
	return Type{Kind: KindMatrix, Scalar: s, Columns: columns, Rows: rows}
}

// MakeArray describes a fixed-size array of the element type.
func MakeArray(elem TypeID, count uint32) Type {
	return Type{Kind: KindArray, Elem: elem, Count: count}
}

// MakeOpaque describes a resource-handle type.
func MakeOpaque(o OpaqueKind) Type {
	return Type{Kind: KindOpaque, Opaque: o}
}
