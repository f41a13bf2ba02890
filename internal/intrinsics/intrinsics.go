// Package intrinsics holds the immutable table of builtin function names.
// Builtin declarations resolve their intrinsic kind once, at construction;
// user declarations are never intrinsics. The table is process-wide and
// read-only after init.
package intrinsics

// Kind identifies one intrinsic function, or NotIntrinsic.
type Kind uint16

const (
	NotIntrinsic Kind = iota
	Abs
	Acos
	Acosh
	All
	Any
	Asin
	Asinh
	Atan
	Atanh
	Ceil
	Clamp
	Cos
	Cosh
	Cross
	Degrees
	Determinant
	DFdx
	DFdy
	Distance
	Dot
	Equal
	Exp
	Exp2
	Faceforward
	FloatBitsToInt
	FloatBitsToUint
	Floor
	Fract
	Fwidth
	GreaterThan
	GreaterThanEqual
	IntBitsToFloat
	Inverse
	Inversesqrt
	Length
	LessThan
	LessThanEqual
	Log
	Log2
	MatrixCompMult
	Max
	Min
	Mix
	Mod
	Normalize
	Not
	NotEqual
	Pow
	Radians
	Reflect
	Refract
	Round
	RoundEven
	Sample
	Saturate
	Sign
	Sin
	Sinh
	Smoothstep
	Sqrt
	Step
	Tan
	Tanh
	Transpose
	Trunc
	UintBitsToFloat
	Unpremul

	kindCount
)

var kindNames = [kindCount]string{
	NotIntrinsic:     "",
	Abs:              "abs",
	Acos:             "acos",
	Acosh:            "acosh",
	All:              "all",
	Any:              "any",
	Asin:             "asin",
	Asinh:            "asinh",
	Atan:             "atan",
	Atanh:            "atanh",
	Ceil:             "ceil",
	Clamp:            "clamp",
	Cos:              "cos",
	Cosh:             "cosh",
	Cross:            "cross",
	Degrees:          "degrees",
	Determinant:      "determinant",
	DFdx:             "dFdx",
	DFdy:             "dFdy",
	Distance:         "distance",
	Dot:              "dot",
	Equal:            "equal",
	Exp:              "exp",
	Exp2:             "exp2",
	Faceforward:      "faceforward",
	FloatBitsToInt:   "floatBitsToInt",
	FloatBitsToUint:  "floatBitsToUint",
	Floor:            "floor",
	Fract:            "fract",
	Fwidth:           "fwidth",
	GreaterThan:      "greaterThan",
	GreaterThanEqual: "greaterThanEqual",
	IntBitsToFloat:   "intBitsToFloat",
	Inverse:          "inverse",
	Inversesqrt:      "inversesqrt",
	Length:           "length",
	LessThan:         "lessThan",
	LessThanEqual:    "lessThanEqual",
	Log:              "log",
	Log2:             "log2",
	MatrixCompMult:   "matrixCompMult",
	Max:              "max",
	Min:              "min",
	Mix:              "mix",
	Mod:              "mod",
	Normalize:        "normalize",
	Not:              "not",
	NotEqual:         "notEqual",
	Pow:              "pow",
	Radians:          "radians",
	Reflect:          "reflect",
	Refract:          "refract",
	Round:            "round",
	RoundEven:        "roundEven",
	Sample:           "sample",
	Saturate:         "saturate",
	Sign:             "sign",
	Sin:              "sin",
	Sinh:             "sinh",
	Smoothstep:       "smoothstep",
	Sqrt:             "sqrt",
	Step:             "step",
	Tan:              "tan",
	Tanh:             "tanh",
	Transpose:        "transpose",
	Trunc:            "trunc",
	UintBitsToFloat:  "uintBitsToFloat",
	Unpremul:         "unpremul",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := Kind(1); k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return ""
}

// Lookup resolves a builtin function name to its intrinsic kind. A leading
// '$' namespace marker is stripped first, so `$mix` and `mix` are the same
// intrinsic. Unknown names return NotIntrinsic.
func Lookup(name string) Kind {
	if len(name) > 0 && name[0] == '$' {
		name = name[1:]
	}
	if k, ok := byName[name]; ok {
		return k
	}
	return NotIntrinsic
}
