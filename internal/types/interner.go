package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for every type known at interner construction.
type Builtins struct {
	Invalid TypeID
	Void    TypeID

	Float TypeID
	Half  TypeID
	Int   TypeID
	Uint  TypeID
	Bool  TypeID

	Float2 TypeID
	Float3 TypeID
	Float4 TypeID
	Half2  TypeID
	Half3  TypeID
	Half4  TypeID
	Int2   TypeID
	Int3   TypeID
	Int4   TypeID
	Uint2  TypeID
	Uint3  TypeID
	Uint4  TypeID
	Bool2  TypeID
	Bool3  TypeID
	Bool4  TypeID

	Float2x2 TypeID
	Float3x3 TypeID
	Float4x4 TypeID
	Half2x2  TypeID
	Half3x3  TypeID
	Half4x4  TypeID

	Shader      TypeID
	ColorFilter TypeID
	Blender     TypeID
	Texture2D   TypeID

	GenType    TypeID
	GenHType   TypeID
	GenIType   TypeID
	GenUType   TypeID
	GenBType   TypeID
	Vec        TypeID
	HVec       TypeID
	IVec       TypeID
	BVec       TypeID
	Mat        TypeID
	HMat       TypeID
	SquareMat  TypeID
	SquareHMat TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Nominal types (structs, generic families) are registered rather than
// interned: each registration gets a fresh slot.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	names    map[string]TypeID
	builtins Builtins
	structs  []StructInfo
	generics []GenericInfo
	scalars  [6]TypeID // indexed by Scalar
}

// NewInterner constructs an interner seeded with the full builtin type set.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 96),
		names: make(map[string]TypeID, 96),
	}
	in.structs = append(in.structs, StructInfo{})   // reserve 0 as invalid sentinel
	in.generics = append(in.generics, GenericInfo{})

	b := &in.builtins
	b.Invalid = in.internRaw(Type{Kind: KindInvalid})
	b.Void = in.registerNamed("void", Type{Kind: KindVoid})

	b.Float = in.registerScalar(ScalarFloat)
	b.Half = in.registerScalar(ScalarHalf)
	b.Int = in.registerScalar(ScalarInt)
	b.Uint = in.registerScalar(ScalarUint)
	b.Bool = in.registerScalar(ScalarBool)

	b.Float2 = in.registerNamed("float2", MakeVector(ScalarFloat, 2))
	b.Float3 = in.registerNamed("float3", MakeVector(ScalarFloat, 3))
	b.Float4 = in.registerNamed("float4", MakeVector(ScalarFloat, 4))
	b.Half2 = in.registerNamed("half2", MakeVector(ScalarHalf, 2))
	b.Half3 = in.registerNamed("half3", MakeVector(ScalarHalf, 3))
	b.Half4 = in.registerNamed("half4", MakeVector(ScalarHalf, 4))
	b.Int2 = in.registerNamed("int2", MakeVector(ScalarInt, 2))
	b.Int3 = in.registerNamed("int3", MakeVector(ScalarInt, 3))
	b.Int4 = in.registerNamed("int4", MakeVector(ScalarInt, 4))
	b.Uint2 = in.registerNamed("uint2", MakeVector(ScalarUint, 2))
	b.Uint3 = in.registerNamed("uint3", MakeVector(ScalarUint, 3))
	b.Uint4 = in.registerNamed("uint4", MakeVector(ScalarUint, 4))
	b.Bool2 = in.registerNamed("bool2", MakeVector(ScalarBool, 2))
	b.Bool3 = in.registerNamed("bool3", MakeVector(ScalarBool, 3))
	b.Bool4 = in.registerNamed("bool4", MakeVector(ScalarBool, 4))

	b.Float2x2 = in.registerNamed("float2x2", MakeMatrix(ScalarFloat, 2, 2))
	b.Float3x3 = in.registerNamed("float3x3", MakeMatrix(ScalarFloat, 3, 3))
	b.Float4x4 = in.registerNamed("float4x4", MakeMatrix(ScalarFloat, 4, 4))
	b.Half2x2 = in.registerNamed("half2x2", MakeMatrix(ScalarHalf, 2, 2))
	b.Half3x3 = in.registerNamed("half3x3", MakeMatrix(ScalarHalf, 3, 3))
	b.Half4x4 = in.registerNamed("half4x4", MakeMatrix(ScalarHalf, 4, 4))

	b.Shader = in.registerNamed("shader", MakeOpaque(OpaqueShader))
	b.ColorFilter = in.registerNamed("colorFilter", MakeOpaque(OpaqueColorFilter))
	b.Blender = in.registerNamed("blender", MakeOpaque(OpaqueBlender))
	b.Texture2D = in.registerNamed("texture2D", MakeOpaque(OpaqueTexture2D))

	// Family order is the language's priority order: genericIndex takes the
	// first coercible candidate.
	b.GenType = in.registerGeneric("$genType", []TypeID{b.Float, b.Float2, b.Float3, b.Float4})
	b.GenHType = in.registerGeneric("$genHType", []TypeID{b.Half, b.Half2, b.Half3, b.Half4})
	b.GenIType = in.registerGeneric("$genIType", []TypeID{b.Int, b.Int2, b.Int3, b.Int4})
	b.GenUType = in.registerGeneric("$genUType", []TypeID{b.Uint, b.Uint2, b.Uint3, b.Uint4})
	b.GenBType = in.registerGeneric("$genBType", []TypeID{b.Bool, b.Bool2, b.Bool3, b.Bool4})
	b.Vec = in.registerGeneric("$vec", []TypeID{b.Float2, b.Float3, b.Float4})
	b.HVec = in.registerGeneric("$hvec", []TypeID{b.Half2, b.Half3, b.Half4})
	b.IVec = in.registerGeneric("$ivec", []TypeID{b.Int2, b.Int3, b.Int4})
	b.BVec = in.registerGeneric("$bvec", []TypeID{b.Bool2, b.Bool3, b.Bool4})
	b.Mat = in.registerGeneric("$mat", []TypeID{b.Float2x2, b.Float3x3, b.Float4x4})
	b.HMat = in.registerGeneric("$hmat", []TypeID{b.Half2x2, b.Half3x3, b.Half4x4})
	b.SquareMat = in.registerGeneric("$squareMat", []TypeID{b.Float2x2, b.Float3x3, b.Float4x4})
	b.SquareHMat = in.registerGeneric("$squareHMat", []TypeID{b.Half2x2, b.Half3x3, b.Half4x4})

	return in
}

// Builtins returns TypeIDs for the builtin type set.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// ByName resolves a builtin type name ("half4", "$genType"). Struct names
// are not here; they resolve through the symbol table.
func (in *Interner) ByName(name string) (TypeID, bool) {
	id, ok := in.names[name]
	return id, ok
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	key := typeKey(t)
	in.index[key] = id
	return id
}

func (in *Interner) registerNamed(name string, t Type) TypeID {
	id := in.Intern(t)
	in.names[name] = id
	return id
}

func (in *Interner) registerScalar(s Scalar) TypeID {
	id := in.registerNamed(s.Name(), MakeScalar(s))
	in.scalars[s] = id
	return id
}

// Size reports how many descriptors the interner holds. The builtin
// prelude uses it to assert it interned nothing beyond the seeded set.
func (in *Interner) Size() int {
	return len(in.types)
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

type typeKey struct {
	Kind    Kind
	Scalar  Scalar
	Columns uint8
	Rows    uint8
	Opaque  OpaqueKind
	Elem    TypeID
	Count   uint32
	Payload uint32
}
