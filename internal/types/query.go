package types

// Matches reports structural identity. Interning guarantees structural
// types share one TypeID, so identity is ID equality; nominal types match
// only themselves.
func (in *Interner) Matches(a, b TypeID) bool {
	return a != NoTypeID && a == b
}

func (in *Interner) kindOf(id TypeID) Kind {
	tt, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return tt.Kind
}

// IsVoid reports whether id is the void type.
func (in *Interner) IsVoid(id TypeID) bool {
	return in.kindOf(id) == KindVoid
}

// IsGeneric reports whether id names a bounded generic family.
func (in *Interner) IsGeneric(id TypeID) bool {
	return in.kindOf(id) == KindGeneric
}

// IsArray reports whether id is a fixed-size array type.
func (in *Interner) IsArray(id TypeID) bool {
	return in.kindOf(id) == KindArray
}

// IsStruct reports whether id is a nominal struct type.
func (in *Interner) IsStruct(id TypeID) bool {
	return in.kindOf(id) == KindStruct
}

// IsOpaque reports whether id is a resource-handle type.
func (in *Interner) IsOpaque(id TypeID) bool {
	return in.kindOf(id) == KindOpaque
}

// IsEffectChild reports whether id is shader, colorFilter or blender.
func (in *Interner) IsEffectChild(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindOpaque && tt.Opaque.IsEffectChild()
}

// IsTexture reports whether id is the texture2D handle type.
func (in *Interner) IsTexture(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindOpaque && tt.Opaque == OpaqueTexture2D
}

// ComponentType returns the scalar behind a vector or matrix, the element
// type of an array, and the type itself otherwise.
func (in *Interner) ComponentType(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok {
		return NoTypeID
	}
	switch tt.Kind {
	case KindVector, KindMatrix:
		return in.scalars[tt.Scalar]
	case KindArray:
		return tt.Elem
	default:
		return id
	}
}

// IsOrContainsArray reports whether id is an array or a struct holding an
// array anywhere in its fields.
func (in *Interner) IsOrContainsArray(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindArray:
		return true
	case KindStruct:
		info := in.structInfo(id)
		if info == nil {
			return false
		}
		for _, f := range info.Fields {
			if in.IsOrContainsArray(f.Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
