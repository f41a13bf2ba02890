package types

import (
	"fmt"
	"strconv"
)

// DisplayName returns the user-facing spelling of a type, as it would
// appear in source ("half4", "float[4]", a struct's declared name).
func DisplayName(typesIn *Interner, id TypeID) string {
	return displayDepth(typesIn, id, 0)
}

func displayDepth(typesIn *Interner, id TypeID, depth int) string {
	if typesIn == nil || id == NoTypeID {
		return "?"
	}
	if depth > 6 {
		return "..."
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindVoid:
		return "void"
	case KindScalar:
		return tt.Scalar.Name()
	case KindVector:
		return fmt.Sprintf("%s%d", tt.Scalar.Name(), tt.Columns)
	case KindMatrix:
		return fmt.Sprintf("%s%dx%d", tt.Scalar.Name(), tt.Columns, tt.Rows)
	case KindArray:
		return fmt.Sprintf("%s[%d]", displayDepth(typesIn, tt.Elem, depth+1), tt.Count)
	case KindStruct:
		if name := typesIn.StructName(id); name != "" {
			return name
		}
		return "?"
	case KindOpaque:
		return tt.Opaque.Name()
	case KindGeneric:
		if name := typesIn.GenericName(id); name != "" {
			return name
		}
		return "?"
	default:
		return "?"
	}
}

// AbbreviatedName returns the compact type spelling used inside mangled
// function names: scalars shrink to one character, vectors and matrices
// append their dimensions, arrays prefix "a" plus the length.
func AbbreviatedName(typesIn *Interner, id TypeID) string {
	return abbrevDepth(typesIn, id, 0)
}

func abbrevDepth(typesIn *Interner, id TypeID, depth int) string {
	if typesIn == nil || id == NoTypeID || depth > 6 {
		return "?"
	}
	tt, ok := typesIn.Lookup(id)
	if !ok {
		return "?"
	}
	switch tt.Kind {
	case KindVoid:
		return "v"
	case KindScalar:
		return tt.Scalar.Abbrev()
	case KindVector:
		return tt.Scalar.Abbrev() + strconv.Itoa(int(tt.Columns))
	case KindMatrix:
		return tt.Scalar.Abbrev() + strconv.Itoa(int(tt.Columns)) + strconv.Itoa(int(tt.Rows))
	case KindArray:
		return "a" + strconv.FormatUint(uint64(tt.Count), 10) + abbrevDepth(typesIn, tt.Elem, depth+1)
	case KindStruct:
		if name := typesIn.StructName(id); name != "" {
			return name
		}
		return "?"
	case KindOpaque:
		return tt.Opaque.Name()
	case KindGeneric:
		if name := typesIn.GenericName(id); name != "" {
			return name
		}
		return "?"
	default:
		return "?"
	}
}
