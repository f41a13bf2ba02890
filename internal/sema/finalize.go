package sema

import (
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// FinalizeCallTypes resolves a declaration's possibly generic parameter and
// return types against the concrete argument types at a call site. The
// first generic parameter locks the family index for the whole call
// (narrowing allowed there); later generic parameters reuse the locked
// index as-is. A generic return type without any generic parameter cannot
// be resolved. ok=false means the declaration is not viable for these
// arguments; that is a candidacy answer, not a language error.
//
// Exposed for later call-resolution passes; expression checking itself is
// out of scope here.
func FinalizeCallTypes(
	in *types.Interner,
	fd *symbols.FunctionDeclaration,
	args []types.TypeID,
) (paramTypes []types.TypeID, returnType types.TypeID, ok bool) {
	if in == nil || fd == nil || len(args) != len(fd.Params) {
		return nil, types.NoTypeID, false
	}

	paramTypes = make([]types.TypeID, 0, len(args))
	genericIndex := -1
	for i := range fd.Params {
		paramType := fd.Params[i].Type
		// Non-generic parameters are final as-is.
		if !in.IsGeneric(paramType) {
			paramTypes = append(paramTypes, paramType)
			continue
		}
		// The first generic parameter locks the index: find float3 here and
		// every later family slot in the call is assumed to be float3.
		if genericIndex == -1 {
			genericIndex = findGenericIndex(in, args[i], paramType, true)
			if genericIndex == -1 {
				// Not a match for any family candidate; the declaration is
				// not viable at all.
				return nil, types.NoTypeID, false
			}
		}
		paramTypes = append(paramTypes, in.CoercibleTypes(paramType)[genericIndex])
	}

	returnType = fd.ReturnType
	if in.IsGeneric(returnType) {
		if genericIndex == -1 {
			// A generic return with no generic parameter has nothing to
			// lock the index.
			return nil, types.NoTypeID, false
		}
		returnType = in.CoercibleTypes(returnType)[genericIndex]
	}
	return paramTypes, returnType, true
}
