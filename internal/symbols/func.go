package symbols

import (
	"gloss/internal/ast"
	"gloss/internal/intrinsics"
	"gloss/internal/source"
	"gloss/internal/types"
)

// Param is a validated function parameter. Once a declaration record owns
// a parameter list, no other declaration ever aliases it: on the reuse
// path the candidate's transient list is discarded and the existing
// record's list stays authoritative.
type Param struct {
	Modifiers ast.Modifiers
	Type      types.TypeID
	Name      string // "" for anonymous parameters
	Span      source.Span
}

// FunctionDeclaration is the validated, immutable symbol record for one
// function signature. It is created exactly once, by overload resolution,
// and never changes afterward except for the deferred HasDefinition flag.
type FunctionDeclaration struct {
	Name          string
	Span          source.Span
	Modifiers     ast.Modifiers
	Params        []Param
	ReturnType    types.TypeID
	Builtin       bool
	IsEntryPoint  bool
	Intrinsic     intrinsics.Kind
	HasDefinition bool
}

// NewFunctionDeclaration fills in the derived fields: entry-point status
// from the name, and the intrinsic tag for builtin declarations only.
func NewFunctionDeclaration(
	span source.Span,
	modifiers ast.Modifiers,
	name string,
	params []Param,
	returnType types.TypeID,
	builtin bool,
) FunctionDeclaration {
	tag := intrinsics.NotIntrinsic
	if builtin {
		tag = intrinsics.Lookup(name)
	}
	return FunctionDeclaration{
		Name:         name,
		Span:         span,
		Modifiers:    modifiers,
		Params:       params,
		ReturnType:   returnType,
		Builtin:      builtin,
		IsEntryPoint: name == "main",
		Intrinsic:    tag,
	}
}

// IsIntrinsic reports whether the declaration resolved to an intrinsic.
func (fd *FunctionDeclaration) IsIntrinsic() bool {
	return fd.Intrinsic != intrinsics.NotIntrinsic
}
