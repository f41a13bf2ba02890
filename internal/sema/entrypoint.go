package sema

import (
	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/source"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// checkMainSignature enforces the per-program-kind calling convention on
// 'main'. Roles were inferred by checkParameters; this pass only verifies
// the resulting shape and never coerces anything.
func (c *checker) checkMainSignature(sp source.Span, returnType types.TypeID, params []symbols.Param) bool {
	bt := c.types.Builtins()

	paramIsCoords := func(i int) bool {
		p := &params[i]
		return c.types.Matches(p.Type, bt.Float2) &&
			p.Modifiers.Flags == ast.ModifierNone &&
			p.Modifiers.Layout.Builtin == ast.BuiltinMainCoords
	}
	paramIsRoleColor := func(i int, role ast.BuiltinID) bool {
		p := &params[i]
		return c.isColorType(p.Type) &&
			p.Modifiers.Flags == ast.ModifierNone &&
			p.Modifiers.Layout.Builtin == role
	}
	paramIsInputColor := func(i int) bool { return paramIsRoleColor(i, ast.BuiltinInputColor) }
	paramIsDestColor := func(i int) bool { return paramIsRoleColor(i, ast.BuiltinDestColor) }

	paramIsInStruct := func(i int, name string) bool {
		p := &params[i]
		return c.types.IsStruct(p.Type) &&
			c.types.StructName(p.Type) == name &&
			p.Modifiers.Flags == ast.ModifierNone
	}
	paramIsOutVaryings := func(i int) bool {
		p := &params[i]
		return c.types.IsStruct(p.Type) &&
			c.types.StructName(p.Type) == "Varyings" &&
			p.Modifiers.Flags == ast.ModifierOut
	}
	paramIsOutColor := func(i int) bool {
		p := &params[i]
		return c.isColorType(p.Type) && p.Modifiers.Flags == ast.ModifierOut
	}

	switch kind := c.cfg.Kind; kind {
	case ast.KindColorFilter:
		// (half4|float4) main(half4|float4)
		if !c.isColorType(returnType) {
			c.report(diag.SemaEntryReturnType, sp, "'main' must return: 'float4' or 'half4'")
			return false
		}
		if !(len(params) == 1 && paramIsInputColor(0)) {
			c.report(diag.SemaEntryParams, sp, "'main' parameter must be 'float4' or 'half4'")
			return false
		}

	case ast.KindShader, ast.KindPrivateShader:
		// (half4|float4) main(float2)  -or-  (half4|float4) main(float2, half4|float4)
		if !c.isColorType(returnType) {
			c.report(diag.SemaEntryReturnType, sp, "'main' must return: 'float4' or 'half4'")
			return false
		}
		valid := (len(params) == 1 && paramIsCoords(0)) ||
			(len(params) == 2 && paramIsCoords(0) && paramIsInputColor(1))
		if !valid {
			c.report(diag.SemaEntryParams, sp, "'main' parameters must be (float2, (float4|half4)?)")
			return false
		}

	case ast.KindBlender:
		// (half4|float4) main(half4|float4, half4|float4)
		if !c.isColorType(returnType) {
			c.report(diag.SemaEntryReturnType, sp, "'main' must return: 'float4' or 'half4'")
			return false
		}
		if !(len(params) == 2 && paramIsInputColor(0) && paramIsDestColor(1)) {
			c.report(diag.SemaEntryParams, sp, "'main' parameters must be (float4|half4, float4|half4)")
			return false
		}

	case ast.KindMeshVertex:
		// float2 main(Attributes, out Varyings)
		if !c.types.Matches(returnType, bt.Float2) {
			c.report(diag.SemaEntryReturnType, sp, "'main' must return: 'float2'")
			return false
		}
		if !(len(params) == 2 && paramIsInStruct(0, "Attributes") && paramIsOutVaryings(1)) {
			c.report(diag.SemaEntryParams, sp, "'main' parameters must be (Attributes, out Varyings)")
			return false
		}

	case ast.KindMeshFragment:
		// (float2|void) main(Varyings)  -or-  (float2|void) main(Varyings, out half4|float4)
		if !c.types.Matches(returnType, bt.Float2) && !c.types.IsVoid(returnType) {
			c.report(diag.SemaEntryReturnType, sp, "'main' must return: 'float2' or 'void'")
			return false
		}
		valid := (len(params) == 1 && paramIsInStruct(0, "Varyings")) ||
			(len(params) == 2 && paramIsInStruct(0, "Varyings") && paramIsOutColor(1))
		if !valid {
			c.report(diag.SemaEntryParams, sp, "'main' parameters must be (Varyings, (out half4|float4)?)")
			return false
		}

	case ast.KindGeneric:
		// No rules apply here.

	case ast.KindFragment, ast.KindPipelineFragment:
		valid := len(params) == 0 || (len(params) == 1 && paramIsCoords(0))
		if !valid {
			c.report(diag.SemaEntryParams, sp, "shader 'main' must be main() or main(float2)")
			return false
		}

	case ast.KindVertex, ast.KindPipelineVertex, ast.KindCompute:
		if !c.types.IsVoid(returnType) {
			c.report(diag.SemaEntryReturnType, sp, "'main' must return 'void'")
			return false
		}
		if len(params) != 0 {
			c.report(diag.SemaEntryParams, sp, "shader 'main' must have zero parameters")
			return false
		}
	}
	return true
}
