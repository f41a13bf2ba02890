package sema

import (
	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// checkPermittedModifiers reports every flag outside the permitted set. One
// bad flag never masks the next, and a violation here does not abort the
// declaration; the caller keeps validating. Layout is not checked here:
// inferred builtin roles live there and must survive re-validation.
func (c *checker) checkPermittedModifiers(m ast.Modifiers, permitted ast.ModifierFlags) {
	for _, entry := range ast.ModifierOrder {
		if m.Flags.Has(entry.Flag) && !permitted.Has(entry.Flag) {
			c.report(diag.SemaModifierNotPermitted, m.Span, "'%s' is not permitted here", entry.Name)
		}
	}
}

// checkFunctionModifiers validates declaration-level modifiers. Permission
// violations are reported but tolerated; only the contradictory
// inline/noinline pair rejects the declaration.
func (c *checker) checkFunctionModifiers(m ast.Modifiers) bool {
	permitted := ast.ModifierHasSideEffects | ast.ModifierInline | ast.ModifierNoinline
	if c.cfg.BuiltinCode {
		permitted |= ast.ModifierES3
	}
	c.checkPermittedModifiers(m, permitted)
	if !m.Layout.IsEmpty() {
		// Functions never carry roles; nothing in the surface syntax can
		// set one, and inference only ever touches parameters.
		c.report(diag.SemaLayoutNotPermitted, m.Span,
			"layout qualifier '%s' is not permitted here", m.Layout.Builtin)
	}
	if m.Flags.Has(ast.ModifierInline | ast.ModifierNoinline) {
		c.report(diag.SemaInlineConflict, m.Span, "functions cannot be both 'inline' and 'noinline'")
		return false
	}
	return true
}

// checkReturnType enforces the return-type shape rules.
func (c *checker) checkReturnType(ref ast.TypeRef, id types.TypeID) bool {
	if c.types.IsArray(id) {
		c.report(diag.SemaReturnTypeArray, ref.Span,
			"functions may not return type '%s'", c.displayName(id))
		return false
	}
	if c.cfg.Strict && c.types.IsOrContainsArray(id) {
		c.report(diag.SemaReturnStructWithArray, ref.Span,
			"functions may not return structs containing arrays")
		return false
	}
	if !c.cfg.BuiltinCode && c.types.IsOpaque(c.types.ComponentType(id)) {
		c.report(diag.SemaReturnTypeOpaque, ref.Span,
			"functions may not return opaque type '%s'", c.displayName(id))
		return false
	}
	return true
}

// mainColorRoles is the two-slot table role inference assigns color
// parameters from, in declaration order.
var mainColorRoles = [...]ast.BuiltinID{ast.BuiltinInputColor, ast.BuiltinDestColor}

// checkParameters validates parameter modifiers, rejects effect-child
// parameters in user code, strips the redundant 'in' flag, and (for the
// entry point) infers builtin roles. The candidate slots are updated in
// place; each slot gets a fresh Modifiers value rather than a mutation of
// shared state.
func (c *checker) checkParameters(params []symbols.Param, isMain bool) bool {
	bt := c.types.Builtins()
	colorIndex := 0

	for i := range params {
		p := &params[i]

		permitted := ast.ModifierConst | ast.ModifierIn
		if !c.types.IsOpaque(p.Type) {
			permitted |= ast.ModifierOut
		}
		if c.types.IsTexture(p.Type) {
			permitted |= ast.ModifierReadonly | ast.ModifierWriteonly
		}
		c.checkPermittedModifiers(p.Modifiers, permitted)

		// Only the builtin declarations of 'sample' take nested-effect
		// handles. Other opaque types pass through fine; the restriction
		// is specific to child effects.
		if c.types.IsEffectChild(p.Type) && !c.cfg.BuiltinCode {
			c.report(diag.SemaEffectChildParam, p.Span,
				"parameters of type '%s' not allowed", c.displayName(p.Type))
			return false
		}

		m := p.Modifiers

		// 'in' on parameters is implicit, so `in float x` becomes `float x`.
		// This removes any ambiguity when matching a function by its
		// parameter types.
		if m.Flags&(ast.ModifierIn|ast.ModifierOut) == ast.ModifierIn {
			m.Flags &^= ast.ModifierIn | ast.ModifierOut
		}

		if isMain {
			kind := c.cfg.Kind
			switch {
			case kind.IsRuntimeEffect() && kind != ast.KindMeshVertex && kind != ast.KindMeshFragment:
				// The full signature is verified later. For now, a float2
				// parameter is taken as the coords, and a half4/float4
				// parameter as the input or destination color.
				if c.types.Matches(p.Type, bt.Float2) {
					m.Layout.Builtin = ast.BuiltinMainCoords
				} else if c.isColorType(p.Type) && colorIndex < len(mainColorRoles) {
					m.Layout.Builtin = mainColorRoles[colorIndex]
					colorIndex++
				}
			case kind.IsFragment():
				// Fragment programs may take a coords parameter so the same
				// source can double as a runtime effect.
				if c.types.Matches(p.Type, bt.Float2) {
					m.Layout.Builtin = ast.BuiltinMainCoords
				}
			}
		}

		p.Modifiers = m
	}
	return true
}

// isColorType reports whether id is one of the two 4-component color types.
func (c *checker) isColorType(id types.TypeID) bool {
	bt := c.types.Builtins()
	return c.types.Matches(id, bt.Half4) || c.types.Matches(id, bt.Float4)
}
