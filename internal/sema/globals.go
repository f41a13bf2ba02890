package sema

import (
	"fmt"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/symbols"
)

// checkGlobalDecl validates a program-level variable declaration. Globals
// carry data (uniforms, constants) or effect-child handles; the latter must
// be uniform so the host environment can bind them.
func (c *checker) checkGlobalDecl(d *ast.GlobalDecl) {
	if !c.cfg.BuiltinCode && isPrivateName(d.Name) {
		c.report(diag.SemaPrivateName, d.NameSpan, "'%s' is private", d.Name)
		return
	}

	c.checkPermittedModifiers(d.Modifiers, ast.ModifierConst|ast.ModifierUniform)

	id, ok := c.resolveTypeRef(d.Type)
	if !ok {
		return
	}
	if c.types.IsVoid(id) {
		c.report(diag.SemaVoidVariable, d.Span, "variables of type 'void' are not allowed")
		return
	}
	if c.types.IsGeneric(id) {
		// Generic families only describe builtin signatures; a variable
		// slot needs one concrete type.
		c.report(diag.SemaUnknownType, d.Type.NameSpan,
			"variables may not have generic type '%s'", c.displayName(id))
		return
	}
	if c.types.IsOpaque(id) && !d.Modifiers.Flags.Has(ast.ModifierUniform) {
		c.report(diag.SemaOpaqueNeedsUniform, d.Span,
			"variables of type '%s' must be uniform", c.displayName(id))
		return
	}

	if prev := c.ownSymbol(d.Name); prev != nil {
		c.reportNoted(diag.SemaSymbolRedefined, d.NameSpan,
			prev.Span, fmt.Sprintf("previous definition of '%s' is here", d.Name),
			"symbol '%s' was already defined", d.Name)
		return
	}

	c.syms.Insert(symbols.Symbol{
		Name: d.Name,
		Kind: symbols.SymbolVar,
		Span: d.NameSpan,
		Type: id,
	})
}
