package sema

import (
	"fmt"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/source"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// modifiersEqual compares the semantic content of two modifier values.
// Spans are position info, not identity.
func modifiersEqual(a, b ast.Modifiers) bool {
	return a.Flags == b.Flags && a.Layout == b.Layout
}

// findExistingDeclaration walks the overload chain for the candidate's name
// in declaration order (builtin declarations first). ok=false means a hard
// error was reported and the candidate is dropped; ok=true with an invalid
// FuncID means the candidate is genuinely new.
func (c *checker) findExistingDeclaration(
	d *ast.FuncDecl,
	params []symbols.Param,
	returnType types.TypeID,
) (existing symbols.FuncID, ok bool) {
	for _, id := range c.syms.Lookup(d.Name) {
		sym := c.syms.Symbol(id)
		if sym == nil {
			continue
		}
		if sym.Kind != symbols.SymbolFunction {
			c.reportNoted(diag.SemaSymbolRedefined, d.Span,
				sym.Span, fmt.Sprintf("previous definition of '%s' is here", d.Name),
				"symbol '%s' was already defined", d.Name)
			return symbols.NoFuncID, false
		}
		other := c.syms.Func(sym.Func)
		if other == nil {
			continue
		}
		if !c.parametersMatch(params, other.Params) {
			continue
		}
		if !c.typeGenericallyMatches(returnType, other.ReturnType) {
			// Describe the rejected candidate as if it had been accepted,
			// so both signatures appear verbatim in the message.
			invalid := symbols.NewFunctionDeclaration(
				d.Span, other.Modifiers, d.Name, params, returnType, c.cfg.BuiltinCode)
			c.report(diag.SemaReturnTypeOnlyDiffers, d.ReturnType.Span,
				"functions '%s' and '%s' differ only in return type",
				invalid.Description(c.types), other.Description(c.types))
			return symbols.NoFuncID, false
		}
		for i := range params {
			if !modifiersEqual(params[i].Modifiers, other.Params[i].Modifiers) {
				c.report(diag.SemaParamModifierMismatch, params[i].Span,
					"modifiers on parameter %d differ between declaration and definition", i+1)
				return symbols.NoFuncID, false
			}
		}
		if other.HasDefinition || other.Builtin {
			note, noteMsg := other.Span, "previous definition is here"
			if other.Builtin {
				// Builtin spans live in the prelude's file set; the
				// description in the message is all we can point at.
				note, noteMsg = source.Span{}, ""
			}
			c.reportNoted(diag.SemaDuplicateDefinition, d.Span, note, noteMsg,
				"duplicate definition of %s", other.Description(c.types))
			return symbols.NoFuncID, false
		}
		return sym.Func, true
	}
	return symbols.NoFuncID, true
}

// convertFunction runs the whole declaration pipeline: signature checks,
// entry-point convention, overload resolution, then registration. A failed
// candidate never partially registers; on reuse the candidate's parameter
// list is discarded and the existing record stays authoritative.
func (c *checker) convertFunction(d *ast.FuncDecl) (symbols.FuncID, bool) {
	isMain := d.Name == "main"

	if !c.cfg.BuiltinCode && isPrivateName(d.Name) {
		c.report(diag.SemaPrivateName, d.NameSpan, "'%s' is private", d.Name)
		return symbols.NoFuncID, false
	}

	returnType, rtOK := c.resolveTypeRef(d.ReturnType)
	params, paramsOK := c.resolveParams(d.Params)
	if !rtOK || !paramsOK {
		return symbols.NoFuncID, false
	}

	if !c.checkFunctionModifiers(d.Modifiers) ||
		!c.checkReturnType(d.ReturnType, returnType) ||
		!c.checkParameters(params, isMain) ||
		(isMain && !c.checkMainSignature(d.Span, returnType, params)) {
		return symbols.NoFuncID, false
	}

	existing, ok := c.findExistingDeclaration(d, params, returnType)
	if !ok {
		return symbols.NoFuncID, false
	}

	if existing.IsValid() {
		// Prototype re-declaration of a known signature: the chain walk
		// guarantees the record has no body yet and is not builtin.
		if d.HasBody {
			c.syms.AttachDefinition(existing)
		}
		return existing, true
	}

	fd := symbols.NewFunctionDeclaration(d.Span, d.Modifiers, d.Name, params, returnType, c.cfg.BuiltinCode)
	fd.HasDefinition = d.HasBody
	id := c.syms.NewFunc(fd)
	c.syms.Insert(symbols.Symbol{
		Name: d.Name,
		Kind: symbols.SymbolFunction,
		Span: d.NameSpan,
		Func: id,
	})
	return id, true
}
