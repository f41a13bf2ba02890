package sema

import (
	"math"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// resolveTypeRef turns a syntactic type reference into a TypeID. Builtin
// names resolve through the interner, struct names through the symbol
// table. Failures are reported and return ok=false; the caller drops the
// enclosing declaration.
func (c *checker) resolveTypeRef(ref ast.TypeRef) (types.TypeID, bool) {
	if !c.cfg.BuiltinCode && isPrivateName(ref.Name) {
		c.report(diag.SemaPrivateName, ref.NameSpan, "'%s' is private", ref.Name)
		return types.NoTypeID, false
	}

	id, ok := c.types.ByName(ref.Name)
	if !ok {
		id, ok = c.lookupStructType(ref.Name)
	}
	if !ok {
		c.report(diag.SemaUnknownType, ref.NameSpan, "no type named '%s'", ref.Name)
		return types.NoTypeID, false
	}

	if !ref.IsArray {
		return id, true
	}
	return c.foldArrayType(ref, id)
}

// lookupStructType finds a type symbol bound to name. The newest binding
// wins, matching shadowing order.
func (c *checker) lookupStructType(name string) (types.TypeID, bool) {
	ids := c.syms.Lookup(name)
	for i := len(ids) - 1; i >= 0; i-- {
		sym := c.syms.Symbol(ids[i])
		if sym != nil && sym.Kind == symbols.SymbolType {
			return sym.Type, true
		}
	}
	return types.NoTypeID, false
}

// foldArrayType validates the suffix and interns the array type.
func (c *checker) foldArrayType(ref ast.TypeRef, elem types.TypeID) (types.TypeID, bool) {
	if ref.Size < 1 {
		c.report(diag.SemaBadArraySize, ref.SizeSpan, "array size must be positive")
		return types.NoTypeID, false
	}
	if ref.Size > math.MaxUint32 {
		c.report(diag.SemaBadArraySize, ref.SizeSpan, "array size is too large")
		return types.NoTypeID, false
	}
	switch {
	case c.types.IsVoid(elem):
		c.report(diag.SemaBadArrayElement, ref.Span, "type 'void' may not be used in an array")
		return types.NoTypeID, false
	case c.types.IsOpaque(elem):
		c.report(diag.SemaBadArrayElement, ref.Span,
			"opaque type '%s' may not be used in an array", c.displayName(elem))
		return types.NoTypeID, false
	case c.types.IsGeneric(elem):
		c.report(diag.SemaBadArrayElement, ref.Span,
			"generic type '%s' may not be used in an array", c.displayName(elem))
		return types.NoTypeID, false
	}
	return c.types.Intern(types.MakeArray(elem, uint32(ref.Size))), true
}

// resolveParams resolves every parameter's type, reporting each failure so
// one bad parameter does not hide the next. Any failure drops the function.
func (c *checker) resolveParams(list []ast.Param) ([]symbols.Param, bool) {
	if len(list) == 0 {
		return nil, true
	}
	out := make([]symbols.Param, 0, len(list))
	allOK := true
	for i := range list {
		p := &list[i]
		id, ok := c.resolveTypeRef(p.Type)
		if !ok {
			allOK = false
			continue
		}
		out = append(out, symbols.Param{
			Modifiers: p.Modifiers,
			Type:      id,
			Name:      p.Name,
			Span:      p.Span,
		})
	}
	if !allOK {
		return nil, false
	}
	return out, true
}
