package sema

import (
	"fmt"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// checkStructDecl registers a nominal struct type. Field resolution happens
// before the name is inserted, so a struct cannot reference itself. A
// struct with any bad field is dropped whole rather than registered with
// holes.
func (c *checker) checkStructDecl(d *ast.StructDecl) {
	if !c.cfg.BuiltinCode && isPrivateName(d.Name) {
		c.report(diag.SemaPrivateName, d.NameSpan, "'%s' is private", d.Name)
		return
	}
	if prev := c.ownSymbol(d.Name); prev != nil {
		c.reportNoted(diag.SemaSymbolRedefined, d.NameSpan,
			prev.Span, fmt.Sprintf("previous definition of '%s' is here", d.Name),
			"symbol '%s' was already defined", d.Name)
		return
	}
	if len(d.Fields) == 0 {
		c.report(diag.SemaEmptyStruct, d.Span, "struct '%s' must contain at least one field", d.Name)
		return
	}

	fields := make([]types.StructField, 0, len(d.Fields))
	seen := make(map[string]int, len(d.Fields))
	allOK := true
	for i := range d.Fields {
		f := &d.Fields[i]
		if prev, dup := seen[f.Name]; dup {
			c.reportNoted(diag.SemaDuplicateStructField, f.NameSpan,
				d.Fields[prev].NameSpan, fmt.Sprintf("field '%s' was first declared here", f.Name),
				"field '%s' was already defined in struct '%s'", f.Name, d.Name)
			allOK = false
			continue
		}
		seen[f.Name] = i

		ft, ok := c.resolveTypeRef(f.Type)
		if !ok {
			allOK = false
			continue
		}
		switch {
		case c.types.IsVoid(ft):
			c.report(diag.SemaVoidVariable, f.Span, "type 'void' is not permitted in a struct")
			allOK = false
			continue
		case c.types.IsOpaque(ft):
			c.report(diag.SemaOpaqueStructField, f.Span,
				"opaque type '%s' is not permitted in a struct", c.displayName(ft))
			allOK = false
			continue
		}
		fields = append(fields, types.StructField{Name: f.Name, Type: ft})
	}
	if !allOK {
		return
	}

	id := c.types.RegisterStruct(d.Name, d.NameSpan)
	c.types.SetStructFields(id, fields)
	c.syms.Insert(symbols.Symbol{
		Name: d.Name,
		Kind: symbols.SymbolType,
		Span: d.NameSpan,
		Type: id,
	})
}

// ownSymbol returns the newest same-scope symbol bound to name, if any.
// Root-table bindings are shadowable and deliberately not consulted.
func (c *checker) ownSymbol(name string) *symbols.Symbol {
	ids := c.syms.LookupOwn(name)
	if len(ids) == 0 {
		return nil
	}
	return c.syms.Symbol(ids[len(ids)-1])
}
