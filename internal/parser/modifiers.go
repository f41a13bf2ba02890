package parser

import (
	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/token"
)

// parseModifiers consumes a possibly-empty run of modifier keywords.
// Repeating a modifier is a syntax error; parsing continues so the rest of
// the declaration can still be checked.
func (p *Parser) parseModifiers() ast.Modifiers {
	var mods ast.Modifiers
	for {
		tok := p.lx.Peek()
		flag, ok := modifierFlag(tok)
		if !ok {
			return mods
		}
		p.advance()
		if mods.Flags.Has(flag) {
			p.report(diag.SynDuplicateModifier, tok.Span, "duplicate modifier '"+tok.Text+"'")
			continue
		}
		mods.Flags |= flag
		if mods.Span.Empty() {
			mods.Span = tok.Span
		} else {
			mods.Span = mods.Span.Cover(tok.Span)
		}
	}
}

func modifierFlag(tok token.Token) (ast.ModifierFlags, bool) {
	switch tok.Kind {
	case token.KwConst:
		return ast.ModifierConst, true
	case token.KwIn:
		return ast.ModifierIn, true
	case token.KwOut:
		return ast.ModifierOut, true
	case token.KwUniform:
		return ast.ModifierUniform, true
	case token.KwInline:
		return ast.ModifierInline, true
	case token.KwNoinline:
		return ast.ModifierNoinline, true
	case token.KwReadonly:
		return ast.ModifierReadonly, true
	case token.KwWriteonly:
		return ast.ModifierWriteonly, true
	case token.KwHasSideEffects:
		return ast.ModifierHasSideEffects, true
	case token.Ident:
		if tok.Text == "$es3" {
			return ast.ModifierES3, true
		}
	}
	return ast.ModifierNone, false
}
