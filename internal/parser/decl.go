package parser

import (
	"strconv"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/token"
)

// parseStructDecl parses `struct Name { field* } ;?`.
func (p *Parser) parseStructDecl() (ast.Decl, bool) {
	kw := p.advance() // struct

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected struct name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after struct name"); !ok {
		return nil, false
	}

	decl := &ast.StructDecl{
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
	}
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynUnclosedBrace, "unterminated struct body")
			return nil, false
		}
		field, ok := p.parseField()
		if !ok {
			p.resyncField()
			continue
		}
		decl.Fields = append(decl.Fields, field)
	}
	closeTok := p.advance() // }
	decl.Span = kw.Span.Cover(closeTok.Span)
	if p.at(token.Semicolon) {
		end := p.advance()
		decl.Span = decl.Span.Cover(end.Span)
	}
	return decl, true
}

// parseField parses one `type name [N]? ;` struct member.
func (p *Parser) parseField() (ast.Field, bool) {
	typeRef, ok := p.parseTypeRef()
	if !ok {
		return ast.Field{}, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected field name")
	if !ok {
		return ast.Field{}, false
	}
	if !p.foldArraySuffix(&typeRef) {
		return ast.Field{}, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after struct field")
	if !ok {
		return ast.Field{}, false
	}
	return ast.Field{
		Type:     typeRef,
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
		Span:     typeRef.Span.Cover(semi.Span),
	}, true
}

// resyncField skips to the next ';' inside a struct body or stops at '}'.
func (p *Parser) resyncField() {
	for {
		switch p.lx.Peek().Kind {
		case token.EOF, token.RBrace:
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

// parseGlobalOrFunc parses `modifiers type name ...` and decides between a
// global variable and a function by the token after the name.
func (p *Parser) parseGlobalOrFunc() (ast.Decl, bool) {
	mods := p.parseModifiers()

	typeRef, ok := p.parseTypeRef()
	if !ok {
		return nil, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected declaration name")
	if !ok {
		return nil, false
	}

	if p.at(token.LParen) {
		return p.parseFuncRest(mods, typeRef, nameTok)
	}
	return p.parseGlobalRest(mods, typeRef, nameTok)
}

// parseGlobalRest finishes `modifiers type name [N]? ;`.
func (p *Parser) parseGlobalRest(mods ast.Modifiers, typeRef ast.TypeRef, nameTok token.Token) (ast.Decl, bool) {
	if !p.foldArraySuffix(&typeRef) {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after declaration")
	if !ok {
		return nil, false
	}
	start := typeRef.Span
	if !mods.Span.Empty() {
		start = mods.Span
	}
	return &ast.GlobalDecl{
		Modifiers: mods,
		Type:      typeRef,
		Name:      nameTok.Text,
		NameSpan:  nameTok.Span,
		Span:      start.Cover(semi.Span),
	}, true
}

// parseFuncRest finishes `modifiers type name ( params? ) (';' | block)`.
func (p *Parser) parseFuncRest(mods ast.Modifiers, returnType ast.TypeRef, nameTok token.Token) (ast.Decl, bool) {
	p.advance() // (

	decl := &ast.FuncDecl{
		Modifiers:  mods,
		ReturnType: returnType,
		Name:       nameTok.Text,
		NameSpan:   nameTok.Span,
	}

	if !p.at(token.RParen) {
		for {
			param, ok := p.parseParam()
			if !ok {
				return nil, false
			}
			decl.Params = append(decl.Params, param)
			if !p.at(token.Comma) {
				break
			}
			p.advance()
		}
	}
	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters")
	if !ok {
		return nil, false
	}

	start := returnType.Span
	if !mods.Span.Empty() {
		start = mods.Span
	}
	decl.Span = start.Cover(closeTok.Span)

	switch {
	case p.at(token.Semicolon):
		p.advance()
	case p.at(token.LBrace):
		if !p.skipBlock() {
			return nil, false
		}
		decl.HasBody = true
	default:
		p.err(diag.SynExpectSemicolon, "expected ';' or function body after signature")
		return nil, false
	}
	return decl, true
}

// parseParam parses `modifiers type name? [N]?`. The name is optional:
// prototypes may declare bare parameter types.
func (p *Parser) parseParam() (ast.Param, bool) {
	mods := p.parseModifiers()
	typeRef, ok := p.parseTypeRef()
	if !ok {
		return ast.Param{}, false
	}

	param := ast.Param{Modifiers: mods, Type: typeRef}
	if p.at(token.Ident) {
		nameTok := p.advance()
		param.Name = nameTok.Text
		param.NameSpan = nameTok.Span
		if !p.foldArraySuffix(&param.Type) {
			return ast.Param{}, false
		}
	}

	param.Span = param.Type.Span
	if !mods.Span.Empty() {
		param.Span = mods.Span.Cover(param.Span)
	}
	if !param.NameSpan.Empty() {
		param.Span = param.Span.Cover(param.NameSpan)
	}
	return param, true
}

// parseTypeRef parses `IDENT ('[' INT ']')?`.
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	nameTok, ok := p.expect(token.Ident, diag.SynExpectType, "expected type name")
	if !ok {
		return ast.TypeRef{}, false
	}
	ref := ast.TypeRef{
		Name:     nameTok.Text,
		NameSpan: nameTok.Span,
		Span:     nameTok.Span,
	}
	if p.at(token.LBracket) {
		if !p.parseArraySuffix(&ref) {
			return ast.TypeRef{}, false
		}
	}
	return ref, true
}

// foldArraySuffix applies a post-name array suffix (`float x[4]`) onto the
// type reference, so sema only ever sees the type-side spelling.
func (p *Parser) foldArraySuffix(ref *ast.TypeRef) bool {
	if !p.at(token.LBracket) {
		return true
	}
	if ref.IsArray {
		p.err(diag.SynBadArraySize, "multi-dimensional arrays are not supported")
		return false
	}
	return p.parseArraySuffix(ref)
}

func (p *Parser) parseArraySuffix(ref *ast.TypeRef) bool {
	p.advance() // [
	sizeTok, ok := p.expect(token.IntLit, diag.SynBadArraySize, "expected array size")
	if !ok {
		return false
	}
	size, err := strconv.ParseInt(sizeTok.Text, 10, 64)
	if err != nil {
		p.report(diag.SynBadArraySize, sizeTok.Span, "array size '"+sizeTok.Text+"' is not a valid integer")
		return false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after array size")
	if !ok {
		return false
	}
	ref.IsArray = true
	ref.Size = size
	ref.SizeSpan = sizeTok.Span
	ref.Span = ref.Span.Cover(closeTok.Span)
	return true
}

// skipBlock consumes a balanced '{...}' region without interpreting it.
func (p *Parser) skipBlock() bool {
	open := p.advance() // {
	depth := 1
	for depth > 0 {
		tok := p.advance()
		switch tok.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			depth--
		case token.EOF:
			p.report(diag.SynUnclosedBrace, open.Span, "unterminated function body")
			return false
		}
	}
	return true
}
