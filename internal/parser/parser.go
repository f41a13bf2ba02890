// Package parser turns a token stream into declaration-level AST. Only the
// constructs semantic analysis needs are recognized: structs, globals, and
// function prototypes/definitions. Function bodies are skipped over with
// brace balancing and recorded as "has body".
package parser

import (
	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/lexer"
	"gloss/internal/source"
	"gloss/internal/token"
)

type Options struct {
	// Reporter receives syntax diagnostics. May be nil.
	Reporter diag.Reporter
	// MaxErrors stops the parse after this many errors. 0 means unlimited.
	MaxErrors uint
}

// Parser holds the state for one file.
type Parser struct {
	lx       *lexer.Lexer
	file     source.FileID
	opts     Options
	errs     uint
	lastSpan source.Span // span of the last consumed token, for EOF diagnostics
}

// ParseFile parses one source file into its declaration list. The lexer
// must be freshly constructed over the same file.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) *ast.File {
	p := Parser{
		lx:   lx,
		file: file.ID,
		opts: opts,
	}
	out := &ast.File{ID: file.ID}
	for !p.at(token.EOF) && !p.enough() {
		decl, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		out.Decls = append(out.Decls, decl)
	}
	return out
}

// parseDecl dispatches on the first token of a top-level construct.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch tok := p.lx.Peek(); {
	case tok.Kind == token.KwStruct:
		return p.parseStructDecl()
	case tok.IsModifier() || isES3Ident(tok) || tok.Kind == token.Ident:
		return p.parseGlobalOrFunc()
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected token '"+tok.Text+"' at top level")
		return nil, false
	}
}

// resyncTop recovers after a top-level error: skip to the next ';' or '}'
// boundary (consuming it) or to the start of the next declaration.
func (p *Parser) resyncTop() {
	for {
		switch tok := p.lx.Peek(); {
		case tok.Kind == token.EOF:
			return
		case tok.Kind == token.Semicolon || tok.Kind == token.RBrace:
			p.advance()
			return
		case tok.Kind == token.KwStruct:
			return
		default:
			p.advance()
		}
	}
}

// isES3Ident recognizes the builtin-only '$es3' modifier spelling, which
// the lexer produces as a plain '$'-identifier.
func isES3Ident(tok token.Token) bool {
	return tok.Kind == token.Ident && tok.Text == "$es3"
}
