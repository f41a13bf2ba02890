package parser

import (
	"gloss/internal/diag"
	"gloss/internal/source"
	"gloss/internal/token"
)

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance consumes the next token and remembers its span for diagnostics
// raised at EOF.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan picks the best span for a diagnostic at the current position:
// the upcoming token, or the point right after the last consumed token
// when the stream ran out.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect consumes a token of kind k or reports the given diagnostic.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.report(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.diagSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.errs++
	if p.opts.Reporter != nil && !p.enough() {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

func (p *Parser) enough() bool {
	return p.opts.MaxErrors != 0 && p.errs > p.opts.MaxErrors
}
