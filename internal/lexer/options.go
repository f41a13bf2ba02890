package lexer

import (
	"gloss/internal/diag"
	"gloss/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics. May be nil: errors are then
	// dropped, but lexing continues.
	Reporter diag.Reporter
	// KeepTrivia records whitespace and comments as leading trivia on the
	// following token. The parser never asks for it; the tokenize command
	// does.
	KeepTrivia bool
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
