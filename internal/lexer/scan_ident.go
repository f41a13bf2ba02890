package lexer

import (
	"golang.org/x/text/unicode/norm"

	"gloss/internal/diag"
	"gloss/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies it through
// LookupKeyword. Keywords are case-sensitive. Token.Text is the exact
// source slice for ASCII identifiers; identifiers containing Unicode
// letters are NFC-normalized so visually identical spellings compare equal.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.Invalid, Span: sp, Text: ""}
	}
	hadUnicode := false
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		hadUnicode = true
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b < utf8RuneSelf {
			break
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		hadUnicode = true
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if hadUnicode {
		text = norm.NFC.String(text)
	}

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanDollarIdent scans a '$'-prefixed identifier such as $genType or $es3.
// The '$' must be followed by an identifier start.
func (lx *Lexer) scanDollarIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'

	if b := lx.cursor.Peek(); !isIdentStartByte(b) {
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexUnknownChar, sp, "expected identifier after '$'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
