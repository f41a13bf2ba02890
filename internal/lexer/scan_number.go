package lexer

import (
	"gloss/internal/diag"
	"gloss/internal/token"
)

// Supported forms: 0, 123, 0x1F, 1.0, .5, 1., 1e-3, 1.5e+10. No suffixes.
// Malformed forms report through opts.Reporter; the token is finished where
// possible so the stream keeps moving.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	kind := token.IntLit

	// Leading dot: ".digits" form.
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishExponent(start, kind)
	}

	// Hex literal.
	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok && (b1 == 'x' || b1 == 'X') {
			lx.cursor.Bump()
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected hex digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
			}
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
	}

	// Decimal integer part.
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fractional part; "1." is a valid float.
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.finishExponent(start, kind)
}

func (lx *Lexer) finishExponent(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
		}
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
