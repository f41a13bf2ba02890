package lexer

import (
	"gloss/internal/diag"
	"gloss/internal/token"
)

// collectLeadingTrivia consumes whitespace and comments ahead of the next
// significant token.
//   - runs of ' ' and '\t' coalesce into one TriviaSpace
//   - runs of '\n' coalesce into one TriviaNewline
//   - //... up to \n is a TriviaLineComment
//   - /* ... */ is a TriviaBlockComment; unterminated comments report and
//     stop at EOF
//
// Trivia is only recorded into hold when opts.KeepTrivia is set; it is
// always consumed.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

func (lx *Lexer) holdTrivia(kind token.TriviaKind, start Mark) {
	if !lx.opts.KeepTrivia {
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}
	b := lx.cursor.Peek()
	switch b {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.holdTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			// Everything to EOF was consumed.
			lx.report(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		lx.holdTrivia(token.TriviaBlockComment, start)
		return true

	default:
		// Not a comment; rescan as the '/' operator.
		lx.cursor.Reset(start)
		return false
	}
}
