package token

import "gloss/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

// Trivia is whitespace or a comment preceding a token. The lexer only
// records trivia when asked to; the parser never sees it.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}
