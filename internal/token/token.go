package token

import (
	"gloss/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, PlusAssign, MinusAssign,
		StarAssign, SlashAssign, PercentAssign, EqEq, Bang, BangEq, Lt, LtEq,
		Gt, GtEq, Amp, Pipe, Caret, Tilde, Shl, Shr, AndAnd, OrOr, PlusPlus,
		MinusMinus, Question, Colon, Semicolon, Comma, Dot, LParen, RParen,
		LBrace, RBrace, LBracket, RBracket:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwStruct, KwUniform, KwConst, KwIn, KwOut, KwInline, KwNoinline,
		KwReadonly, KwWriteonly, KwHasSideEffects:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsModifier reports whether the token is a declaration modifier keyword.
func (t Token) IsModifier() bool { return IsModifierKind(t.Kind) }
