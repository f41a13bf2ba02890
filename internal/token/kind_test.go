package token_test

import (
	"testing"

	"gloss/internal/source"
	"gloss/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwConst, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.EqEq, token.Bang, token.BangEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.Amp, token.Pipe, token.Caret, token.Tilde, token.Shl, token.Shr,
		token.AndAnd, token.OrOr, token.PlusPlus, token.MinusMinus,
		token.Question, token.Colon, token.Semicolon, token.Comma, token.Dot,
		token.LParen, token.RParen, token.LBrace, token.RBrace,
		token.LBracket, token.RBracket,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwStruct, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsKeywordAndModifier(t *testing.T) {
	if !tok(token.KwStruct).IsKeyword() {
		t.Error("KwStruct should be a keyword")
	}
	if tok(token.KwStruct).IsModifier() {
		t.Error("KwStruct must NOT be a modifier")
	}
	if !tok(token.KwUniform).IsModifier() {
		t.Error("KwUniform should be a modifier")
	}
	if tok(token.Ident).IsKeyword() {
		t.Error("Ident must NOT be a keyword")
	}
	if !tok(token.Ident).IsIdent() {
		t.Error("Ident should be an identifier")
	}
}
