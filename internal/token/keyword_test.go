package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"struct":           KwStruct,
		"uniform":          KwUniform,
		"const":            KwConst,
		"in":               KwIn,
		"out":              KwOut,
		"inline":           KwInline,
		"noinline":         KwNoinline,
		"readonly":         KwReadonly,
		"writeonly":        KwWriteonly,
		"has_side_effects": KwHasSideEffects,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Deliberately not keywords: case matters, and type names stay Ident.
	notKw := []string{
		"Struct", "UNIFORM", "Inline",
		"float", "half4", "int3", "texture2D",
		"main", "shader", "$genType",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestIsModifierKind(t *testing.T) {
	for _, k := range []Kind{KwUniform, KwConst, KwIn, KwOut, KwInline, KwNoinline, KwReadonly, KwWriteonly, KwHasSideEffects} {
		if !IsModifierKind(k) {
			t.Errorf("IsModifierKind(%v) = false, want true", k)
		}
	}
	for _, k := range []Kind{KwStruct, Ident, IntLit, Semicolon} {
		if IsModifierKind(k) {
			t.Errorf("IsModifierKind(%v) = true, want false", k)
		}
	}
}
