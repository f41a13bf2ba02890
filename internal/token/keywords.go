package token

var keywords = map[string]Kind{
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

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case-sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsModifierKind reports whether the kind is one of the declaration
// modifier keywords.
func IsModifierKind(k Kind) bool {
	switch k {
	case KwUniform, KwConst, KwIn, KwOut, KwInline, KwNoinline, KwReadonly, KwWriteonly, KwHasSideEffects:
		return true
	default:
		return false
	}
}
