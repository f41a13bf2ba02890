package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token. Builtin-only identifiers begin
	// with '$' and are still lexed as Ident.
	Ident

	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUniform represents the 'uniform' modifier keyword.
	KwUniform // uniform
	// KwConst represents the 'const' modifier keyword.
	KwConst // const
	// KwIn represents the 'in' modifier keyword.
	KwIn // in
	// KwOut represents the 'out' modifier keyword.
	KwOut // out
	// KwInline represents the 'inline' modifier keyword.
	KwInline // inline
	// KwNoinline represents the 'noinline' modifier keyword.
	KwNoinline // noinline
	// KwReadonly represents the 'readonly' modifier keyword.
	KwReadonly // readonly
	// KwWriteonly represents the 'writeonly' modifier keyword.
	KwWriteonly // writeonly
	// KwHasSideEffects represents the 'has_side_effects' modifier keyword.
	KwHasSideEffects // has_side_effects

	// IntLit represents an integer literal token.
	IntLit
	// FloatLit represents a floating-point literal token.
	FloatLit

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Assign represents '='.
	Assign // =
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// PercentAssign represents '%='.
	PercentAssign // %=
	// EqEq represents '=='.
	EqEq // ==
	// Bang represents '!'.
	Bang // !
	// BangEq represents '!='.
	BangEq // !=
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Tilde represents '~'.
	Tilde // ~
	// Shl represents '<<'.
	Shl // <<
	// Shr represents '>>'.
	Shr // >>
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||
	// PlusPlus represents '++'.
	PlusPlus // ++
	// MinusMinus represents '--'.
	MinusMinus // --
	// Question represents '?'.
	Question // ?
	// Colon represents ':'.
	Colon // :
	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// Dot represents '.'.
	Dot // .
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
)
