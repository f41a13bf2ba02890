package token

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwStruct:         "KwStruct",
	KwUniform:        "KwUniform",
	KwConst:          "KwConst",
	KwIn:             "KwIn",
	KwOut:            "KwOut",
	KwInline:         "KwInline",
	KwNoinline:       "KwNoinline",
	KwReadonly:       "KwReadonly",
	KwWriteonly:      "KwWriteonly",
	KwHasSideEffects: "KwHasSideEffects",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Assign:           "Assign",
	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	StarAssign:       "StarAssign",
	SlashAssign:      "SlashAssign",
	PercentAssign:    "PercentAssign",
	EqEq:             "EqEq",
	Bang:             "Bang",
	BangEq:           "BangEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	Amp:              "Amp",
	Pipe:             "Pipe",
	Caret:            "Caret",
	Tilde:            "Tilde",
	Shl:              "Shl",
	Shr:              "Shr",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	PlusPlus:         "PlusPlus",
	MinusMinus:       "MinusMinus",
	Question:         "Question",
	Colon:            "Colon",
	Semicolon:        "Semicolon",
	Comma:            "Comma",
	Dot:              "Dot",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	}
	return "Unknown"
}
