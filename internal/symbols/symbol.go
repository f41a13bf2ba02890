package symbols

import (
	"gloss/internal/source"
	"gloss/internal/types"
)

// SymbolKind classifies the semantic meaning of a symbol.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolFunction
	SymbolType
	SymbolVar
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolFunction:
		return "function"
	case SymbolType:
		return "type"
	case SymbolVar:
		return "variable"
	default:
		return "invalid"
	}
}

// Symbol describes a named entity. Function overloads are separate symbols
// sharing one name; the table's name index keeps them in declaration
// order, which is the order overload resolution scans them in.
type Symbol struct {
	Name string
	Kind SymbolKind
	Span source.Span  // declaration site, for "previously defined here" notes
	Type types.TypeID // struct type for SymbolType; variable type for SymbolVar
	Func FuncID       // declaration record for SymbolFunction
}
