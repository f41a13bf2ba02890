package symbols

// SymbolID identifies a symbol inside a table's arena. IDs are absolute
// across a root/user table pair: the user table's IDs start where the
// root's end, so a handle resolves through either table unambiguously.
type SymbolID uint32

const (
	// NoSymbolID marks the absence of a symbol reference.
	NoSymbolID SymbolID = 0
)

// IsValid reports whether the symbol ID refers to an allocated symbol.
func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// FuncID identifies a function declaration record. Like SymbolID, the
// handle space is shared between a root table and its user tables, so a
// FuncID captured from a lookup stays valid for the whole compilation.
type FuncID uint32

const (
	// NoFuncID marks the absence of a function reference.
	NoFuncID FuncID = 0
)

// IsValid reports whether the func ID refers to an allocated declaration.
func (id FuncID) IsValid() bool { return id != NoFuncID }
