// Package symbols stores named declarations for one compilation unit. A
// compilation links a mutable user table to the immutable builtin root
// built from the prelude; handles allocated by either table live in one
// shared ID space, so a FuncID stays meaningful wherever it came from.
package symbols

import (
	"fmt"

	"fortio.org/safecast"
)

// Table is an arena-backed symbol store. The zero value is not usable;
// construct with NewRootTable or NewTable. A table is not safe for
// concurrent mutation, but a finished root table may be shared read-only
// by any number of user tables.
type Table struct {
	root     *Table
	builtin  bool
	symBase  uint32
	syms     []Symbol
	funcBase uint32
	funcs    []FunctionDeclaration
	names    map[string][]SymbolID
}

// NewRootTable constructs the table the builtin prelude compiles into.
func NewRootTable() *Table {
	return &Table{
		builtin:  true,
		symBase:  1, // index 0 reserved for NoSymbolID
		funcBase: 1, // index 0 reserved for NoFuncID
		names:    make(map[string][]SymbolID, 64),
	}
}

// NewTable constructs a user table chained to a root. A nil root gives a
// standalone table (tests use this).
func NewTable(root *Table) *Table {
	t := &Table{
		root:     root,
		symBase:  1,
		funcBase: 1,
		names:    make(map[string][]SymbolID, 32),
	}
	if root != nil {
		t.symBase = root.symBase + uint32(len(root.syms))
		t.funcBase = root.funcBase + uint32(len(root.funcs))
	}
	return t
}

// IsBuiltin reports whether this is the builtin root table.
func (t *Table) IsBuiltin() bool {
	return t.builtin
}

// Insert allocates the symbol and appends it to the name index. Collision
// policy lives in the caller: Insert itself accepts anything.
func (t *Table) Insert(sym Symbol) SymbolID {
	offset, err := safecast.Conv[uint32](len(t.syms))
	if err != nil {
		panic(fmt.Errorf("symbol arena overflow: %w", err))
	}
	id := SymbolID(t.symBase + offset)
	t.syms = append(t.syms, sym)
	t.names[sym.Name] = append(t.names[sym.Name], id)
	return id
}

// NewFunc allocates a function declaration record owned by this table.
func (t *Table) NewFunc(fd FunctionDeclaration) FuncID {
	offset, err := safecast.Conv[uint32](len(t.funcs))
	if err != nil {
		panic(fmt.Errorf("function arena overflow: %w", err))
	}
	id := FuncID(t.funcBase + offset)
	t.funcs = append(t.funcs, fd)
	return id
}

// Lookup returns every symbol bound to name in declaration order: root
// declarations first (they predate all user code), then this table's own,
// each oldest first. The returned slice must not be mutated.
func (t *Table) Lookup(name string) []SymbolID {
	own := t.names[name]
	if t.root == nil {
		return own
	}
	rootIDs := t.root.Lookup(name)
	if len(rootIDs) == 0 {
		return own
	}
	if len(own) == 0 {
		return rootIDs
	}
	out := make([]SymbolID, 0, len(rootIDs)+len(own))
	out = append(out, rootIDs...)
	return append(out, own...)
}

// LookupOwn returns only the symbols this table itself binds to name,
// excluding the root's. Collision checks for non-function declarations use
// it: a user declaration may shadow a builtin, but never redefine a
// same-scope name.
func (t *Table) LookupOwn(name string) []SymbolID {
	return t.names[name]
}

// Symbol resolves a handle from this table or its root. Returns nil for
// invalid handles.
func (t *Table) Symbol(id SymbolID) *Symbol {
	if !id.IsValid() {
		return nil
	}
	idx := uint32(id)
	if idx >= t.symBase {
		local := idx - t.symBase
		if int(local) < len(t.syms) {
			return &t.syms[local]
		}
		return nil
	}
	if t.root != nil {
		return t.root.Symbol(id)
	}
	return nil
}

// Func resolves a declaration handle from this table or its root. Records
// owned by the root are shared across compilations and must be treated as
// read-only.
func (t *Table) Func(id FuncID) *FunctionDeclaration {
	if !id.IsValid() {
		return nil
	}
	idx := uint32(id)
	if idx >= t.funcBase {
		local := idx - t.funcBase
		if int(local) < len(t.funcs) {
			return &t.funcs[local]
		}
		return nil
	}
	if t.root != nil {
		return t.root.Func(id)
	}
	return nil
}

// AttachDefinition marks the declaration as having a body. Only records
// owned by this table can be attached; the root stays immutable. Reports
// whether the flag was newly set.
func (t *Table) AttachDefinition(id FuncID) bool {
	idx := uint32(id)
	if !id.IsValid() || idx < t.funcBase {
		return false
	}
	local := idx - t.funcBase
	if int(local) >= len(t.funcs) {
		return false
	}
	fd := &t.funcs[local]
	if fd.HasDefinition {
		return false
	}
	fd.HasDefinition = true
	return true
}

// FuncCount reports how many declarations this table owns (excluding the
// root's).
func (t *Table) FuncCount() int {
	return len(t.funcs)
}

// OwnSymbols iterates this table's own symbols in declaration order.
func (t *Table) OwnSymbols(fn func(SymbolID, *Symbol)) {
	for i := range t.syms {
		fn(SymbolID(t.symBase+uint32(i)), &t.syms[i])
	}
}
