package symbols

import (
	"testing"

	"gloss/internal/ast"
	"gloss/internal/source"
	"gloss/internal/types"
)

func TestInsertAndLookupOrder(t *testing.T) {
	tab := NewTable(nil)
	in := types.NewInterner()
	b := in.Builtins()

	f1 := tab.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "foo",
		[]Param{{Type: b.Float3, Name: "x"}}, b.Float, false))
	s1 := tab.Insert(Symbol{Name: "foo", Kind: SymbolFunction, Func: f1})

	f2 := tab.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "foo",
		[]Param{{Type: b.Float2, Name: "x"}}, b.Float, false))
	s2 := tab.Insert(Symbol{Name: "foo", Kind: SymbolFunction, Func: f2})

	got := tab.Lookup("foo")
	if len(got) != 2 || got[0] != s1 || got[1] != s2 {
		t.Fatalf("Lookup order = %v, want [%v %v]", got, s1, s2)
	}
	if tab.Symbol(got[0]).Func != f1 || tab.Symbol(got[1]).Func != f2 {
		t.Fatalf("symbols resolve to wrong declarations")
	}
	if tab.Lookup("bar") != nil {
		t.Fatalf("unknown name should resolve to nothing")
	}
}

func TestRootChainedLookup(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	root := NewRootTable()
	rf := root.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "sin",
		[]Param{{Type: b.GenType}}, b.GenType, true))
	rs := root.Insert(Symbol{Name: "sin", Kind: SymbolFunction, Func: rf})

	user := NewTable(root)
	uf := user.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "sin",
		[]Param{{Type: b.Int, Name: "x"}}, b.Int, false))
	us := user.Insert(Symbol{Name: "sin", Kind: SymbolFunction, Func: uf})

	got := user.Lookup("sin")
	if len(got) != 2 || got[0] != rs || got[1] != us {
		t.Fatalf("chained lookup = %v, want root entry first", got)
	}

	// Handles from both tables resolve through the user table.
	if fd := user.Func(rf); fd == nil || !fd.Builtin {
		t.Fatalf("root handle should resolve via user table")
	}
	if fd := user.Func(uf); fd == nil || fd.Builtin {
		t.Fatalf("user handle should resolve to the user declaration")
	}
	if root.Func(uf) != nil {
		t.Fatalf("root table must not see user handles")
	}
}

func TestHandleSpacesDisjoint(t *testing.T) {
	root := NewRootTable()
	in := types.NewInterner()
	b := in.Builtins()
	rf := root.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "sqrt",
		[]Param{{Type: b.GenType}}, b.GenType, true))

	user := NewTable(root)
	uf := user.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "helper",
		nil, b.Float, false))

	if rf == uf {
		t.Fatalf("root and user func handles must not collide")
	}
	if uint32(uf) <= uint32(rf) {
		t.Fatalf("user handles start after root handles: %v vs %v", uf, rf)
	}
}

func TestAttachDefinition(t *testing.T) {
	root := NewRootTable()
	in := types.NewInterner()
	b := in.Builtins()
	rf := root.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "sin",
		[]Param{{Type: b.GenType}}, b.GenType, true))

	user := NewTable(root)
	uf := user.NewFunc(NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, "helper",
		nil, b.Float, false))

	if !user.AttachDefinition(uf) {
		t.Fatalf("attaching to an own declaration should succeed")
	}
	if user.AttachDefinition(uf) {
		t.Fatalf("second attach should report false")
	}
	if !user.Func(uf).HasDefinition {
		t.Fatalf("definition flag not set")
	}
	if user.AttachDefinition(rf) {
		t.Fatalf("user table must not mutate root declarations")
	}
	if root.Func(rf).HasDefinition {
		t.Fatalf("root record changed")
	}
}

func TestNonFunctionSymbols(t *testing.T) {
	in := types.NewInterner()
	tab := NewTable(nil)
	st := in.RegisterStruct("Varyings", source.Span{})
	id := tab.Insert(Symbol{Name: "Varyings", Kind: SymbolType, Type: st})

	got := tab.Lookup("Varyings")
	if len(got) != 1 || got[0] != id {
		t.Fatalf("Lookup = %v", got)
	}
	sym := tab.Symbol(id)
	if sym.Kind != SymbolType || sym.Type != st {
		t.Fatalf("symbol = %+v", sym)
	}
}
