// Package builtins compiles the embedded prelude into the root symbol
// table every user compilation links against. The prelude is builtin code:
// it may use '$'-prefixed names, generic families, the '$es3' modifier and
// effect-child parameters.
package builtins

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/lexer"
	"gloss/internal/parser"
	"gloss/internal/sema"
	"gloss/internal/source"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

//go:embed prelude/*.gls
var preludeFS embed.FS

var (
	once     sync.Once
	rootTab  *symbols.Table
	rootErrs error
)

// Root returns the process-wide builtin root table, compiling the prelude
// on first use. The table is immutable after construction and safe to
// share across goroutines; chain a user table to it with
// symbols.NewTable(Root()).
//
// Every type the prelude mentions is seeded at interner construction, so
// the TypeIDs captured in the root table resolve identically through any
// fresh types.NewInterner(). Prelude declarations must never intern new
// structural types (arrays, structs); compile enforces that.
func Root() *symbols.Table {
	once.Do(compile)
	if rootErrs != nil {
		// A prelude that does not compile is a programming error in this
		// repository, not a user mistake.
		panic(rootErrs)
	}
	return rootTab
}

func compile() {
	entries, err := preludeFS.ReadDir("prelude")
	if err != nil {
		rootErrs = fmt.Errorf("builtins: reading embedded prelude: %w", err)
		return
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	fs := source.NewFileSet()
	in := types.NewInterner()
	tab := symbols.NewRootTable()
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	cfg := sema.Config{Kind: ast.KindGeneric, BuiltinCode: true}

	seeded := in.Size()
	for _, name := range names {
		data, err := preludeFS.ReadFile("prelude/" + name)
		if err != nil {
			rootErrs = fmt.Errorf("builtins: reading prelude/%s: %w", name, err)
			return
		}
		id := fs.AddVirtual("builtin:"+name, data)
		file := fs.Get(id)
		lx := lexer.New(file, lexer.Options{Reporter: rep})
		astFile := parser.ParseFile(file, lx, parser.Options{Reporter: rep})
		sema.Check(astFile, sema.Options{
			Reporter: rep,
			Types:    in,
			Symbols:  tab,
			Config:   cfg,
		})
	}

	if bag.HasErrors() {
		bag.Sort()
		var sb strings.Builder
		sb.WriteString("builtins: prelude does not compile:\n")
		sb.WriteString(diag.FormatShortDiagnostics(bag.Refs(), fs, true))
		rootErrs = fmt.Errorf("%s", sb.String())
		return
	}
	if in.Size() != seeded {
		rootErrs = fmt.Errorf(
			"builtins: prelude interned %d new types; root-table TypeIDs would not survive a fresh interner",
			in.Size()-seeded)
		return
	}
	rootTab = tab
}
