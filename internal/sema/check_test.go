package sema

import (
	"testing"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/lexer"
	"gloss/internal/parser"
	"gloss/internal/source"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// checkSource lexes, parses and checks src as "test.gls" under cfg.
func checkSource(t *testing.T, src string, cfg Config) (Result, *diag.Bag, *source.FileSet) {
	t.Helper()
	return checkSourceWith(t, src, cfg, nil, nil)
}

// checkSourceWith is checkSource with a caller-provided interner and symbol
// table, for tests that pre-seed builtin declarations.
func checkSourceWith(t *testing.T, src string, cfg Config, in *types.Interner, tab *symbols.Table) (Result, *diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.gls", []byte(src))
	file := fs.Get(id)
	bag := diag.NewBag(64)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	astFile := parser.ParseFile(file, lx, parser.Options{Reporter: rep})
	if bag.HasErrors() {
		t.Fatalf("source failed to parse: %v", bag.Items())
	}
	res := Check(astFile, Options{Reporter: rep, Types: in, Symbols: tab, Config: cfg})
	return res, bag, fs
}

// golden renders the bag the way golden tests compare diagnostics.
func golden(t *testing.T, bag *diag.Bag, fs *source.FileSet, notes bool) string {
	t.Helper()
	bag.Sort()
	return diag.FormatGoldenDiagnostics(bag.Refs(), fs, notes)
}

func wantGolden(t *testing.T, bag *diag.Bag, fs *source.FileSet, want string) {
	t.Helper()
	if got := golden(t, bag, fs, false); got != want {
		t.Errorf("diagnostics mismatch\n got: %s\nwant: %s", got, want)
	}
}

func wantClean(t *testing.T, bag *diag.Bag) {
	t.Helper()
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
}

// funcsNamed returns every accepted declaration with the given name, in
// acceptance order.
func funcsNamed(res Result, name string) []*symbols.FunctionDeclaration {
	var out []*symbols.FunctionDeclaration
	for _, id := range res.Funcs {
		if fd := res.Symbols.Func(id); fd != nil && fd.Name == name {
			out = append(out, fd)
		}
	}
	return out
}

func TestCheckWalksAllDeclKinds(t *testing.T) {
	src := `
struct Light { float3 dir; float power; };
uniform shader background;
const int kSteps;
float attenuate(Light l, float d) { return l.power; }
`
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantClean(t, bag)

	if len(res.Funcs) != 1 {
		t.Fatalf("accepted %d functions, want 1", len(res.Funcs))
	}
	fd := res.Symbols.Func(res.Funcs[0])
	if fd.Name != "attenuate" || !fd.HasDefinition {
		t.Fatalf("declaration = %+v", fd)
	}
	if !res.Types.IsStruct(fd.Params[0].Type) {
		t.Fatalf("struct parameter did not resolve")
	}
	if fields := res.Types.StructFields(fd.Params[0].Type); len(fields) != 2 || fields[0].Name != "dir" {
		t.Fatalf("struct fields = %+v", fields)
	}
}

func TestCheckNilFileAndDefaults(t *testing.T) {
	res := Check(nil, Options{})
	if res.Types == nil || res.Symbols == nil {
		t.Fatalf("Check must hand back usable collaborators")
	}
	if len(res.Funcs) != 0 {
		t.Fatalf("no declarations expected")
	}
}

func TestRejectedCandidateNeverRegisters(t *testing.T) {
	// The second declaration fails its return-type check; the symbol table
	// must not contain any trace of it.
	src := `
float ok(float x);
float2[2] broken(float x);
`
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic")
	}
	if len(res.Funcs) != 1 {
		t.Fatalf("accepted %d functions, want 1", len(res.Funcs))
	}
	if got := res.Symbols.Lookup("broken"); got != nil {
		t.Fatalf("rejected candidate leaked into the table: %v", got)
	}
	if res.Symbols.FuncCount() != 1 {
		t.Fatalf("FuncCount = %d, want 1", res.Symbols.FuncCount())
	}
}

func TestMaxErrorsCapsReporting(t *testing.T) {
	src := `
shader a();
shader b();
shader c();
`
	_, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric, MaxErrors: 2})
	if bag.Len() != 2 {
		t.Fatalf("reported %d diagnostics, want cap of 2", bag.Len())
	}
}

func TestPrivateNamesRejectedInUserCode(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			"function name",
			"half4 $helper(half4 c);",
			"error SEM3015 test.gls:1:7 '$helper' is private",
		},
		{
			"type reference",
			"$genType twice($genType x);",
			"error SEM3015 test.gls:1:1 '$genType' is private\n" +
				"error SEM3015 test.gls:1:16 '$genType' is private",
		},
		{
			"struct name",
			"struct $Hidden { float x; };",
			"error SEM3015 test.gls:1:8 '$Hidden' is private",
		},
		{
			"global name",
			"const float $k;",
			"error SEM3015 test.gls:1:13 '$k' is private",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, bag, fs := checkSource(t, tt.src, Config{Kind: ast.KindGeneric})
			wantGolden(t, bag, fs, tt.want)
		})
	}
}

func TestPrivateNamesAllowedInBuiltinCode(t *testing.T) {
	src := "$genType $scale($genType x);"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric, BuiltinCode: true})
	wantClean(t, bag)
	if len(res.Funcs) != 1 {
		t.Fatalf("builtin declaration rejected")
	}
	fd := res.Symbols.Func(res.Funcs[0])
	if !fd.Builtin {
		t.Fatalf("builtin flag not set on %+v", fd)
	}
}
