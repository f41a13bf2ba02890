package sema

import (
	"testing"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/types"
)

// wantCodes asserts the bag holds exactly the given codes, in sorted order.
func wantCodes(t *testing.T, bag *diag.Bag, codes ...diag.Code) {
	t.Helper()
	bag.Sort()
	items := bag.Items()
	if len(items) != len(codes) {
		t.Fatalf("got %d diagnostics, want %d: %v", len(items), len(codes), items)
	}
	for i := range items {
		if items[i].Code != codes[i] {
			t.Errorf("diagnostic %d = %s, want %s", i, items[i].Code.ID(), codes[i].ID())
		}
	}
}

func TestInlineNoinlineConflictRejects(t *testing.T) {
	src := "inline noinline float twice(float x);"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantCodes(t, bag, diag.SemaInlineConflict)
	if len(res.Funcs) != 0 {
		t.Fatalf("conflicting declaration was accepted")
	}
}

func TestModifierViolationIsTolerated(t *testing.T) {
	// A misplaced modifier is an error, but the declaration itself stays.
	src := "uniform float scale(float x);"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantCodes(t, bag, diag.SemaModifierNotPermitted)
	if len(res.Funcs) != 1 {
		t.Fatalf("accepted %d functions, want 1", len(res.Funcs))
	}
}

func TestLayoutNotPermittedOnFunctions(t *testing.T) {
	// No surface syntax puts a layout on a function, so drive the check
	// directly with a populated layout slot.
	bag := diag.NewBag(8)
	c := checker{reporter: diag.BagReporter{Bag: bag}, types: types.NewInterner()}
	m := ast.Modifiers{Layout: ast.Layout{Builtin: ast.BuiltinMainCoords}}
	if !c.checkFunctionModifiers(m) {
		t.Fatalf("layout violation must not reject the declaration")
	}
	wantCodes(t, bag, diag.SemaLayoutNotPermitted)
}

func TestReturnTypeShapeRules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		cfg  Config
		want diag.Code
	}{
		{
			"array return",
			"float2[2] tail(float x);",
			Config{Kind: ast.KindGeneric},
			diag.SemaReturnTypeArray,
		},
		{
			"opaque return",
			"shader make();",
			Config{Kind: ast.KindGeneric},
			diag.SemaReturnTypeOpaque,
		},
		{
			"struct with array under strict",
			"struct Kernel { float taps[3]; };\nKernel build();",
			Config{Kind: ast.KindGeneric, Strict: true},
			diag.SemaReturnStructWithArray,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag, _ := checkSource(t, tt.src, tt.cfg)
			wantCodes(t, bag, tt.want)
			if len(res.Funcs) != 0 {
				t.Fatalf("bad return type was accepted")
			}
		})
	}
}

func TestStructWithArrayReturnAllowedOutsideStrict(t *testing.T) {
	src := "struct Kernel { float taps[3]; };\nKernel build();"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantClean(t, bag)
	if len(res.Funcs) != 1 {
		t.Fatalf("accepted %d functions, want 1", len(res.Funcs))
	}
}

func TestEffectChildParamRejectedInUserCode(t *testing.T) {
	src := "half4 apply(shader s);"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantCodes(t, bag, diag.SemaEffectChildParam)
	if len(res.Funcs) != 0 {
		t.Fatalf("effect-child parameter was accepted")
	}
}

func TestEffectChildParamAllowedInBuiltinCode(t *testing.T) {
	src := "half4 $eval(shader s);"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric, BuiltinCode: true})
	wantClean(t, bag)
	if len(res.Funcs) != 1 {
		t.Fatalf("builtin effect-child declaration rejected")
	}
}

func TestOutParamPermittedOnNonOpaque(t *testing.T) {
	src := "void split(float3 v, out float2 lo);"
	_, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantClean(t, bag)
}

func TestInModifierIsStrippedFromParams(t *testing.T) {
	src := "float dot2(in float2 v);\nfloat mad(const in float2 v);"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindGeneric})
	wantClean(t, bag)

	dot2 := funcsNamed(res, "dot2")
	if len(dot2) != 1 || dot2[0].Params[0].Modifiers.Flags != ast.ModifierNone {
		t.Fatalf("'in' not stripped: %+v", dot2)
	}
	mad := funcsNamed(res, "mad")
	if len(mad) != 1 || mad[0].Params[0].Modifiers.Flags != ast.ModifierConst {
		t.Fatalf("'const' must survive 'in' stripping: %+v", mad)
	}
}
