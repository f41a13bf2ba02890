package symbols

import (
	"testing"

	"gloss/internal/ast"
	"gloss/internal/source"
	"gloss/internal/types"
)

func declOf(name string, params []Param, ret types.TypeID, builtin, hasDef bool) FunctionDeclaration {
	fd := NewFunctionDeclaration(source.Span{}, ast.Modifiers{}, name, params, ret, builtin)
	fd.HasDefinition = hasDef
	return fd
}

func TestMangledNameLiteralCases(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	// Builtins without a definition keep their real name for host linkage.
	sin := declOf("sin", []Param{{Type: b.GenType}}, b.GenType, true, false)
	if got := sin.MangledName(in); got != "sin" {
		t.Fatalf("builtin prototype mangled to %q, want literal name", got)
	}

	// The entry point always keeps its name, body or not.
	main := declOf("main", []Param{{Type: b.Float2}}, b.Half4, false, true)
	if got := main.MangledName(in); got != "main" {
		t.Fatalf("entry point mangled to %q", got)
	}
}

func TestMangledNameAppendsAbbreviatedTypes(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	tests := []struct {
		name string
		fd   FunctionDeclaration
		want string
	}{
		{
			"user function",
			declOf("blend", []Param{{Type: b.Half4}, {Type: b.Float}}, b.Float4, false, true),
			"blend_f4h4f",
		},
		{
			"user prototype mangles too",
			declOf("blend", []Param{{Type: b.Half4}, {Type: b.Float}}, b.Float4, false, false),
			"blend_f4h4f",
		},
		{
			"matrix and uint abbreviations",
			declOf("proj", []Param{{Type: b.Float3x3}, {Type: b.Uint}}, b.Bool, false, true),
			"proj_bf33I",
		},
		{
			"array parameter",
			declOf("sum", []Param{{Type: in.Intern(types.MakeArray(b.Float, 4))}}, b.Float, false, true),
			"sum_fa4f",
		},
		{
			"void return",
			declOf("emit", nil, b.Void, false, true),
			"emit_v",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fd.MangledName(in); got != tt.want {
				t.Errorf("MangledName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMangledNameMarkerAndSplitter(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	// A defined builtin helper loses its '$' and gains the Q marker.
	helper := declOf("$blend_overlay", []Param{{Type: b.Half4}}, b.Half4, true, true)
	if got := helper.MangledName(in); got != "blend_overlay_Qh4h4" {
		t.Fatalf("marker mangle = %q", got)
	}

	// Names ending in '_' switch splitters so no doubled underscore appears.
	trailing := declOf("wrap_", []Param{{Type: b.Int}}, b.Int, false, true)
	if got := trailing.MangledName(in); got != "wrap_x_ii" {
		t.Fatalf("splitter mangle = %q", got)
	}
}

func TestManglingDeterministicAndInjective(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	a1 := declOf("mixdown", []Param{{Type: b.Half4}, {Type: b.Half}}, b.Half4, false, true)
	a2 := declOf("mixdown", []Param{{Type: b.Half4}, {Type: b.Half}}, b.Half4, false, true)
	if a1.MangledName(in) != a2.MangledName(in) {
		t.Fatalf("identical declarations mangled differently")
	}

	// Changing any parameter type must change the mangled name.
	variant := declOf("mixdown", []Param{{Type: b.Half4}, {Type: b.Float}}, b.Half4, false, true)
	if a1.MangledName(in) == variant.MangledName(in) {
		t.Fatalf("parameter type change did not change the mangled name")
	}
}

func TestDescription(t *testing.T) {
	in := types.NewInterner()
	b := in.Builtins()

	named := declOf("blend", []Param{{Type: b.Half4, Name: "src"}, {Type: b.Half4, Name: "dst"}}, b.Half4, false, false)
	if got := named.Description(in); got != "half4 blend(half4 src, half4 dst)" {
		t.Fatalf("Description = %q", got)
	}

	// Anonymous parameters print without a dangling space.
	anon := declOf("sin", []Param{{Type: b.GenType}}, b.GenType, true, false)
	if got := anon.Description(in); got != "$genType sin($genType)" {
		t.Fatalf("Description = %q", got)
	}
}
