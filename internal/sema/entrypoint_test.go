package sema

import (
	"testing"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/symbols"
)

const meshStructs = "struct Attributes { float2 pos; };\nstruct Varyings { float2 uv; };\n"

func TestMainSignaturePerKind(t *testing.T) {
	tests := []struct {
		name string
		kind ast.ProgramKind
		src  string
		want diag.Code // zero means the declaration must be accepted
	}{
		{"color filter", ast.KindColorFilter, "half4 main(half4 c) {}", 0},
		{"color filter bad return", ast.KindColorFilter, "float2 main(half4 c) {}", diag.SemaEntryReturnType},
		{"color filter bad param", ast.KindColorFilter, "half4 main(float2 p) {}", diag.SemaEntryParams},

		{"shader coords only", ast.KindShader, "half4 main(float2 p) {}", 0},
		{"shader coords and color", ast.KindShader, "float4 main(float2 p, half4 c) {}", 0},
		{"shader missing coords", ast.KindShader, "half4 main(half4 c) {}", diag.SemaEntryParams},
		{"shader no params", ast.KindShader, "half4 main() {}", diag.SemaEntryParams},
		{"private shader", ast.KindPrivateShader, "half4 main(float2 p) {}", 0},

		{"blender", ast.KindBlender, "half4 main(half4 s, half4 d) {}", 0},
		{"blender one param", ast.KindBlender, "half4 main(half4 s) {}", diag.SemaEntryParams},
		{"blender bad return", ast.KindBlender, "float2 main(half4 s, half4 d) {}", diag.SemaEntryReturnType},

		{"mesh vertex", ast.KindMeshVertex, meshStructs + "float2 main(Attributes a, out Varyings v) {}", 0},
		{"mesh vertex bad return", ast.KindMeshVertex, meshStructs + "void main(Attributes a, out Varyings v) {}", diag.SemaEntryReturnType},
		{"mesh vertex varyings not out", ast.KindMeshVertex, meshStructs + "float2 main(Attributes a, Varyings v) {}", diag.SemaEntryParams},

		{"mesh fragment", ast.KindMeshFragment, meshStructs + "void main(Varyings v) {}", 0},
		{"mesh fragment color out", ast.KindMeshFragment, meshStructs + "float2 main(Varyings v, out half4 c) {}", 0},
		{"mesh fragment no params", ast.KindMeshFragment, meshStructs + "void main() {}", diag.SemaEntryParams},

		{"fragment bare", ast.KindFragment, "void main() {}", 0},
		{"fragment coords", ast.KindFragment, "half4 main(float2 p) {}", 0},
		{"fragment bad param", ast.KindFragment, "void main(half4 c) {}", diag.SemaEntryParams},

		{"vertex", ast.KindVertex, "void main() {}", 0},
		{"vertex bad return", ast.KindVertex, "float2 main() {}", diag.SemaEntryReturnType},
		{"vertex with params", ast.KindVertex, "void main(float2 p) {}", diag.SemaEntryParams},
		{"compute", ast.KindCompute, "void main() {}", 0},

		{"generic has no rules", ast.KindGeneric, "int main(int a) {}", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag, _ := checkSource(t, tt.src, Config{Kind: tt.kind})
			if tt.want == 0 {
				wantClean(t, bag)
				if len(funcsNamed(res, "main")) != 1 {
					t.Fatalf("'main' was not accepted")
				}
				return
			}
			wantCodes(t, bag, tt.want)
			if len(funcsNamed(res, "main")) != 0 {
				t.Fatalf("invalid 'main' leaked into the table")
			}
		})
	}
}

func TestShaderMainRoleTagging(t *testing.T) {
	src := "half4 main(float2 p, half4 c) {}"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindShader})
	wantClean(t, bag)

	mains := funcsNamed(res, "main")
	if len(mains) != 1 {
		t.Fatalf("'main' was not accepted")
	}
	fd := mains[0]
	if !fd.IsEntryPoint {
		t.Fatalf("entry point not flagged: %+v", fd)
	}
	if got := fd.Params[0].Modifiers.Layout.Builtin; got != ast.BuiltinMainCoords {
		t.Errorf("coords role = %v, want BuiltinMainCoords", got)
	}
	if got := fd.Params[1].Modifiers.Layout.Builtin; got != ast.BuiltinInputColor {
		t.Errorf("color role = %v, want BuiltinInputColor", got)
	}
	// Entry points keep their literal name for the backend.
	if got := fd.MangledName(res.Types); got != "main" {
		t.Errorf("MangledName = %q, want %q", got, "main")
	}
}

func TestAcceptedMainRevalidatesUnchanged(t *testing.T) {
	// Running the validation pipeline again over an accepted declaration's
	// stored state must report nothing and change nothing: the inferred
	// roles may not trip the layout check, and 'in' stripping and role
	// inference are fixpoints.
	tests := []struct {
		name string
		kind ast.ProgramKind
		src  string
	}{
		{"shader", ast.KindShader, "half4 main(float2 p, half4 c) {}"},
		{"blender", ast.KindBlender, "half4 main(half4 s, half4 d) {}"},
		{"color filter", ast.KindColorFilter, "half4 main(half4 c) {}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag, _ := checkSource(t, tt.src, Config{Kind: tt.kind})
			wantClean(t, bag)
			fd := funcsNamed(res, "main")[0]

			rebag := diag.NewBag(16)
			c := checker{
				reporter: diag.BagReporter{Bag: rebag},
				types:    res.Types,
				syms:     res.Symbols,
				cfg:      Config{Kind: tt.kind},
			}
			params := append([]symbols.Param(nil), fd.Params...)
			if !c.checkFunctionModifiers(fd.Modifiers) ||
				!c.checkReturnType(ast.TypeRef{}, fd.ReturnType) ||
				!c.checkParameters(params, true) ||
				!c.checkMainSignature(fd.Span, fd.ReturnType, params) {
				t.Fatalf("accepted 'main' failed re-validation")
			}
			if rebag.Len() != 0 {
				t.Fatalf("re-validation reported: %v", rebag.Items())
			}
			for i := range params {
				if params[i] != fd.Params[i] {
					t.Errorf("parameter %d drifted on re-validation: %+v vs %+v",
						i, params[i], fd.Params[i])
				}
			}
		})
	}
}

func TestBlenderMainRoleTagging(t *testing.T) {
	src := "half4 main(half4 s, half4 d) {}"
	res, bag, _ := checkSource(t, src, Config{Kind: ast.KindBlender})
	wantClean(t, bag)

	fd := funcsNamed(res, "main")[0]
	if got := fd.Params[0].Modifiers.Layout.Builtin; got != ast.BuiltinInputColor {
		t.Errorf("source role = %v, want BuiltinInputColor", got)
	}
	if got := fd.Params[1].Modifiers.Layout.Builtin; got != ast.BuiltinDestColor {
		t.Errorf("dest role = %v, want BuiltinDestColor", got)
	}
}
