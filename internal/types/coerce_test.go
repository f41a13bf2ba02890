package types

import "testing"

func TestScalarCoercion(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	tests := []struct {
		name           string
		src, dst       TypeID
		allowNarrowing bool
		want           bool
	}{
		{"identical", b.Float, b.Float, false, true},
		{"half to float widens", b.Half, b.Float, false, true},
		{"float to half needs narrowing", b.Float, b.Half, false, false},
		{"float to half with narrowing", b.Float, b.Half, true, true},
		{"int to float never", b.Int, b.Float, true, false},
		{"int to uint never", b.Int, b.Uint, true, false},
		{"bool to int never", b.Bool, b.Int, true, false},
		{"bool identical", b.Bool, b.Bool, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := in.CanCoerce(tt.src, tt.dst, tt.allowNarrowing); got != tt.want {
				t.Errorf("CanCoerce = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVectorCoercion(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if !in.CanCoerce(b.Half4, b.Float4, false) {
		t.Errorf("half4 should widen to float4")
	}
	if in.CanCoerce(b.Float4, b.Half4, false) {
		t.Errorf("float4 to half4 requires narrowing")
	}
	if !in.CanCoerce(b.Float4, b.Half4, true) {
		t.Errorf("float4 to half4 with narrowing should pass")
	}
	if in.CanCoerce(b.Float2, b.Float3, true) {
		t.Errorf("vectors of different length never coerce")
	}
	if in.CanCoerce(b.Float2, b.Float, true) {
		t.Errorf("vector to scalar never coerces")
	}
}

func TestMatrixCoercion(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if !in.CanCoerce(b.Half3x3, b.Float3x3, false) {
		t.Errorf("half3x3 should widen to float3x3")
	}
	if in.CanCoerce(b.Float2x2, b.Float3x3, true) {
		t.Errorf("matrices of different shape never coerce")
	}
}

func TestArrayCoercion(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	hArr := in.Intern(MakeArray(b.Half, 4))
	fArr := in.Intern(MakeArray(b.Float, 4))
	fArr5 := in.Intern(MakeArray(b.Float, 5))

	if !in.CanCoerce(hArr, fArr, false) {
		t.Errorf("half[4] should widen to float[4]")
	}
	if in.CanCoerce(fArr, hArr, false) {
		t.Errorf("float[4] to half[4] requires narrowing")
	}
	if in.CanCoerce(fArr, fArr5, true) {
		t.Errorf("arrays of different length never coerce")
	}
}

func TestOpaqueAndGenericNeverCoerce(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()

	if in.CanCoerce(b.Shader, b.ColorFilter, true) {
		t.Errorf("opaque handles never coerce to each other")
	}
	if in.CanCoerce(b.Float2, b.GenType, true) {
		t.Errorf("generic families are not direct coercion targets")
	}
}
