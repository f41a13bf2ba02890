package ast

import "testing"

func TestModifierFlagsString(t *testing.T) {
	tests := []struct {
		flags ModifierFlags
		want  string
	}{
		{ModifierNone, ""},
		{ModifierConst, "const "},
		{ModifierIn | ModifierConst, "const in "},
		{ModifierUniform, "uniform "},
		{ModifierInline | ModifierNoinline, "inline noinline "},
		{ModifierHasSideEffects, "has_side_effects "},
		{ModifierES3, "$es3 "},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("String(%b) = %q, want %q", tt.flags, got, tt.want)
		}
	}
}

func TestModifierFlagsHas(t *testing.T) {
	f := ModifierConst | ModifierIn
	if !f.Has(ModifierConst) || !f.Has(ModifierIn) {
		t.Errorf("Has should see both set flags")
	}
	if !f.Has(ModifierConst | ModifierIn) {
		t.Errorf("Has with a mask requires all bits")
	}
	if f.Has(ModifierConst | ModifierOut) {
		t.Errorf("Has must fail when any mask bit is missing")
	}
	if !f.HasAny(ModifierOut | ModifierIn) {
		t.Errorf("HasAny should see the in flag")
	}
	if f.HasAny(ModifierOut | ModifierUniform) {
		t.Errorf("HasAny must fail when no mask bit is set")
	}
}

func TestLayoutIsEmpty(t *testing.T) {
	if !(Layout{}).IsEmpty() {
		t.Errorf("zero layout should be empty")
	}
	if (Layout{Builtin: BuiltinMainCoords}).IsEmpty() {
		t.Errorf("layout with a role is not empty")
	}
}
