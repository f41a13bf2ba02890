package ast

import (
	"strings"

	"gloss/internal/source"
)

// ModifierFlags is the bounded set of declaration modifier keywords.
type ModifierFlags uint16

const (
	ModifierConst ModifierFlags = 1 << iota
	ModifierIn
	ModifierOut
	ModifierUniform
	ModifierInline
	ModifierNoinline
	ModifierReadonly
	ModifierWriteonly
	ModifierHasSideEffects
	ModifierES3

	ModifierNone ModifierFlags = 0
)

// Has reports whether every flag in mask is set.
func (f ModifierFlags) Has(mask ModifierFlags) bool {
	return f&mask == mask
}

// HasAny reports whether any flag in mask is set.
func (f ModifierFlags) HasAny(mask ModifierFlags) bool {
	return f&mask != 0
}

// ModifierSpelling pairs one flag with its surface keyword.
type ModifierSpelling struct {
	Flag ModifierFlags
	Name string
}

// ModifierOrder lists every flag in canonical surface order. String follows
// it, and permission checks iterate it to name offending flags one at a
// time. Treat as read-only.
var ModifierOrder = []ModifierSpelling{
	{ModifierUniform, "uniform"},
	{ModifierConst, "const"},
	{ModifierIn, "in"},
	{ModifierOut, "out"},
	{ModifierInline, "inline"},
	{ModifierNoinline, "noinline"},
	{ModifierReadonly, "readonly"},
	{ModifierWriteonly, "writeonly"},
	{ModifierHasSideEffects, "has_side_effects"},
	{ModifierES3, "$es3"},
}

// String spells the set as space-separated keywords in canonical order,
// with a trailing space when non-empty so it can prefix a type name.
func (f ModifierFlags) String() string {
	if f == ModifierNone {
		return ""
	}
	var sb strings.Builder
	for _, entry := range ModifierOrder {
		if f.Has(entry.Flag) {
			sb.WriteString(entry.Name)
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// BuiltinID is the semantic role a parameter can carry. Roles are inferred
// during entry-point checking; there is no surface syntax for them.
type BuiltinID uint8

const (
	BuiltinNone BuiltinID = iota
	BuiltinMainCoords
	BuiltinInputColor
	BuiltinDestColor
)

func (b BuiltinID) String() string {
	switch b {
	case BuiltinNone:
		return "none"
	case BuiltinMainCoords:
		return "mainCoords"
	case BuiltinInputColor:
		return "inputColor"
	case BuiltinDestColor:
		return "destColor"
	default:
		return "?"
	}
}

// Layout carries position-independent declaration metadata. The surface
// language exposes none of it; the only populated slot is the inferred
// builtin role.
type Layout struct {
	Builtin BuiltinID
}

// IsEmpty reports whether no layout slot is populated.
func (l Layout) IsEmpty() bool {
	return l == Layout{}
}

// Modifiers bundles the flag set and layout attached to one declaration
// site. It is a value type: role inference replaces the whole value rather
// than mutating shared state.
type Modifiers struct {
	Layout Layout
	Flags  ModifierFlags
	Span   source.Span
}
