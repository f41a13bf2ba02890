package sema

import (
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// findGenericIndex returns the position of the first candidate in the
// generic family that concrete coerces to, or -1 when none applies. The
// family order is a priority order, so first match wins.
func findGenericIndex(in *types.Interner, concrete, generic types.TypeID, allowNarrowing bool) int {
	for i, cand := range in.CoercibleTypes(generic) {
		if in.CanCoerce(concrete, cand, allowNarrowing) {
			return i
		}
	}
	return -1
}

// typeGenericallyMatches reports whether the types match outright, or
// whether concrete appears in maybeGeneric's family.
func (c *checker) typeGenericallyMatches(concrete, maybeGeneric types.TypeID) bool {
	if c.types.IsGeneric(maybeGeneric) {
		return findGenericIndex(c.types, concrete, maybeGeneric, false) != -1
	}
	return c.types.Matches(concrete, maybeGeneric)
}

// parametersMatch compares a concrete candidate parameter list against a
// previously declared list that may contain generic types. Every generic
// slot must resolve to one consistent family index; the first pass locks
// that index (or bails on a contradiction), the second pass makes the
// generics concrete and requires exact matches.
func (c *checker) parametersMatch(params []symbols.Param, other []symbols.Param) bool {
	if len(params) != len(other) {
		return false
	}

	genericIndex := -1
	for i := range params {
		otherType := other[i].Type
		if !c.types.IsGeneric(otherType) {
			continue
		}
		idx := findGenericIndex(c.types, params[i].Type, otherType, false)
		if idx == -1 {
			// Not a match for this generic at all.
			return false
		}
		if genericIndex != -1 && genericIndex != idx {
			// Contradicts the index fixed by an earlier parameter.
			return false
		}
		genericIndex = idx
	}

	for i := range params {
		otherType := other[i].Type
		if c.types.IsGeneric(otherType) {
			otherType = c.types.CoercibleTypes(otherType)[genericIndex]
		}
		if !c.types.Matches(params[i].Type, otherType) {
			return false
		}
	}
	return true
}
