package types

// CanCoerce reports whether a value of type src converts implicitly to dst.
// Narrowing conversions (toward a lower-priority scalar in the same number
// kind, e.g. float→half) are only permitted when allowNarrowing is set.
// Generic families are never coercion targets here; resolving against a
// family goes through CoercibleTypes candidate by candidate.
func (in *Interner) CanCoerce(src, dst TypeID, allowNarrowing bool) bool {
	if src == NoTypeID || dst == NoTypeID {
		return false
	}
	if src == dst {
		return true
	}
	st, ok := in.Lookup(src)
	if !ok {
		return false
	}
	dt, ok := in.Lookup(dst)
	if !ok {
		return false
	}

	switch {
	case st.Kind == KindScalar && dt.Kind == KindScalar:
		return scalarCoerce(st.Scalar, dt.Scalar, allowNarrowing)

	case st.Kind == KindVector && dt.Kind == KindVector:
		return st.Columns == dt.Columns &&
			scalarCoerce(st.Scalar, dt.Scalar, allowNarrowing)

	case st.Kind == KindMatrix && dt.Kind == KindMatrix:
		return st.Columns == dt.Columns && st.Rows == dt.Rows &&
			scalarCoerce(st.Scalar, dt.Scalar, allowNarrowing)

	case st.Kind == KindArray && dt.Kind == KindArray:
		return st.Count == dt.Count &&
			in.CanCoerce(st.Elem, dt.Elem, allowNarrowing)

	default:
		return false
	}
}

func scalarCoerce(src, dst Scalar, allowNarrowing bool) bool {
	if src == dst {
		return true
	}
	if src.NumberKind() != dst.NumberKind() {
		return false
	}
	if dst.Priority() >= src.Priority() {
		return true // widening
	}
	return allowNarrowing
}
