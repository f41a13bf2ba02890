// Package diagfmt renders diagnostics for terminals and tools. The short
// one-line form lives in the diag package itself (golden tests share it);
// this package owns the pretty and JSON renderers.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludeNotes bool
	// Pretty indents the output for humans; tools read the compact form.
	Pretty bool
}
