// Package sema validates declarations and resolves function overloads.
// The checker walks a parsed file in source order: struct declarations
// register nominal types, globals are validated in place, and each function
// declaration runs the full signature/entry-point/overload pipeline before
// it is allowed into the symbol table. A candidate that fails any check is
// dropped whole; the table never holds a partially registered declaration.
package sema

import (
	"fmt"

	"gloss/internal/ast"
	"gloss/internal/diag"
	"gloss/internal/source"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// Config is the compilation configuration consulted during checking.
type Config struct {
	// Kind selects the entry-point calling convention.
	Kind ast.ProgramKind
	// Strict enables the stricter compatibility mode: functions may not
	// return structs that contain arrays anywhere in their layout.
	Strict bool
	// BuiltinCode marks prelude compilation. Builtin code may use the
	// '$es3' modifier, '$'-prefixed names, and effect-child parameters.
	BuiltinCode bool
	// MaxErrors caps emitted diagnostics; 0 means no cap. Checking itself
	// continues so the symbol table stays consistent.
	MaxErrors uint
}

// Options configure one semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	Types    *types.Interner
	Symbols  *symbols.Table
	Config   Config
}

// Result holds the artefacts of a pass.
type Result struct {
	Types   *types.Interner
	Symbols *symbols.Table
	// Funcs lists the accepted function declarations in source order.
	// Re-declarations resolve to the handle of the original, so one
	// FuncID may appear more than once.
	Funcs []symbols.FuncID
}

// Check validates every declaration in the file. Semantic failures are
// reported through the Reporter and never abort the pass; the caller
// decides success by asking its diagnostics sink for errors.
func Check(file *ast.File, opts Options) Result {
	c := checker{
		reporter: opts.Reporter,
		types:    opts.Types,
		syms:     opts.Symbols,
		cfg:      opts.Config,
	}
	if c.types == nil {
		c.types = types.NewInterner()
	}
	if c.syms == nil {
		c.syms = symbols.NewTable(nil)
	}
	if file != nil {
		for _, decl := range file.Decls {
			switch d := decl.(type) {
			case *ast.StructDecl:
				c.checkStructDecl(d)
			case *ast.GlobalDecl:
				c.checkGlobalDecl(d)
			case *ast.FuncDecl:
				if id, ok := c.convertFunction(d); ok {
					c.funcs = append(c.funcs, id)
				}
			}
		}
	}
	return Result{Types: c.types, Symbols: c.syms, Funcs: c.funcs}
}

type checker struct {
	reporter diag.Reporter
	types    *types.Interner
	syms     *symbols.Table
	cfg      Config
	errs     uint
	funcs    []symbols.FuncID
}

func (c *checker) report(code diag.Code, sp source.Span, format string, args ...any) {
	c.errs++
	if c.reporter == nil || c.enough() {
		return
	}
	diag.ReportError(c.reporter, code, sp, fmt.Sprintf(format, args...)).Emit()
}

// reportNoted is report plus a "previously ..." style secondary span.
func (c *checker) reportNoted(code diag.Code, sp source.Span, note source.Span, noteMsg, format string, args ...any) {
	c.errs++
	if c.reporter == nil || c.enough() {
		return
	}
	b := diag.ReportError(c.reporter, code, sp, fmt.Sprintf(format, args...))
	if note != (source.Span{}) {
		b.WithNote(note, noteMsg)
	}
	b.Emit()
}

func (c *checker) enough() bool {
	return c.cfg.MaxErrors != 0 && c.errs > c.cfg.MaxErrors
}

// displayName is shorthand for the user-facing type spelling.
func (c *checker) displayName(id types.TypeID) string {
	return types.DisplayName(c.types, id)
}

func isPrivateName(name string) bool {
	return len(name) > 0 && name[0] == '$'
}
