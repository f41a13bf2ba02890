// Package driver runs the check pipeline over files and directories: lex,
// parse, semantic analysis against the builtin root table, plus the disk
// cache and progress plumbing the CLI builds on.
package driver

import (
	"fmt"
	"time"

	"gloss/internal/builtins"
	"gloss/internal/diag"
	"gloss/internal/diagfmt"
	"gloss/internal/lexer"
	"gloss/internal/observ"
	"gloss/internal/parser"
	"gloss/internal/pipeline"
	"gloss/internal/sema"
	"gloss/internal/source"
	"gloss/internal/symbols"
	"gloss/internal/types"
)

// Options configure one check run.
type Options struct {
	Config sema.Config
	// Sink receives progress events. Nil means no progress reporting.
	Sink pipeline.Sink
	// Cache serves and stores per-file results. Nil disables caching.
	Cache *DiskCache
	// Jobs bounds CheckDir's worker pool. Zero or negative means NumCPU.
	Jobs int
	// MaxDiagnostics caps each file's bag. Zero means the default of 100.
	MaxDiagnostics int
}

func (o Options) bagCap() int {
	if o.MaxDiagnostics <= 0 {
		return 100
	}
	return o.MaxDiagnostics
}

// SymbolInfo summarizes one accepted function declaration for tools
// (--emit-symbols, the LSP document-symbol answer, the disk cache).
type SymbolInfo struct {
	Name       string `json:"name"`
	Mangled    string `json:"mangled"`
	Signature  string `json:"signature"`
	EntryPoint bool   `json:"entryPoint,omitempty"`
	Intrinsic  string `json:"intrinsic,omitempty"`
	// Span of the declaration, for editor navigation.
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// CheckResult holds everything one checked file produced. Each result owns
// its FileSet so directory workers never share mutable state.
type CheckResult struct {
	Path      string
	FileSet   *source.FileSet
	FileID    source.FileID
	Bag       *diag.Bag
	Symbols   []SymbolInfo
	FromCache bool
	Timer     *observ.Timer
}

// HasErrors reports whether the file produced error diagnostics.
func (r *CheckResult) HasErrors() bool {
	return r.Bag.HasErrors()
}

// Refs returns the sorted diagnostics as pointer refs, the form every
// renderer takes.
func (r *CheckResult) Refs() []*diag.Diagnostic {
	r.Bag.Sort()
	return r.Bag.Refs()
}

// JSONReport builds the machine-readable form of this result's diagnostics.
func (r *CheckResult) JSONReport(opts diagfmt.JSONOpts) diagfmt.JSONReport {
	return diagfmt.BuildJSONReport(r.Refs(), r.FileSet, opts)
}

// CheckSource checks in-memory source registered under name. The
// entry-point convention and strictness come from opts.Config.
func CheckSource(name string, src []byte, opts Options) *CheckResult {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, src)
	return checkLoaded(fs, id, opts)
}

// CheckFile loads path from disk and checks it, consulting the cache when
// one is configured. The returned error covers I/O only; semantic failures
// land in the result's bag.
func CheckFile(path string, opts Options) (*CheckResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if opts.Cache != nil {
		if res, ok := opts.Cache.replay(fs, id, opts); ok {
			emit(opts.Sink, pipeline.Event{File: path, Stage: pipeline.StageCheck, Status: pipeline.StatusCached})
			return res, nil
		}
	}

	res := checkLoaded(fs, id, opts)
	if opts.Cache != nil {
		// Cache write failures are not check failures; drop them.
		_ = opts.Cache.store(res, opts)
	}
	return res, nil
}

// checkLoaded runs the three stages over an already registered file.
func checkLoaded(fs *source.FileSet, id source.FileID, opts Options) *CheckResult {
	file := fs.Get(id)
	bag := diag.NewBag(opts.bagCap())
	rep := diag.BagReporter{Bag: bag}
	timer := observ.NewTimer()

	emit(opts.Sink, pipeline.Event{File: file.Path, Stage: pipeline.StageLex, Status: pipeline.StatusWorking})
	phase := timer.Begin("lex+parse")
	started := time.Now()
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	astFile := parser.ParseFile(file, lx, parser.Options{
		Reporter:  rep,
		MaxErrors: uint(opts.bagCap()),
	})
	timer.End(phase, fmt.Sprintf("%d decls", len(astFile.Decls)))
	emit(opts.Sink, pipeline.Event{
		File: file.Path, Stage: pipeline.StageParse, Status: pipeline.StatusDone,
		Elapsed: time.Since(started),
	})

	emit(opts.Sink, pipeline.Event{File: file.Path, Stage: pipeline.StageCheck, Status: pipeline.StatusWorking})
	phase = timer.Begin("check")
	started = time.Now()
	res := sema.Check(astFile, sema.Options{
		Reporter: rep,
		Types:    types.NewInterner(),
		Symbols:  symbols.NewTable(builtins.Root()),
		Config:   opts.Config,
	})
	timer.End(phase, fmt.Sprintf("%d functions", len(res.Funcs)))

	out := &CheckResult{
		Path:    file.Path,
		FileSet: fs,
		FileID:  id,
		Bag:     bag,
		Symbols: collectSymbols(res),
		Timer:   timer,
	}
	status := pipeline.StatusDone
	if bag.HasErrors() {
		status = pipeline.StatusError
	}
	emit(opts.Sink, pipeline.Event{
		File: file.Path, Stage: pipeline.StageCheck, Status: status,
		Elapsed: time.Since(started),
	})
	return out
}

// collectSymbols flattens accepted declarations into their tool-facing
// summaries. Re-declarations resolve to one FuncID, so duplicates are
// folded.
func collectSymbols(res sema.Result) []SymbolInfo {
	if len(res.Funcs) == 0 {
		return nil
	}
	seen := make(map[symbols.FuncID]bool, len(res.Funcs))
	out := make([]SymbolInfo, 0, len(res.Funcs))
	for _, id := range res.Funcs {
		if seen[id] {
			continue
		}
		seen[id] = true
		fd := res.Symbols.Func(id)
		if fd == nil {
			continue
		}
		info := SymbolInfo{
			Name:       fd.Name,
			Mangled:    fd.MangledName(res.Types),
			Signature:  fd.Description(res.Types),
			EntryPoint: fd.IsEntryPoint,
			Start:      fd.Span.Start,
			End:        fd.Span.End,
		}
		if fd.IsIntrinsic() {
			info.Intrinsic = fd.Intrinsic.String()
		}
		out = append(out, info)
	}
	return out
}

func emit(sink pipeline.Sink, evt pipeline.Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}
