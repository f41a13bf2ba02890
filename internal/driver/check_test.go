package driver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"gloss/internal/ast"
	"gloss/internal/pipeline"
	"gloss/internal/sema"
)

const shaderSrc = `
uniform shader background;

half4 tint(half4 c, half amount) {
    return c * amount;
}

half4 main(float2 coords) {
    return tint(sample(background, coords), 0.5);
}
`

func shaderOpts() Options {
	return Options{Config: sema.Config{Kind: ast.KindShader}}
}

func TestCheckSourceAccepts(t *testing.T) {
	res := CheckSource("effect.gls", []byte(shaderSrc), shaderOpts())
	if res.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	names := make(map[string]SymbolInfo, len(res.Symbols))
	for _, s := range res.Symbols {
		names[s.Name] = s
	}
	if !names["main"].EntryPoint {
		t.Error("main not flagged as entry point")
	}
	if names["main"].Mangled != "main" {
		t.Errorf("entry point mangled to %q, want literal name", names["main"].Mangled)
	}
	if names["tint"].Mangled != "tint_h4h4h" {
		t.Errorf("tint mangled to %q, want tint_h4h4h", names["tint"].Mangled)
	}
}

func TestCheckSourceReportsErrors(t *testing.T) {
	res := CheckSource("bad.gls", []byte("float2 main() { return float2(0); }\n"),
		Options{Config: sema.Config{Kind: ast.KindShader}})
	if !res.HasErrors() {
		t.Fatal("shader with float2 main should fail")
	}
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckFileCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "effect.gls", shaderSrc)
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := shaderOpts()
	opts.Cache = cache

	first, err := CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.FromCache {
		t.Fatal("first check cannot hit the cache")
	}

	second, err := CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache {
		t.Fatal("second check should replay from cache")
	}
	if len(second.Symbols) != len(first.Symbols) {
		t.Fatalf("cached symbols = %d, want %d", len(second.Symbols), len(first.Symbols))
	}
	for i := range first.Symbols {
		if second.Symbols[i] != first.Symbols[i] {
			t.Errorf("symbol %d mismatch: %+v vs %+v", i, second.Symbols[i], first.Symbols[i])
		}
	}

	// A different configuration must miss.
	strict := opts
	strict.Config.Strict = true
	third, err := CheckFile(path, strict)
	if err != nil {
		t.Fatal(err)
	}
	if third.FromCache {
		t.Error("config change should invalidate the cache key")
	}
}

func TestCacheReplaysDiagnostics(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "bad.gls", "half4 main(half4 c) { return c; }\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := shaderOpts()
	opts.Cache = cache

	first, err := CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CheckFile(path, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !second.FromCache || !second.HasErrors() {
		t.Fatalf("cached result should replay errors (fromCache=%v)", second.FromCache)
	}
	if first.Bag.Len() != second.Bag.Len() {
		t.Errorf("replayed %d diagnostics, want %d", second.Bag.Len(), first.Bag.Len())
	}
	a, b := first.Bag.Items(), second.Bag.Items()
	for i := range a {
		if a[i].Code != b[i].Code || a[i].Message != b[i].Message ||
			a[i].Primary.Start != b[i].Primary.Start {
			t.Errorf("diagnostic %d differs after replay: %+v vs %+v", i, a[i], b[i])
		}
	}
}

// countingSink records events; must tolerate concurrent workers.
type countingSink struct {
	mu     sync.Mutex
	events []pipeline.Event
}

func (s *countingSink) OnEvent(evt pipeline.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "a.gls", shaderSrc)
	writeSource(t, dir, "b.gls", "half4 main() { return half4(1); }\n") // missing coords
	writeSource(t, dir, "notes.txt", "not a source file")

	sink := &countingSink{}
	opts := shaderOpts()
	opts.Sink = sink
	opts.Jobs = 2

	results, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("checked %d files, want 2", len(results))
	}
	if filepath.Base(results[0].Path) != "a.gls" || filepath.Base(results[1].Path) != "b.gls" {
		t.Errorf("results out of order: %s, %s", results[0].Path, results[1].Path)
	}
	if results[0].HasErrors() {
		t.Errorf("a.gls should be clean: %v", results[0].Bag.Items())
	}
	if !results[1].HasErrors() {
		t.Error("b.gls should fail the shader shape rule")
	}

	sink.mu.Lock()
	defer sink.mu.Unlock()
	var queued int
	for _, evt := range sink.events {
		if evt.Status == pipeline.StatusQueued {
			queued++
		}
	}
	if queued != 2 {
		t.Errorf("queued events = %d, want 2", queued)
	}
}
