package diag

import (
	"testing"

	"gloss/internal/source"
)

func TestFormatGoldenDiagnostics(t *testing.T) {
	fileSet := source.NewFileSet()

	userFile := fileSet.Add("testdata/golden/sample.gls", []byte("a\nb\n"), 0)
	preludeFile := fileSet.Add("builtin:prelude.gls", []byte("x\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: userFile, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: preludeFile, Start: 0, End: 0}, Msg: "skip me"},
				{Span: source.Span{File: userFile, Start: 2, End: 3}, Msg: "note line"},
			},
		},
		{
			Severity: SevWarning,
			Code:     SemaSymbolRedefined,
			Message:  "another",
			Primary:  source.Span{File: userFile, Start: 2, End: 3},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.gls:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.gls:2:1 note line\n" +
		"warning SEM3002 testdata/golden/sample.gls:2:1 another"

	if got := FormatGoldenDiagnostics(diags, fileSet, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestFormatShortKeepsBuiltinPaths(t *testing.T) {
	fileSet := source.NewFileSet()
	preludeFile := fileSet.Add("builtin:prelude.gls", []byte("bad\n"), 0)

	diags := []*Diagnostic{
		{
			Severity: SevError,
			Code:     SemaUnknownType,
			Message:  "unknown type 'flaot'",
			Primary:  source.Span{File: preludeFile, Start: 0, End: 3},
		},
	}

	if got := FormatGoldenDiagnostics(diags, fileSet, false); got != "" {
		t.Fatalf("golden format should drop builtin paths, got %q", got)
	}

	want := "error SEM3001 builtin:prelude.gls:1:1 unknown type 'flaot'"
	if got := FormatShortDiagnostics(diags, fileSet, false); got != want {
		t.Fatalf("short format = %q, want %q", got, want)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(16)
	spanA := source.Span{File: 0, Start: 10, End: 12}
	spanB := source.Span{File: 0, Start: 2, End: 4}

	bag.Add(New(SevWarning, SemaInfo, spanA, "later"))
	bag.Add(New(SevError, SemaSymbolRedefined, spanB, "earlier"))
	bag.Add(New(SevError, SemaSymbolRedefined, spanB, "earlier"))

	bag.Sort()
	bag.Dedup()

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics after dedup, got %d", bag.Len())
	}
	if bag.Items()[0].Message != "earlier" {
		t.Errorf("sort put %q first", bag.Items()[0].Message)
	}
	if !bag.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestDedupReporterSuppressesRepeats(t *testing.T) {
	bag := NewBag(8)
	rep := NewDedupReporter(BagReporter{Bag: bag})
	span := source.Span{File: 0, Start: 0, End: 1}

	rep.Report(SemaUnknownType, SevError, span, "unknown type 'vec9'", nil)
	rep.Report(SemaUnknownType, SevError, span, "unknown type 'vec9'", nil)
	rep.Report(SemaUnknownType, SevError, span, "unknown type 'vec8'", nil)

	if bag.Len() != 2 {
		t.Fatalf("expected 2 unique diagnostics, got %d", bag.Len())
	}
}
