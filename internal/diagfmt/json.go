package diagfmt

import (
	"encoding/json"
	"io"

	"gloss/internal/diag"
	"gloss/internal/source"
)

// Position is a resolved 1-based location.
type Position struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

// JSONNote mirrors diag.Note with resolved positions.
type JSONNote struct {
	Path    string   `json:"path"`
	Start   Position `json:"start"`
	Message string   `json:"message"`
}

// JSONDiagnostic is the machine-readable form of one diagnostic.
type JSONDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Title    string     `json:"title"`
	Message  string     `json:"message"`
	Path     string     `json:"path"`
	Start    Position   `json:"start"`
	End      Position   `json:"end"`
	Notes    []JSONNote `json:"notes,omitempty"`
}

// JSONReport is the top-level JSON payload for one check run.
type JSONReport struct {
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// BuildJSONReport converts diagnostics into the serializable report form.
func BuildJSONReport(diags []*diag.Diagnostic, fs *source.FileSet, opts JSONOpts) JSONReport {
	report := JSONReport{Diagnostics: make([]JSONDiagnostic, 0, len(diags))}
	for _, d := range diags {
		if d == nil {
			continue
		}
		switch d.Severity {
		case diag.SevError:
			report.Errors++
		case diag.SevWarning:
			report.Warnings++
		}
		jd := JSONDiagnostic{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
		}
		jd.Path, jd.Start, jd.End = resolve(fs, d.Primary)
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jn := JSONNote{Message: n.Msg}
				jn.Path, jn.Start, _ = resolve(fs, n.Span)
				jd.Notes = append(jd.Notes, jn)
			}
		}
		report.Diagnostics = append(report.Diagnostics, jd)
	}
	return report
}

// JSON writes the report for diags to w.
func JSON(w io.Writer, diags []*diag.Diagnostic, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(BuildJSONReport(diags, fs, opts))
}

func resolve(fs *source.FileSet, sp source.Span) (string, Position, Position) {
	file := fs.Get(sp.File)
	if file == nil {
		return "", Position{}, Position{}
	}
	start, end := fs.Resolve(sp)
	return file.Path,
		Position{Line: start.Line, Col: start.Col},
		Position{Line: end.Line, Col: end.Col}
}
