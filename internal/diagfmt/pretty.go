package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gloss/internal/diag"
	"gloss/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	locColor     = color.New(color.Bold)
	caretColor   = color.New(color.FgGreen, color.Bold)
	noteColor    = color.New(color.FgBlue)
)

// Pretty renders each diagnostic as
//
//	<path>:<line>:<col>: <severity>[<CODE>]: <message>
//
// followed by the offending source line with a caret underline, then any
// notes in the same layout. The caller is expected to Sort() the bag first.
func Pretty(w io.Writer, diags []*diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range diags {
		if d == nil {
			continue
		}
		sev := severityStyle(d.Severity)
		head := fmt.Sprintf("%s[%s]", paint(opts, sev, d.Severity.Label()), d.Code.ID())
		fmt.Fprintf(w, "%s: %s: %s\n", paint(opts, locColor, formatLoc(fs, d.Primary)), head, d.Message)
		writeSnippet(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				fmt.Fprintf(w, "%s: %s: %s\n",
					paint(opts, locColor, formatLoc(fs, n.Span)),
					paint(opts, noteColor, "note"), n.Msg)
				writeSnippet(w, fs, n.Span, opts)
			}
		}
	}
}

func severityStyle(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func paint(opts PrettyOpts, c *color.Color, s string) string {
	if !opts.Color {
		return s
	}
	return c.Sprint(s)
}

func formatLoc(fs *source.FileSet, sp source.Span) string {
	file := fs.Get(sp.File)
	if file == nil {
		return "<unknown>"
	}
	start, _ := fs.Resolve(sp)
	return fmt.Sprintf("%s:%d:%d", file.Path, start.Line, start.Col)
}

// writeSnippet prints the source line under the span with a caret run.
// Multi-line spans underline only their first line.
func writeSnippet(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	file := fs.Get(sp.File)
	if file == nil || sp.Empty() && sp.Start == 0 {
		return
	}
	start, _ := fs.Resolve(sp)
	line := file.Line(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	col := int(start.Col) - 1
	if col < 0 || col > len(line) {
		return
	}
	width := int(sp.Len())
	if width < 1 {
		width = 1
	}
	if rest := len(line) - col; width > rest {
		width = rest
	}
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", col), paint(opts, caretColor, underline))
}
