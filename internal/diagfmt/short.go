package diagfmt

import (
	"fmt"
	"io"

	"gloss/internal/diag"
	"gloss/internal/source"
)

// Short renders one line per diagnostic, the grep-friendly subset of
// Pretty without snippets or notes.
func Short(w io.Writer, diags []*diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range diags {
		if d == nil {
			continue
		}
		sev := severityStyle(d.Severity)
		fmt.Fprintf(w, "%s: %s[%s]: %s\n",
			paint(opts, locColor, formatLoc(fs, d.Primary)),
			paint(opts, sev, d.Severity.Label()), d.Code.ID(), d.Message)
	}
}
