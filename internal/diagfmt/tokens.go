package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gloss/internal/source"
	"gloss/internal/token"
)

// TokenJSON is the machine-readable form of one token.
type TokenJSON struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// TokensPretty lists tokens one per line with their resolved positions.
func TokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if leading := triviaNames(tok); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// TokensJSON emits the token stream as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenJSON{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Leading: triviaNames(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func triviaNames(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	names := make([]string, 0, len(tok.Leading))
	for _, trivia := range tok.Leading {
		names = append(names, trivia.Kind.String())
	}
	return names
}
