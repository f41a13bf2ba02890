package driver

import (
	"fmt"

	"gloss/internal/diag"
	"gloss/internal/lexer"
	"gloss/internal/source"
	"gloss/internal/token"
)

// TokenizeResult holds the token stream for one file plus any lexical
// diagnostics.
type TokenizeResult struct {
	Tokens  []token.Token
	FileSet *source.FileSet
	FileID  source.FileID
	Bag     *diag.Bag
}

// Tokenize lexes one file to EOF. Lexical errors land in the bag, not
// the returned error.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	file := fs.Get(id)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &TokenizeResult{Tokens: tokens, FileSet: fs, FileID: id, Bag: bag}, nil
}
