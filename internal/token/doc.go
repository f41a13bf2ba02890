// Package token defines lexical token kinds and trivia for Gloss source.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Builtin type names (float, half4, texture2D, ...) are identifiers.
//     They are recognized by the semantic layer, not the lexer.
//   - '$'-prefixed identifiers lex as ordinary Ident tokens; whether they
//     are legal is decided by the semantic layer (builtin code only).
//   - Comments and whitespace are leading trivia and never appear in the
//     main token stream.
package token
