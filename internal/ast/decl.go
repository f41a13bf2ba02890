// Package ast holds the declaration-level syntax tree. Function bodies are
// never represented: the parser records that a body was present and skips
// its tokens. Type references stay syntactic (name plus optional array
// suffix); resolution against the type interner happens in sema.
package ast

import "gloss/internal/source"

// TypeRef is an unresolved type reference as written in source.
type TypeRef struct {
	Name     string
	NameSpan source.Span
	Span     source.Span // full reference including any array suffix
	IsArray  bool
	Size     int64       // array length literal, valid when IsArray
	SizeSpan source.Span // valid when IsArray
}

// Param is one function parameter. Name is empty for anonymous parameters
// (the prelude declares `$genType sin($genType);`).
type Param struct {
	Modifiers Modifiers
	Type      TypeRef
	Name      string
	NameSpan  source.Span
	Span      source.Span
}

// FuncDecl is a function prototype or definition. Span covers the
// signature through the closing parenthesis; the skipped body is not
// part of it.
type FuncDecl struct {
	Modifiers  Modifiers
	ReturnType TypeRef
	Name       string
	NameSpan   source.Span
	Params     []Param
	HasBody    bool
	Span       source.Span
}

// Field is one struct member.
type Field struct {
	Type     TypeRef
	Name     string
	NameSpan source.Span
	Span     source.Span
}

// StructDecl declares a nominal struct type.
type StructDecl struct {
	Name     string
	NameSpan source.Span
	Fields   []Field
	Span     source.Span
}

// GlobalDecl declares a program-level variable (typically a uniform or an
// effect child handle).
type GlobalDecl struct {
	Modifiers Modifiers
	Type      TypeRef
	Name      string
	NameSpan  source.Span
	Span      source.Span
}

// Decl is the closed set of top-level declarations.
type Decl interface {
	DeclSpan() source.Span
	declNode()
}

func (d *FuncDecl) DeclSpan() source.Span   { return d.Span }
func (d *StructDecl) DeclSpan() source.Span { return d.Span }
func (d *GlobalDecl) DeclSpan() source.Span { return d.Span }

func (*FuncDecl) declNode()   {}
func (*StructDecl) declNode() {}
func (*GlobalDecl) declNode() {}

// File is the parse result for one source file.
type File struct {
	ID    source.FileID
	Decls []Decl
}
