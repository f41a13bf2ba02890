package lexer

import (
	"testing"

	"gloss/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.gls", []byte(content))
	return fs.Get(id)
}

func TestSequentialReading(t *testing.T) {
	file := createFile("a\nb")
	cursor := NewCursor(file)

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %c", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek() = %c, want %c", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump() = %c, want %c", got, want)
		}
	}

	if !cursor.EOF() {
		t.Error("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump at EOF should return 0")
	}
}

func TestPeek2(t *testing.T) {
	file := createFile("xy")
	cursor := NewCursor(file)

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'x' || b1 != 'y' {
		t.Errorf("Peek2() = %c,%c,%v, want x,y,true", b0, b1, ok)
	}

	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Error("Peek2 with one byte left should report !ok")
	}
}

func TestMarkSpanReset(t *testing.T) {
	file := createFile("float2")
	cursor := NewCursor(file)

	m := cursor.Mark()
	for !cursor.EOF() {
		cursor.Bump()
	}

	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 6 || sp.File != file.ID {
		t.Errorf("SpanFrom = %+v", sp)
	}

	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Errorf("Reset did not rewind, Off = %d", cursor.Off)
	}
}

func TestEat(t *testing.T) {
	file := createFile("/=")
	cursor := NewCursor(file)

	if !cursor.Eat('/') {
		t.Error("Eat('/') = false, want true")
	}
	if cursor.Eat('/') {
		t.Error("Eat('/') on '=' should fail")
	}
	if !cursor.Eat('=') {
		t.Error("Eat('=') = false, want true")
	}
	if cursor.Eat('=') {
		t.Error("Eat at EOF should fail")
	}
}
