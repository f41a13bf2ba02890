package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"windows line endings", "a\r\nb\r\n", "a\nb\n", true},
		{"lone CR preserved", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"trailing CR", "abc\r", "abc\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if string(got) != tt.want {
				t.Errorf("normalizeCRLF(%q) = %q, want %q", tt.in, string(got), tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	got, had := removeBOM(withBOM)
	if !had || string(got) != "hi" {
		t.Errorf("removeBOM failed: got %q, had=%v", string(got), had)
	}

	plain := []byte("hi")
	got, had = removeBOM(plain)
	if had || string(got) != "hi" {
		t.Errorf("removeBOM on plain input: got %q, had=%v", string(got), had)
	}

	short := []byte{0xEF}
	if _, had = removeBOM(short); had {
		t.Error("removeBOM on short input reported a BOM")
	}
}

func TestToLineCol(t *testing.T) {
	// Content "ab\ncd\nef" has newlines at offsets 2 and 5.
	lineIdx := []uint32{2, 5}

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself belongs to line 1
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{6, LineCol{3, 1}},
		{7, LineCol{3, 2}},
	}
	for _, tt := range tests {
		if got := toLineCol(lineIdx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	// Empty index: everything is line 1.
	if got := toLineCol(nil, 7); got != (LineCol{1, 8}) {
		t.Errorf("toLineCol with empty index = %+v, want {1 8}", got)
	}
}

func TestNormalizePath(t *testing.T) {
	if got := normalizePath("./a/b/../c.gls"); got != "a/c.gls" {
		t.Errorf("normalizePath = %q, want %q", got, "a/c.gls")
	}
}
