package lsp

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"
	"go.lsp.dev/protocol"

	"gloss/internal/source"
)

// LSP positions count UTF-16 code units; spans count bytes. Both
// directions walk the line once, which is fine at source-file sizes.

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return ^uint32(0)
	}
	return v
}

// offsetForPosition converts an LSP position into a byte offset, clamping
// past-the-end positions to the file or line boundary.
func offsetForPosition(file *source.File, pos protocol.Position) uint32 {
	if file == nil || len(file.Content) == 0 {
		return 0
	}
	content := file.Content
	contentLen := safeUint32(len(content))
	line := int(pos.Line)
	if line >= len(file.LineIdx)+1 {
		return contentLen
	}
	var lineStart uint32
	if line > 0 {
		lineStart = file.LineIdx[line-1] + 1
	}
	lineEnd := contentLen
	if line < len(file.LineIdx) {
		lineEnd = file.LineIdx[line]
	}
	if lineStart > lineEnd {
		return lineEnd
	}

	target := int(pos.Character)
	units := 0
	off := lineStart
	for off < lineEnd && units < target {
		r, size := utf8.DecodeRune(content[off:lineEnd])
		need := 1
		if r > 0xFFFF {
			need = 2
		}
		if units+need > target {
			break
		}
		units += need
		off += safeUint32(size)
	}
	return off
}

// positionForOffset converts a byte offset into an LSP position.
func positionForOffset(file *source.File, offset uint32) protocol.Position {
	if file == nil {
		return protocol.Position{}
	}
	contentLen := safeUint32(len(file.Content))
	if offset > contentLen {
		offset = contentLen
	}
	lineIdx := file.LineIdx
	idx := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= offset })
	var lineStart uint32
	if idx > 0 {
		lineStart = lineIdx[idx-1] + 1
	}
	if lineStart > offset {
		lineStart = offset
	}
	units := 0
	for off := lineStart; off < offset; {
		r, size := utf8.DecodeRune(file.Content[off:offset])
		if off+safeUint32(size) > offset {
			break
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		off += safeUint32(size)
	}
	return protocol.Position{Line: safeUint32(idx), Character: safeUint32(units)}
}

func rangeForSpan(file *source.File, span source.Span) protocol.Range {
	if file == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: positionForOffset(file, span.Start),
		End:   positionForOffset(file, span.End),
	}
}
