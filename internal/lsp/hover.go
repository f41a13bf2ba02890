package lsp

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"gloss/internal/driver"
	"gloss/internal/source"
)

func (s *Server) handleHover(msg *rpcMessage) error {
	var params protocol.HoverParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	res, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}

	file := fileFor(res)
	offset := offsetForPosition(file, params.Position)
	info, ok := symbolAt(res, offset)
	if !ok {
		return s.sendResponse(msg.ID, nil)
	}

	span := source.Span{File: res.FileID, Start: info.Start, End: info.End}
	r := rangeForSpan(file, span)
	return s.sendResponse(msg.ID, &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(info),
		},
		Range: &r,
	})
}

// symbolAt finds the declaration whose span contains the byte offset.
// Declarations never nest, so the first hit wins.
func symbolAt(res *driver.CheckResult, offset uint32) (driver.SymbolInfo, bool) {
	for _, info := range res.Symbols {
		if offset >= info.Start && offset < info.End {
			return info, true
		}
	}
	return driver.SymbolInfo{}, false
}

func hoverText(info driver.SymbolInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "```gloss\n%s\n```\n", info.Signature)
	if info.EntryPoint {
		b.WriteString("\nentry point\n")
	}
	fmt.Fprintf(&b, "\nmangled: `%s`\n", info.Mangled)
	if info.Intrinsic != "" {
		fmt.Fprintf(&b, "\nintrinsic: `%s`\n", info.Intrinsic)
	}
	return b.String()
}
