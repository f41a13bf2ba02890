package lsp

import (
	"encoding/json"

	"go.lsp.dev/protocol"

	"gloss/internal/source"
)

func (s *Server) handleDocumentSymbol(msg *rpcMessage) error {
	var params protocol.DocumentSymbolParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return s.sendError(msg.ID, codeInvalidParams, "invalid params")
	}
	res, ok := s.snapshot(params.TextDocument.URI)
	if !ok {
		return s.sendResponse(msg.ID, []protocol.DocumentSymbol{})
	}

	file := fileFor(res)
	symbols := make([]protocol.DocumentSymbol, 0, len(res.Symbols))
	for _, info := range res.Symbols {
		span := source.Span{File: res.FileID, Start: info.Start, End: info.End}
		r := rangeForSpan(file, span)
		detail := info.Signature
		if info.EntryPoint {
			detail += " (entry point)"
		}
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           info.Name,
			Detail:         detail,
			Kind:           protocol.SymbolKindFunction,
			Range:          r,
			SelectionRange: r,
		})
	}
	return s.sendResponse(msg.ID, symbols)
}
