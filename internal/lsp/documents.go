package lsp

import (
	"encoding/json"
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"gloss/internal/diag"
	"gloss/internal/driver"
	"gloss/internal/source"
)

// document is one open editor buffer plus the check result for its
// current text.
type document struct {
	text    string
	version int32
	result  *driver.CheckResult
}

func (s *Server) handleDidOpen(msg *rpcMessage) error {
	var params protocol.DidOpenTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	u := params.TextDocument.URI
	doc := &document{
		text:    params.TextDocument.Text,
		version: params.TextDocument.Version,
	}
	s.mu.Lock()
	s.docs[u] = doc
	s.mu.Unlock()
	return s.recheck(u)
}

func (s *Server) handleDidChange(msg *rpcMessage) error {
	var params protocol.DidChangeTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	if len(params.ContentChanges) == 0 {
		return nil
	}
	u := params.TextDocument.URI
	// Full sync is advertised, so the last change carries the whole text.
	text := params.ContentChanges[len(params.ContentChanges)-1].Text

	s.mu.Lock()
	doc, ok := s.docs[u]
	if !ok {
		doc = &document{}
		s.docs[u] = doc
	}
	doc.text = text
	doc.version = params.TextDocument.Version
	s.mu.Unlock()
	return s.recheck(u)
}

func (s *Server) handleDidClose(msg *rpcMessage) error {
	var params protocol.DidCloseTextDocumentParams
	if err := json.Unmarshal(msg.Params, &params); err != nil {
		return err
	}
	u := params.TextDocument.URI
	s.mu.Lock()
	_, open := s.docs[u]
	delete(s.docs, u)
	s.mu.Unlock()
	if open {
		return s.publish(u, 0, nil)
	}
	return nil
}

// recheck runs the checker over the document's current text and pushes
// the resulting diagnostics.
func (s *Server) recheck(u uri.URI) error {
	s.mu.Lock()
	doc, ok := s.docs[u]
	if !ok {
		s.mu.Unlock()
		return nil
	}
	text := doc.text
	version := doc.version
	cfg := s.cfg
	s.mu.Unlock()

	res := driver.CheckSource(uriPath(u), []byte(text), driver.Options{
		Config:         cfg,
		MaxDiagnostics: s.maxDiagnostics,
	})

	s.mu.Lock()
	if doc, ok := s.docs[u]; ok && doc.version == version {
		doc.result = res
	}
	s.mu.Unlock()

	return s.publish(u, version, diagnosticsFor(u, res))
}

// snapshot returns the latest check result for an open document.
func (s *Server) snapshot(u uri.URI) (*driver.CheckResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[u]
	if !ok || doc.result == nil {
		return nil, false
	}
	return doc.result, true
}

func (s *Server) publish(u uri.URI, version int32, list []protocol.Diagnostic) error {
	if list == nil {
		list = []protocol.Diagnostic{}
	}
	return s.sendNotification(protocol.MethodTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         u,
		Version:     uint32(version),
		Diagnostics: list,
	})
}

// diagnosticsFor converts the bag into protocol diagnostics, with notes
// mapped to related information anchored in the same document.
func diagnosticsFor(u uri.URI, res *driver.CheckResult) []protocol.Diagnostic {
	refs := res.Refs()
	if len(refs) == 0 {
		return nil
	}
	file := res.FileSet.Get(res.FileID)
	out := make([]protocol.Diagnostic, 0, len(refs))
	for _, d := range refs {
		pd := protocol.Diagnostic{
			Range:    rangeForSpan(file, d.Primary),
			Severity: severityFor(d.Severity),
			Code:     d.Code.ID(),
			Source:   "gloss",
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			pd.RelatedInformation = append(pd.RelatedInformation, protocol.DiagnosticRelatedInformation{
				Location: protocol.Location{URI: u, Range: rangeForSpan(file, n.Span)},
				Message:  n.Msg,
			})
		}
		out = append(out, pd)
	}
	return out
}

func severityFor(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// uriPath extracts a filesystem path for file URIs and falls back to the
// raw string for anything else (untitled buffers).
func uriPath(u uri.URI) string {
	if strings.HasPrefix(string(u), "file://") {
		return u.Filename()
	}
	return string(u)
}

// fileFor is a shorthand used by position-based handlers.
func fileFor(res *driver.CheckResult) *source.File {
	return res.FileSet.Get(res.FileID)
}
