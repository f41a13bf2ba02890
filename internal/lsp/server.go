// Package lsp serves editors over stdio JSON-RPC: full-text document
// sync, push diagnostics from the checker, document symbols and hover.
package lsp

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"gloss/internal/ast"
	"gloss/internal/project"
	"gloss/internal/sema"
	"gloss/internal/version"
)

var (
	// ErrExit signals a graceful shutdown after receiving "exit".
	ErrExit = errors.New("lsp exit")
	// ErrExitWithoutShutdown signals an "exit" without a preceding "shutdown".
	ErrExitWithoutShutdown = errors.New("lsp exit without shutdown")
)

// ServerOptions configure LSP server behavior.
type ServerOptions struct {
	// MaxDiagnostics caps diagnostics per published file. Zero means 100.
	MaxDiagnostics int
}

// Server handles stdio JSON-RPC for the gloss language server. One
// goroutine reads and dispatches; sendMu serializes writes because
// publishes can race responses.
type Server struct {
	in     *bufio.Reader
	out    *bufio.Writer
	sendMu sync.Mutex

	mu   sync.Mutex
	docs map[uri.URI]*document

	workspaceRoot     string
	cfg               sema.Config
	maxDiagnostics    int
	shutdownRequested bool
}

// NewServer constructs a server reading requests from in and writing
// responses to out.
func NewServer(in io.Reader, out io.Writer, opts ServerOptions) *Server {
	maxDiagnostics := opts.MaxDiagnostics
	if maxDiagnostics <= 0 {
		maxDiagnostics = 100
	}
	return &Server{
		in:             bufio.NewReader(in),
		out:            bufio.NewWriter(out),
		docs:           make(map[uri.URI]*document),
		cfg:            sema.Config{Kind: ast.KindGeneric},
		maxDiagnostics: maxDiagnostics,
	}
}

// Run serves requests until the client disconnects or asks to exit.
func (s *Server) Run() error {
	for {
		payload, err := readMessage(s.in)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		var msg rpcMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			s.logf("failed to parse message: %v", err)
			continue
		}
		if msg.Method == "" {
			continue
		}
		if err := s.handleMessage(&msg); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

func (s *Server) handleMessage(msg *rpcMessage) error {
	switch msg.Method {
	case "initialize":
		return s.handleInitialize(msg)
	case "initialized":
		return nil
	case "shutdown":
		return s.handleShutdown(msg)
	case "exit":
		if s.shutdownRequested {
			return ErrExit
		}
		return ErrExitWithoutShutdown
	case "textDocument/didOpen":
		return s.handleDidOpen(msg)
	case "textDocument/didChange":
		return s.handleDidChange(msg)
	case "textDocument/didClose":
		return s.handleDidClose(msg)
	case "textDocument/documentSymbol":
		return s.handleDocumentSymbol(msg)
	case "textDocument/hover":
		return s.handleHover(msg)
	case "$/cancelRequest":
		return nil
	default:
		if len(msg.ID) > 0 {
			return s.sendError(msg.ID, codeMethodNotFound, "method not found: "+msg.Method)
		}
		return nil
	}
}

func (s *Server) handleInitialize(msg *rpcMessage) error {
	var params protocol.InitializeParams
	if len(msg.Params) > 0 {
		if err := json.Unmarshal(msg.Params, &params); err != nil {
			return s.sendError(msg.ID, codeInvalidParams, "invalid params")
		}
	}
	root := ""
	if params.RootURI != "" {
		root = uriPath(params.RootURI)
	}
	if root == "" && params.RootPath != "" {
		root = params.RootPath
	}
	if root != "" {
		if abs, err := filepath.Abs(root); err == nil {
			root = abs
		}
	}

	cfg := sema.Config{Kind: ast.KindGeneric}
	if root != "" {
		if m, found, err := project.LoadNearest(root); err != nil {
			s.logf("manifest: %v", err)
		} else if found {
			kind, _ := m.ProgramKind()
			cfg.Kind = kind
			cfg.Strict = m.Program.Strict
		}
	}

	s.mu.Lock()
	s.workspaceRoot = root
	s.cfg = cfg
	s.mu.Unlock()

	result := map[string]any{
		"capabilities": map[string]any{
			"textDocumentSync": map[string]any{
				"openClose": true,
				"change":    1, // full sync; documents are single files
			},
			"hoverProvider":          true,
			"documentSymbolProvider": true,
		},
		"serverInfo": map[string]any{
			"name":    "gloss-lsp",
			"version": version.Plain(),
		},
	}
	return s.sendResponse(msg.ID, result)
}

func (s *Server) handleShutdown(msg *rpcMessage) error {
	s.mu.Lock()
	s.shutdownRequested = true
	docs := make([]uri.URI, 0, len(s.docs))
	for u := range s.docs {
		docs = append(docs, u)
	}
	s.docs = make(map[uri.URI]*document)
	s.mu.Unlock()
	for _, u := range docs {
		if err := s.publish(u, 0, nil); err != nil {
			s.logf("failed to clear diagnostics: %v", err)
		}
	}
	return s.sendResponse(msg.ID, nil)
}

func (s *Server) sendResponse(id json.RawMessage, result any) error {
	return s.send(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"result":  result,
	})
}

func (s *Server) sendError(id json.RawMessage, code int, message string) error {
	return s.send(map[string]any{
		"jsonrpc": "2.0",
		"id":      id,
		"error":   rpcError{Code: code, Message: message},
	})
}

func (s *Server) sendNotification(method string, params any) error {
	return s.send(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
	})
}

func (s *Server) send(msg any) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := writeMessage(s.out, payload); err != nil {
		return err
	}
	return s.out.Flush()
}

func (s *Server) logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "lsp: "+format+"\n", args...)
}
