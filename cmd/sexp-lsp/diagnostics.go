package main

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/sexp-format/sexp/debug"
	"github.com/sexp-format/sexp/ir"
	"github.com/sexp-format/sexp/parse"
	"github.com/sexp-format/sexp/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	root      *ir.Node
	parseErr  error
	positions map[*ir.Node]*token.Pos
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[*ir.Node]*token.Pos)
	root, err := parse.Parse([]byte(content), parse.ParsePositions(positions))
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		root:      root,
		parseErr:  err,
		positions: positions,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp: %d diagnostics for %s\n", len(diagnostics), uri)
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if doc.parseErr != nil {
		diagnostic := protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: 0, Character: 0},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  doc.parseErr.Error(),
			Source:   "sexp",
		}

		// errors render positions as "... (line=L, col=C)"
		if pos := extractPosition(doc.parseErr.Error()); pos != nil {
			diagnostic.Range = protocol.Range{
				Start: protocol.Position{
					Line:      uint32(pos.line),
					Character: uint32(pos.col),
				},
				End: protocol.Position{
					Line:      uint32(pos.line),
					Character: uint32(pos.col + 1),
				},
			}
		}

		diagnostics = append(diagnostics, diagnostic)
	}

	return diagnostics
}

type position struct {
	line int
	col  int
}

func extractPosition(errMsg string) *position {
	var line, col int
	_, err := fmt.Sscanf(errMsg, "%*[^l]line=%d%*[^c]col=%d", &line, &col)
	if err != nil {
		return nil
	}
	return &position{line: line, col: col}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("open %s", params.TextDocument.URI)
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		// a zero range means full document replacement
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			content = change.Text
		} else {
			start := rangeVal.Start
			end := rangeVal.End
			contentRunes := []rune(content)
			startOffset := lineColToOffset(content, int(start.Line), int(start.Character))
			endOffset := lineColToOffset(content, int(end.Line), int(end.Character))
			if startOffset < len(contentRunes) && endOffset <= len(contentRunes) {
				content = string(contentRunes[:startOffset]) + change.Text + string(contentRunes[endOffset:])
			}
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
