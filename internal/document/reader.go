// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document reads source documents into ordered paragraph streams.
// Different backends (DOCX, HTML, plain text) implement the Reader interface;
// ForPath picks one from the file extension.
package document

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Reader extracts the ordered paragraph texts of a document. Paragraphs are
// whitespace-trimmed; empty strings mark blank lines and are preserved in
// the stream.
type Reader interface {
	// Paragraphs reads the document at path and returns its paragraphs
	// in document order.
	Paragraphs(path string) ([]string, error)
}

// ForPath returns the Reader for the file's extension: .docx, .html/.htm,
// or plain text for everything else.
func ForPath(path string) Reader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".docx":
		return &DocxReader{}
	case ".html", ".htm":
		return NewHTMLReader()
	default:
		return &TextReader{}
	}
}

// Paragraphs reads the document at path with the backend matching its
// extension. A document that cannot be opened or parsed is a fatal condition
// for the whole run; the error is returned to the caller, not raised through
// the pipeline.
func Paragraphs(path string) ([]string, error) {
	paragraphs, err := ForPath(path).Paragraphs(path)
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", path, err)
	}
	return paragraphs, nil
}
