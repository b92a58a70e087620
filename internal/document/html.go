// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// HTMLReader reads paragraphs from an HTML document by converting it to
// Markdown and splitting on lines. Markup that does not survive the
// conversion (scripts, styles) is dropped with it.
type HTMLReader struct {
	converter *md.Converter
}

// NewHTMLReader creates an HTML reader with a default converter.
func NewHTMLReader() *HTMLReader {
	return &HTMLReader{converter: md.NewConverter("", true, nil)}
}

// Paragraphs reads the HTML file, converts it to Markdown, and returns the
// trimmed lines. Blank lines stay in the stream as empty strings.
func (h *HTMLReader) Paragraphs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading HTML: %w", err)
	}

	markdown, err := h.converter.ConvertString(string(data))
	if err != nil {
		return nil, fmt.Errorf("converting HTML: %w", err)
	}

	lines := strings.Split(markdown, "\n")
	paragraphs := make([]string, len(lines))
	for i, line := range lines {
		paragraphs[i] = strings.TrimSpace(line)
	}
	return paragraphs, nil
}
