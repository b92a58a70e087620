// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"fmt"
	"os"
	"strings"
)

// TextReader reads paragraphs from a plain-text or Markdown file, one
// paragraph per line.
type TextReader struct{}

// Paragraphs returns the trimmed lines of the file.
func (t *TextReader) Paragraphs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	paragraphs := make([]string, len(lines))
	for i, line := range lines {
		paragraphs[i] = strings.TrimSpace(line)
	}
	return paragraphs, nil
}
