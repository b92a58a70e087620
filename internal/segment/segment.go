// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits a paragraph stream into article blocks at marker
// boundaries and parses the blocks into Article records.
package segment

import (
	"strings"

	"github.com/pdiddy/transition-engine/pkg/types"
)

// Blocks scans the paragraph stream sequentially and groups paragraphs into
// raw blocks separated by marker lines. A paragraph containing the marker
// substring (case-sensitive) closes the block accumulated so far, if any, and
// is itself added to no block. Empty paragraphs are skipped. The trailing
// accumulator, if non-empty, becomes the final block.
func Blocks(paragraphs []string, marker string) [][]string {
	if marker == "" {
		marker = types.DefaultMarker
	}

	var blocks [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, current)
			current = nil
		}
	}

	for _, p := range paragraphs {
		text := strings.TrimSpace(p)
		if strings.Contains(text, marker) {
			flush()
			continue
		}
		if text != "" {
			current = append(current, text)
		}
	}

	flush()
	return blocks
}
