// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"strings"

	"github.com/pdiddy/transition-engine/pkg/types"
)

// ParseArticles converts raw blocks into Article records, preserving order.
//
// The first block holds whatever text precedes the first marker line (title,
// blurb) and is always discarded, regardless of its content. A block with
// fewer than 2 lines cannot hold a narrative plus at least one transition and
// is silently skipped. For a valid block, line 0 is the narrative paragraph
// and the remaining lines are the transition candidates, dropping entries
// that are empty after trimming.
func ParseArticles(blocks [][]string) []types.Article {
	if len(blocks) < 2 {
		return nil
	}

	var articles []types.Article
	for _, block := range blocks[1:] {
		if len(block) < 2 {
			continue
		}

		var transitions []string
		for _, t := range block[1:] {
			if trimmed := strings.TrimSpace(t); trimmed != "" {
				transitions = append(transitions, trimmed)
			}
		}

		articles = append(articles, types.Article{
			Narrative:   block[0],
			Transitions: transitions,
		})
	}
	return articles
}
