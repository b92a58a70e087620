// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns parsed articles into transition triplets and applies
// the per-transition usage cap.
package extract

import (
	"fmt"
	"strings"

	"github.com/pdiddy/transition-engine/internal/match"
	"github.com/pdiddy/transition-engine/pkg/types"
)

// Triplets extracts every (paragraph_a, transition, paragraph_b) triplet from
// the given articles. For each article, each transition phrase is compiled
// into a tolerant matcher and every non-overlapping occurrence in the
// narrative yields one triplet: the trimmed text before the match, the
// canonical phrase, and the trimmed text after it.
//
// The Transition field carries the phrase as listed for the article, not the
// substring actually matched. Output order is article order, then
// transition-list order, then left-to-right match order.
func Triplets(articles []types.Article) ([]types.Triplet, error) {
	var triplets []types.Triplet

	for _, article := range articles {
		for _, phrase := range article.Transitions {
			if phrase == "" {
				continue
			}

			re, err := match.Compile(phrase)
			if err != nil {
				return nil, fmt.Errorf("building matcher: %w", err)
			}

			for _, span := range re.FindAllStringIndex(article.Narrative, -1) {
				start, end := span[0], span[1]
				triplets = append(triplets, types.Triplet{
					ParagraphA: strings.TrimSpace(article.Narrative[:start]),
					Transition: phrase,
					ParagraphB: strings.TrimSpace(article.Narrative[end:]),
				})
			}
		}
	}

	return triplets, nil
}
