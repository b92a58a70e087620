// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"github.com/pdiddy/transition-engine/pkg/types"
)

// CapResult holds the outcome of one capping pass. The usage tracker and the
// duplicate accumulator belong to the result of a single run; nothing is
// shared across runs.
type CapResult struct {
	// Final is the order-preserving subset of raw triplets that stayed
	// within the cap.
	Final []types.Triplet

	// Duplicates maps a transition to the triplets rejected for it, in
	// original order.
	Duplicates map[string][]types.Triplet

	// Usage maps a transition to its accepted count,
	// min(total occurrences, cap).
	Usage map[string]int
}

// Cap enforces the per-transition usage cap over the raw triplet sequence.
// Triplets are processed strictly in input order in a single pass: while a
// transition's accepted count is below max the triplet is accepted, after
// that it lands in Duplicates. Zero or negative max uses
// types.DefaultMaxUses.
func Cap(raw []types.Triplet, max int) CapResult {
	if max <= 0 {
		max = types.DefaultMaxUses
	}

	res := CapResult{
		Duplicates: make(map[string][]types.Triplet),
		Usage:      make(map[string]int),
	}

	for _, triplet := range raw {
		t := triplet.Transition
		if res.Usage[t] < max {
			res.Final = append(res.Final, triplet)
			res.Usage[t]++
		} else {
			res.Duplicates[t] = append(res.Duplicates[t], triplet)
		}
	}

	return res
}
