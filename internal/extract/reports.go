// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"

	"github.com/pdiddy/transition-engine/pkg/types"
)

// ExceededEntry reports a transition whose total occurrence count exceeded
// the cap.
type ExceededEntry struct {
	Transition string
	Total      int
	Excess     int
}

// DuplicateEntry reports a transition occurring more than once among the raw
// triplets, regardless of the cap.
type DuplicateEntry struct {
	Transition string
	Count      int
}

// CapExceeded lists the transitions that had rejected occurrences, with their
// total count (accepted + rejected) and the excess over the cap. Entries are
// sorted by transition text so repeated runs produce identical reports.
func CapExceeded(res CapResult) []ExceededEntry {
	var entries []ExceededEntry
	for transition, dups := range res.Duplicates {
		if len(dups) == 0 {
			continue
		}
		entries = append(entries, ExceededEntry{
			Transition: transition,
			Total:      res.Usage[transition] + len(dups),
			Excess:     len(dups),
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Transition < entries[j].Transition })
	return entries
}

// RawDuplicates lists every transition occurring more than once among all raw
// triplets. Its threshold is 1, independent of the cap: a transition used
// twice shows up here even though both uses were accepted. Entries are sorted
// by transition text.
func RawDuplicates(raw []types.Triplet) []DuplicateEntry {
	counts := make(map[string]int)
	for _, triplet := range raw {
		counts[triplet.Transition]++
	}

	var entries []DuplicateEntry
	for transition, count := range counts {
		if count > 1 {
			entries = append(entries, DuplicateEntry{Transition: transition, Count: count})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Transition < entries[j].Transition })
	return entries
}
