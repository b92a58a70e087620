// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match builds tolerant matchers for transition phrases.
//
// A phrase is matched literally and case-insensitively, with two substitutions:
// the placeholder token "[XXX]" stands for any run of non-comma characters
// (variable place names and the like), and a phrase ending in " que" also
// matches the elided forms " qu'un", " qu'il", " qu'elle", etc.
package match

import (
	"fmt"
	"regexp"
	"strings"
)

// Placeholder is the literal token inside a phrase that matches arbitrary
// non-comma text in the narrative.
const Placeholder = "[XXX]"

// elisionSuffix is the phrase ending that triggers the qu' alternative.
const elisionSuffix = " que"

// placeholderQuoted is the placeholder as it appears after QuoteMeta.
var placeholderQuoted = regexp.QuoteMeta(Placeholder)

// PatternString returns the deterministic pattern text for one transition
// phrase, before compilation: the phrase is escaped wholesale, then the
// escaped placeholder token is rewritten to `[^,]*` (greedy) and a trailing
// " que" is widened to accept the contracted " qu'" forms.
//
// When the placeholder appears more than once, or abuts punctuation, the
// greedy `[^,]*` runs can swallow text up to the last comma-free stretch.
// That matches the historical behavior and is left as is.
func PatternString(phrase string) string {
	pattern := regexp.QuoteMeta(phrase)
	pattern = strings.ReplaceAll(pattern, placeholderQuoted, `[^,]*`)
	if strings.HasSuffix(pattern, elisionSuffix) {
		pattern = strings.TrimSuffix(pattern, elisionSuffix) + `(?:\sque|\squ'\w*)`
	}
	return pattern
}

// Compile builds the case-insensitive matcher for one transition phrase.
// Matchers are built fresh per phrase and must not be reused across phrases.
func Compile(phrase string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`(?i)` + PatternString(phrase))
	if err != nil {
		return nil, fmt.Errorf("compiling pattern for %q: %w", phrase, err)
	}
	return re, nil
}
