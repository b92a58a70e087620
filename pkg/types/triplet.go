// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the records shared across the extraction pipeline
// and the configuration structs for each stage.
package types

// Article is one parsed article block: the narrative paragraph searched for
// transitions, plus the candidate transition phrases listed after it.
// Immutable once created.
type Article struct {
	// Narrative is the first text line of the article block.
	Narrative string `json:"narrative" yaml:"narrative"`

	// Transitions are the candidate connector phrases, in document order,
	// already trimmed and non-empty.
	Transitions []string `json:"transitions" yaml:"transitions"`
}

// Triplet is one training example: the narrative text before a transition
// occurrence, the canonical transition phrase, and the narrative text after it.
//
// Transition always holds the phrase as listed for the article, never the
// literal substring matched in the narrative, even when the match tolerated
// a placeholder expansion or an elided form.
type Triplet struct {
	ParagraphA string `json:"paragraph_a" yaml:"paragraph_a"`
	Transition string `json:"transition" yaml:"transition"`
	ParagraphB string `json:"paragraph_b" yaml:"paragraph_b"`
}
