// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DefaultMarker is the literal substring that separates article blocks in the
// source documents (regional French news digests).
const DefaultMarker = "À savoir également dans votre département"

// DefaultMaxUses is the default per-transition usage cap.
const DefaultMaxUses = 3

// ExtractionConfig holds settings for the segmentation and extraction stages.
type ExtractionConfig struct {
	// Marker is the block separator substring. Empty uses DefaultMarker.
	Marker string `json:"marker" yaml:"marker"`

	// MaxUses is the maximum number of accepted triplets per distinct
	// transition in one run. Zero or negative uses DefaultMaxUses.
	MaxUses int `json:"max_uses" yaml:"max_uses"`
}

// OutputConfig holds settings for the output stage.
type OutputConfig struct {
	// Dir is the directory output files are written to.
	Dir string `json:"dir" yaml:"dir"`

	// Kinds lists the output file names to produce. Empty produces all.
	Kinds []string `json:"kinds" yaml:"kinds"`
}

// CorpusConfig holds settings for the triplet corpus stage.
type CorpusConfig struct {
	// CorpusDir is the base directory for the corpus (contains index/).
	CorpusDir string `json:"corpus_dir" yaml:"corpus_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Output     OutputConfig     `json:"output" yaml:"output"`
	Corpus     CorpusConfig     `json:"corpus" yaml:"corpus"`
}
