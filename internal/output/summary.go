// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// summaryFile is the run summary written next to the output files.
const summaryFile = "run_summary.yaml"

// Summary records what one extraction run produced.
type Summary struct {
	// Document is the source document path.
	Document string `yaml:"document" json:"document"`

	// Articles is the number of parsed articles.
	Articles int `yaml:"articles" json:"articles"`

	// RawTriplets is the triplet count before capping.
	RawTriplets int `yaml:"raw_triplets" json:"raw_triplets"`

	// TotalValidExamples is the accepted triplet count after capping.
	TotalValidExamples int `yaml:"total_valid_examples" json:"total_valid_examples"`

	// GeneratedFiles maps each written output file to its entry count.
	GeneratedFiles map[string]int `yaml:"generated_files" json:"generated_files"`
}

// WriteSummary marshals the run summary to dir/run_summary.yaml.
func WriteSummary(dir string, s Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling run summary: %w", err)
	}
	path := filepath.Join(dir, summaryFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", summaryFile, err)
	}
	return nil
}
