// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transition-engine/internal/document"
	"github.com/pdiddy/transition-engine/internal/extract"
	"github.com/pdiddy/transition-engine/internal/output"
	"github.com/pdiddy/transition-engine/internal/segment"
	"github.com/pdiddy/transition-engine/pkg/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <document>",
	Short: "Extract transition triplets from a document",
	Long: `Extract reads a document (.docx, .html, or plain text), splits it into
article blocks at the marker line, finds every listed transition phrase
inside its narrative paragraph, applies the per-transition usage cap, and
writes the selected output files.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractionConfig(cmd)
	outDir := stringSetting(cmd, "out-dir", "output.dir")
	kinds, _ := cmd.Flags().GetStringSlice("outputs")

	res, raw, articles, err := runPipeline(args[0], cfg)
	if err != nil {
		return err
	}

	counts, err := output.Write(outDir, kinds, res, raw, os.Stdout)
	if err != nil {
		return err
	}

	summary := output.Summary{
		Document:           args[0],
		Articles:           len(articles),
		RawTriplets:        len(raw),
		TotalValidExamples: len(res.Final),
		GeneratedFiles:     counts,
	}
	if writeSummary, _ := cmd.Flags().GetBool("summary"); writeSummary {
		if err := output.WriteSummary(outDir, summary); err != nil {
			return err
		}
	}

	fmt.Printf("\n%d article(s), %d raw triplet(s), %d valid example(s)\n",
		summary.Articles, summary.RawTriplets, summary.TotalValidExamples)
	return nil
}

// runPipeline executes the in-memory extraction pipeline for one document:
// read, segment, parse, extract, cap. A document that cannot be loaded is a
// fatal error for the run.
func runPipeline(path string, cfg types.ExtractionConfig) (extract.CapResult, []types.Triplet, []types.Article, error) {
	paragraphs, err := document.Paragraphs(path)
	if err != nil {
		return extract.CapResult{}, nil, nil, err
	}

	blocks := segment.Blocks(paragraphs, cfg.Marker)
	articles := segment.ParseArticles(blocks)

	raw, err := extract.Triplets(articles)
	if err != nil {
		return extract.CapResult{}, nil, nil, err
	}

	return extract.Cap(raw, cfg.MaxUses), raw, articles, nil
}

// extractionConfig resolves the extraction settings from flags, falling back
// to the config file.
func extractionConfig(cmd *cobra.Command) types.ExtractionConfig {
	cfg := types.ExtractionConfig{
		Marker:  stringSetting(cmd, "marker", "extraction.marker"),
		MaxUses: intSetting(cmd, "max-uses", "extraction.max_uses"),
	}
	return cfg
}

// stringSetting returns the flag value if set on the command line, otherwise
// the config file value, otherwise the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// intSetting is stringSetting for integer flags.
func intSetting(cmd *cobra.Command, flag, key string) int {
	if !cmd.Flags().Changed(flag) && viper.IsSet(key) {
		return viper.GetInt(key)
	}
	v, _ := cmd.Flags().GetInt(flag)
	return v
}

func init() {
	extractCmd.Flags().String("marker", types.DefaultMarker, "article block separator substring")
	extractCmd.Flags().Int("max-uses", types.DefaultMaxUses, "maximum accepted triplets per transition")
	extractCmd.Flags().String("out-dir", "extracted_output", "directory for output files")
	extractCmd.Flags().StringSlice("outputs", nil, "output files to generate (default: all)")
	extractCmd.Flags().Bool("summary", true, "write run_summary.yaml next to the output files")

	rootCmd.AddCommand(extractCmd)
}
