// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/transition-engine/internal/corpus"
	"github.com/pdiddy/transition-engine/pkg/types"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Archive, search, and export accepted triplets",
	Long: `Corpus manages a local SQLite archive of accepted triplets built up
across extraction runs. Use subcommands to store a run, search the archive
with full-text search, or export it. The archive never feeds back into
extraction; every run is capped from empty state.`,
}

// --- store subcommand ---

var corpusStoreCmd = &cobra.Command{
	Use:   "store <document>",
	Short: "Run extraction and archive the accepted triplets",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusStore,
}

func runCorpusStore(cmd *cobra.Command, args []string) error {
	store, err := corpus.NewStore(corpusConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	res, _, _, err := runPipeline(args[0], extractionConfig(cmd))
	if err != nil {
		return err
	}

	rejected := 0
	for _, dups := range res.Duplicates {
		rejected += len(dups)
	}

	_, err = store.StoreRun(context.Background(), args[0], res.Final, rejected, os.Stdout)
	return err
}

// --- search subcommand ---

var corpusSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Query the corpus with full-text search and filters",
	Long: `Search runs an FTS5 full-text query over the archived triplets, with
optional structured filters by transition text or run ID.`,
	RunE: runCorpusSearch,
}

func runCorpusSearch(cmd *cobra.Command, args []string) error {
	store, err := corpus.NewStore(corpusConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --transition, or --run")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []corpus.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-40s  %-40s  %s\n",
		"Rank", "Transition", "Before", "After", "Document")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-40s  %-40s  %s\n",
			i+1, clip(r.Transition, 24), clip(r.ParagraphA, 40), clip(r.ParagraphB, 40), r.Document)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

// --- export subcommand ---

var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the corpus to YAML or JSON",
	Long: `Export writes the full corpus (or a filtered subset) to
<corpus-dir>/index/export.yaml or export.json. Supports the same filter
flags as search for partial exports.`,
	RunE: runCorpusExport,
}

func runCorpusExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := corpus.NewStore(corpusConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.yaml")
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to index/export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func corpusConfig(cmd *cobra.Command) types.CorpusConfig {
	corpusDir := stringSetting(cmd, "corpus-dir", "corpus.corpus_dir")
	if corpusDir == "" {
		corpusDir = "corpus"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return types.CorpusConfig{
		CorpusDir:  corpusDir,
		MaxResults: maxResults,
	}
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) corpus.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	transition, _ := cmd.Flags().GetString("transition")
	runID, _ := cmd.Flags().GetString("run")
	limit, _ := cmd.Flags().GetInt("limit")

	return corpus.QueryOptions{
		Query:      queryText,
		Transition: transition,
		RunID:      runID,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	corpusCmd.PersistentFlags().String("corpus-dir", "corpus", "base directory for the corpus (contains index/)")
	corpusCmd.PersistentFlags().Int("max-results", 20, "maximum number of query results")

	// Store flags mirror extract so a stored run caps the same way.
	corpusStoreCmd.Flags().String("marker", types.DefaultMarker, "article block separator substring")
	corpusStoreCmd.Flags().Int("max-uses", types.DefaultMaxUses, "maximum accepted triplets per transition")

	// Search flags.
	corpusSearchCmd.Flags().String("query", "", "full-text search query")
	corpusSearchCmd.Flags().String("transition", "", "filter by canonical transition text")
	corpusSearchCmd.Flags().String("run", "", "filter by run ID")
	corpusSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	corpusSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Export flags.
	corpusExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	corpusExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	corpusExportCmd.Flags().String("transition", "", "filter by transition for partial export")
	corpusExportCmd.Flags().String("run", "", "filter by run ID for partial export")
	corpusExportCmd.Flags().Int("limit", 0, "maximum triplets to export (0 = all)")

	// Wire subcommands.
	corpusCmd.AddCommand(corpusStoreCmd)
	corpusCmd.AddCommand(corpusSearchCmd)
	corpusCmd.AddCommand(corpusExportCmd)

	rootCmd.AddCommand(corpusCmd)
}
