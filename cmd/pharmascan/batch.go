package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/meshintel/pharmascan/internal/export"
	"github.com/meshintel/pharmascan/internal/pipeline"
	"github.com/meshintel/pharmascan/pkg/types"
)

const defaultMaxPerQuery = 50

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Fetch and filter papers for multiple PubMed queries",
	Long: `Batch runs the fetch pipeline over a set of queries and combines the
results into one CSV. Queries come from a file (one per line, blank lines
and #-comments skipped) or from repeated --queries values. Each exported
row is tagged with its originating query and a Query_<n> label.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("file", "", "file with one query per line")
	batchCmd.Flags().StringSlice("queries", nil, "queries to run (repeatable or comma-separated)")
	batchCmd.Flags().String("output", "", "output CSV path (default batch_results_<timestamp>.csv)")
	batchCmd.Flags().Int("max-results-per-query", 0, "maximum search results per query (default 50)")
	batchCmd.Flags().String("email", "", "contact email sent to NCBI (or .secrets/contact-email)")
	batchCmd.Flags().String("api-key", "", "NCBI API key (or .secrets/ncbi-api-key)")
	batchCmd.Flags().String("lexicon", "", "keyword lexicon YAML file (default: built-in lexicon)")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	queries, _ := cmd.Flags().GetStringSlice("queries")
	if (file == "") == (len(queries) == 0) {
		return fmt.Errorf("provide exactly one of --file or --queries")
	}

	cfg := loadConfig()

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = fmt.Sprintf("batch_results_%s.csv", time.Now().Format("20060102_150405"))
	}
	maxPerQuery, _ := cmd.Flags().GetInt("max-results-per-query")
	if maxPerQuery == 0 {
		maxPerQuery = defaultMaxPerQuery
	}

	p, err := buildPipeline(cmd, cfg)
	if err != nil {
		return err
	}
	b := &pipeline.Batch{Pipeline: p, MaxPerQuery: maxPerQuery}

	var records []types.PaperRecord
	if file != "" {
		records = b.RunFile(cmd.Context(), file, os.Stdout)
	} else {
		records = b.Run(cmd.Context(), queries, os.Stdout)
	}

	exporter := &export.Exporter{Output: cfg.Output, Log: log}
	exportResults(exporter, records, output, true, os.Stdout)
	return nil
}
