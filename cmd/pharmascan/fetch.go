package main

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/meshintel/pharmascan/internal/export"
	"github.com/meshintel/pharmascan/internal/lexicon"
	"github.com/meshintel/pharmascan/internal/pipeline"
	"github.com/meshintel/pharmascan/internal/pubmed"
	"github.com/meshintel/pharmascan/internal/ratelimit"
	"github.com/meshintel/pharmascan/pkg/types"
)

var validate = validator.New()

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch and filter papers for a single PubMed query",
	Long: `Fetch searches PubMed for a query, retrieves details for each result,
keeps papers whose affiliations match the pharma/biotech lexicon, and
writes the matches to a CSV file.

NCBI requires a contact email on every E-utilities request; supply one
with --email or a .secrets/contact-email file.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("query", "", "PubMed search query (required)")
	fetchCmd.Flags().String("email", "", "contact email sent to NCBI (or .secrets/contact-email)")
	fetchCmd.Flags().String("output", "", "output CSV path (default pubmed_results.csv)")
	fetchCmd.Flags().Int("max-results", 0, "maximum search results to retrieve (default 100)")
	fetchCmd.Flags().String("api-key", "", "NCBI API key (or .secrets/ncbi-api-key)")
	fetchCmd.Flags().String("lexicon", "", "keyword lexicon YAML file (default: built-in lexicon)")

	fetchCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	query, _ := cmd.Flags().GetString("query")
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = cfg.Output.DefaultFilename
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	if maxResults == 0 {
		maxResults = cfg.Search.DefaultMaxResults
	}

	p, err := buildPipeline(cmd, cfg)
	if err != nil {
		return err
	}

	records := p.FetchAndFilter(cmd.Context(), query, maxResults, os.Stdout)

	exporter := &export.Exporter{Output: cfg.Output, Log: log}
	exportResults(exporter, records, output, false, os.Stdout)
	return nil
}

// exportResults writes records to path. Export failures are logged and
// reported but do not fail the run: the fetch work itself succeeded, only
// the output file could not be written.
func exportResults(e *export.Exporter, records []types.PaperRecord, path string, batch bool, w io.Writer) {
	var err error
	if batch {
		err = e.ExportBatch(records, path, w)
	} else {
		err = e.Export(records, path, w)
	}
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("export failed, results not written")
		fmt.Fprintf(w, "export failed: %v\n", err)
	}
}

// buildPipeline assembles the fetch/filter pipeline shared by fetch and
// batch. The contact email is validated before anything touches the
// network.
func buildPipeline(cmd *cobra.Command, cfg types.Config) (*pipeline.Pipeline, error) {
	flagEmail, _ := cmd.Flags().GetString("email")
	email := secretDefault("contact-email", flagEmail)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("a valid contact email is required (--email or .secrets/contact-email)")
	}

	flagKey, _ := cmd.Flags().GetString("api-key")
	cfg.Search.APIKey = secretDefault("ncbi-api-key", flagKey)

	lexPath, _ := cmd.Flags().GetString("lexicon")
	if lexPath == "" {
		lexPath = cfg.LexiconPath
	}
	lex, fellBack := lexicon.LoadOrDefault(lexPath)
	if fellBack && lexPath != "" {
		log.Warn().Str("path", lexPath).Msg("lexicon file unreadable, using built-in lexicon")
	}
	log.Debug().Int("keywords", lex.Size()).Msg("lexicon loaded")

	return &pipeline.Pipeline{
		Fetcher:    pubmed.NewClient(email, cfg.Search),
		Classifier: lexicon.NewClassifier(lex),
		Limiter:    ratelimit.NewFixedDelay(cfg.Search.RateLimitDelay),
		Output:     cfg.Output,
		Log:        log,
	}, nil
}
