// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline threads a search query through identifier retrieval,
// per-record detail fetches, affiliation classification, and filtering.
// Implements the fetch/filter flow; export is a separate stage.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/meshintel/pharmascan/internal/lexicon"
	"github.com/meshintel/pharmascan/internal/ratelimit"
	"github.com/meshintel/pharmascan/pkg/types"
)

// Fetcher retrieves identifiers and per-record details from the
// bibliographic source. *pubmed.Client satisfies it; tests substitute
// mocks.
type Fetcher interface {
	Search(ctx context.Context, query string, maxResults int) ([]string, error)
	FetchDetail(ctx context.Context, pmid string) (*types.PaperRecord, error)
}

// Pipeline fetches papers for a query and retains those whose affiliations
// match the lexicon. Execution is strictly sequential: one search call,
// then one detail call at a time with a limiter wait after each, so no
// concurrent requests ever reach NCBI.
type Pipeline struct {
	Fetcher    Fetcher
	Classifier *lexicon.Classifier
	Limiter    ratelimit.Limiter
	Output     types.OutputConfig
	Log        zerolog.Logger
}

// FetchAndFilter runs the full fetch/filter flow for one query and returns
// the matching records in retrieval order. Search and detail failures are
// logged and absorbed; the worst outcome is an empty result. Per-item
// progress goes to w.
func (p *Pipeline) FetchAndFilter(ctx context.Context, query string, maxResults int, w io.Writer) []types.PaperRecord {
	fmt.Fprintf(w, "Searching PubMed for: %q\n", query)

	pmids, err := p.Fetcher.Search(ctx, query, maxResults)
	if err != nil {
		p.Log.Error().Err(err).Str("query", query).Msg("search failed")
		fmt.Fprintf(w, "search failed: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "Found %d papers\n", len(pmids))
	if len(pmids) == 0 {
		return nil
	}

	var retained []types.PaperRecord
	for i, pmid := range pmids {
		rec, err := p.Fetcher.FetchDetail(ctx, pmid)
		switch {
		case err != nil:
			p.Log.Warn().Err(err).Str("pmid", pmid).Msg("detail fetch failed")
			fmt.Fprintf(w, "[%d/%d] failed: %s (%v)\n", i+1, len(pmids), pmid, err)
		case p.Classifier.Matches(rec.Affiliations):
			rec.HasPharmaAffiliation = true
			p.normalize(rec)
			retained = append(retained, *rec)
			fmt.Fprintf(w, "[%d/%d] match:  %s\n", i+1, len(pmids), pmid)
		default:
			fmt.Fprintf(w, "[%d/%d] skip:   %s\n", i+1, len(pmids), pmid)
		}

		// Throttle after every detail attempt, success or failure.
		if err := p.Limiter.Wait(ctx); err != nil {
			p.Log.Warn().Err(err).Msg("rate limit wait interrupted")
			break
		}
	}

	fmt.Fprintf(w, "\n%d of %d papers have pharma/biotech affiliations\n", len(retained), len(pmids))
	return retained
}

// normalize applies the output policy to a freshly built record: optional
// field suppression and title/abstract truncation. Classification has
// already run against the unmodified affiliations.
func (p *Pipeline) normalize(rec *types.PaperRecord) {
	if !p.Output.IncludeAbstract {
		rec.Abstract = ""
	}
	if !p.Output.IncludeAffiliations {
		rec.Affiliations = ""
	}
	if p.Output.TruncateLongFields && p.Output.MaxFieldLength > 0 {
		rec.Title = truncate(rec.Title, p.Output.MaxFieldLength)
		rec.Abstract = truncate(rec.Abstract, p.Output.MaxFieldLength)
	}
}

// truncate cuts s to max characters and appends the ellipsis marker.
// Fields at or under the limit pass through unchanged. The cut counts
// runes, never splitting a multi-byte character, so truncated fields stay
// valid UTF-8.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max]) + "..."
}
