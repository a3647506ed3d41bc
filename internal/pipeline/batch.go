// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/meshintel/pharmascan/pkg/types"
)

// Batch runs the filter pipeline over multiple queries and concatenates
// the results, tagging each record with its originating query.
type Batch struct {
	Pipeline    *Pipeline
	MaxPerQuery int
}

// ProcessQuery runs one query and tags every resulting record with the raw
// query string and label. An empty label falls back to the query itself.
func (b *Batch) ProcessQuery(ctx context.Context, query, label string, w io.Writer) []types.PaperRecord {
	if label == "" {
		label = query
	}
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Processing query: %s\n", label)
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))

	records := b.Pipeline.FetchAndFilter(ctx, query, b.MaxPerQuery, w)
	for i := range records {
		records[i].SearchQuery = query
		records[i].QueryLabel = label
	}
	return records
}

// Run processes queries in order with auto-generated Query_<n> labels
// (1-based) and returns the combined record sequence. Queries that yield
// nothing still consume their label slot, so labels always reflect input
// position.
func (b *Batch) Run(ctx context.Context, queries []string, w io.Writer) []types.PaperRecord {
	var combined []types.PaperRecord
	for i, q := range queries {
		fmt.Fprintf(w, "\nProcessing query %d/%d\n", i+1, len(queries))
		label := fmt.Sprintf("Query_%d", i+1)
		combined = append(combined, b.ProcessQuery(ctx, q, label, w)...)
	}
	return combined
}

// RunFile loads queries from a file and runs them. A missing or unreadable
// file is reported and yields zero work, not a crash.
func (b *Batch) RunFile(ctx context.Context, path string, w io.Writer) []types.PaperRecord {
	queries, err := LoadQueries(path)
	if err != nil {
		b.Pipeline.Log.Error().Err(err).Str("path", path).Msg("query file unreadable")
		fmt.Fprintf(w, "error: %v\n", err)
		return nil
	}
	fmt.Fprintf(w, "Found %d queries in file: %s\n", len(queries), path)
	return b.Run(ctx, queries, w)
}
