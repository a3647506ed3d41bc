// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes retained paper records to CSV and reports
// summary statistics.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/meshintel/pharmascan/pkg/types"
)

// timestampFmt matches the processed_date column format.
const timestampFmt = "2006-01-02 15:04:05"

// now is stubbed in tests to pin the processed_date column.
var now = time.Now

// Exporter writes record sets to CSV files. Every field is quoted
// unconditionally and records are CRLF-terminated, mirroring the
// conventions of common spreadsheet tooling.
type Exporter struct {
	Output types.OutputConfig
	Log    zerolog.Logger
}

// Export writes a single-query result set to path and prints summary
// statistics to w. An empty record set is a logged no-op: no file is
// written.
func (e *Exporter) Export(records []types.PaperRecord, path string, w io.Writer) error {
	return e.export(records, path, false, w)
}

// ExportBatch writes a combined batch result set to path, appending the
// query tag columns and a processing timestamp, and prints the extended
// summary (per-query counts) to w.
func (e *Exporter) ExportBatch(records []types.PaperRecord, path string, w io.Writer) error {
	return e.export(records, path, true, w)
}

func (e *Exporter) export(records []types.PaperRecord, path string, batch bool, w io.Writer) error {
	if len(records) == 0 {
		e.Log.Info().Msg("nothing to export")
		fmt.Fprintln(w, "No papers to export")
		return nil
	}

	if enc := strings.ToLower(e.Output.CSVEncoding); enc != "" && enc != "utf-8" && enc != "utf8" {
		return fmt.Errorf("unsupported csv_encoding %q: only utf-8 output is supported", e.Output.CSVEncoding)
	}

	columns := e.columns(records, batch)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	processed := now().Format(timestampFmt)

	writeRow(bw, columns)
	for _, rec := range records {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fieldValue(rec, col, processed)
		}
		writeRow(bw, row)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	fmt.Fprintf(w, "Exported %d papers to %s\n", len(records), path)
	printSummary(records, batch, w)
	return nil
}

// columns returns the header in preferred order, restricted to attributes
// the record set actually carries.
func (e *Exporter) columns(records []types.PaperRecord, batch bool) []string {
	tagged := false
	for _, r := range records {
		if r.SearchQuery != "" || r.QueryLabel != "" {
			tagged = true
			break
		}
	}

	cols := []string{"pmid", "title", "authors", "journal", "publication_date", "affiliations", "abstract"}
	if tagged {
		cols = append(cols, "search_query", "query_name")
	}
	cols = append(cols, "has_pharma_affiliation")
	if batch {
		cols = append(cols, "processed_date")
	}
	return cols
}

func fieldValue(rec types.PaperRecord, col, processed string) string {
	switch col {
	case "pmid":
		return rec.PMID
	case "title":
		return rec.Title
	case "authors":
		return rec.Authors
	case "journal":
		return rec.Journal
	case "publication_date":
		return rec.PubDate
	case "affiliations":
		return rec.Affiliations
	case "abstract":
		return rec.Abstract
	case "search_query":
		return rec.SearchQuery
	case "query_name":
		return rec.QueryLabel
	case "has_pharma_affiliation":
		return strconv.FormatBool(rec.HasPharmaAffiliation)
	case "processed_date":
		return processed
	}
	return ""
}

// writeRow emits one CSV record with every field quoted. encoding/csv
// cannot force quotes on all fields, so the quoting is done here:
// embedded quotes are doubled, everything else passes through.
func writeRow(w *bufio.Writer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			w.WriteByte(',')
		}
		w.WriteByte('"')
		w.WriteString(strings.ReplaceAll(f, `"`, `""`))
		w.WriteByte('"')
	}
	w.WriteString("\r\n")
}
