// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/pharmascan/pkg/types"
)

func testExporter() *Exporter {
	return &Exporter{
		Output: types.DefaultConfig().Output,
		Log:    zerolog.Nop(),
	}
}

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			PMID:                 "100",
			Title:                `A "quoted" title, with comma`,
			Abstract:             "Some abstract",
			Journal:              "Nature Medicine",
			PubDate:              "2023 Jan 15",
			Authors:              "Jane Doe; John Roe",
			Affiliations:         "Pfizer Inc, Groton CT",
			HasPharmaAffiliation: true,
		},
		{
			PMID:                 "200",
			Title:                "Plain title",
			Journal:              "Nature Medicine",
			PubDate:              "2021 Mar",
			HasPharmaAffiliation: true,
		},
	}
}

func TestExportWritesQuotedCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var buf bytes.Buffer

	require.NoError(t, testExporter().Export(sampleRecords(), path, &buf))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")
	require.Len(t, lines, 3)

	assert.Equal(t,
		`"pmid","title","authors","journal","publication_date","affiliations","abstract","has_pharma_affiliation"`,
		lines[0])
	// Embedded quotes doubled, whole field quoted.
	assert.Contains(t, lines[1], `"A ""quoted"" title, with comma"`)
	assert.Contains(t, lines[1], `"true"`)
	// Untagged records produce no query columns.
	assert.NotContains(t, lines[0], "search_query")
	assert.NotContains(t, lines[0], "processed_date")
}

func TestExportBatchAddsTagAndTimestampColumns(t *testing.T) {
	old := now
	now = func() time.Time { return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) }
	defer func() { now = old }()

	records := sampleRecords()
	for i := range records {
		records[i].SearchQuery = "cancer immunotherapy"
		records[i].QueryLabel = "Query_1"
	}

	path := filepath.Join(t.TempDir(), "batch.csv")
	var buf bytes.Buffer
	require.NoError(t, testExporter().ExportBatch(records, path, &buf))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\r\n"), "\r\n")

	assert.Equal(t,
		`"pmid","title","authors","journal","publication_date","affiliations","abstract","search_query","query_name","has_pharma_affiliation","processed_date"`,
		lines[0])
	assert.Contains(t, lines[1], `"2026-08-26 12:00:00"`)
	assert.Contains(t, buf.String(), "Query_1: 2 papers")
}

func TestExportEmptyIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	var buf bytes.Buffer

	require.NoError(t, testExporter().Export(nil, path, &buf))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no file should be written for an empty record set")
	assert.Contains(t, buf.String(), "No papers to export")
}

func TestExportRejectsUnsupportedEncoding(t *testing.T) {
	e := testExporter()
	e.Output.CSVEncoding = "latin-1"

	var buf bytes.Buffer
	err := e.Export(sampleRecords(), filepath.Join(t.TempDir(), "x.csv"), &buf)
	assert.ErrorContains(t, err, "csv_encoding")
}

func TestSummaryStatistics(t *testing.T) {
	records := []types.PaperRecord{
		{PMID: "1", Journal: "Nature", PubDate: "2020 Jan", HasPharmaAffiliation: true},
		{PMID: "2", Journal: "Nature", PubDate: "2020 Feb", HasPharmaAffiliation: true},
		{PMID: "3", Journal: "Cell", PubDate: "2021", HasPharmaAffiliation: true},
		{PMID: "4", Journal: "Cell", PubDate: "Winter 2021", HasPharmaAffiliation: true}, // year skipped
	}

	var buf bytes.Buffer
	printSummary(records, false, &buf)
	out := buf.String()

	assert.Contains(t, out, "Total papers found: 4")
	assert.Contains(t, out, "Nature: 2 papers")
	assert.Contains(t, out, "Cell: 2 papers")
	assert.Contains(t, out, "2020: 2 papers")
	assert.Contains(t, out, "2021: 1 papers")
	assert.NotContains(t, out, "Wint")
}

func TestCountByOrdersByFrequency(t *testing.T) {
	records := []types.PaperRecord{
		{Journal: "B"}, {Journal: "A"}, {Journal: "A"}, {Journal: ""},
	}
	got := countBy(records, func(r types.PaperRecord) string { return r.Journal })

	require.Len(t, got, 2)
	assert.Equal(t, keyCount{"A", 2}, got[0])
	assert.Equal(t, keyCount{"B", 1}, got[1])
}
