package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshintel/pharmascan/internal/export"
	"github.com/meshintel/pharmascan/pkg/types"
)

func TestExportResultsFailureIsNonFatal(t *testing.T) {
	log = zerolog.Nop()
	e := &export.Exporter{Output: types.DefaultConfig().Output, Log: log}
	records := []types.PaperRecord{
		{PMID: "1", Title: "T", HasPharmaAffiliation: true},
	}

	// Parent directory does not exist, so the output file cannot be created.
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	var buf bytes.Buffer
	exportResults(e, records, path, false, &buf)

	assert.Contains(t, buf.String(), "export failed")
}

func TestExportResultsWritesFile(t *testing.T) {
	log = zerolog.Nop()
	e := &export.Exporter{Output: types.DefaultConfig().Output, Log: log}
	records := []types.PaperRecord{
		{PMID: "1", Title: "T", HasPharmaAffiliation: true, QueryLabel: "Query_1", SearchQuery: "q"},
	}

	path := filepath.Join(t.TempDir(), "out.csv")

	var buf bytes.Buffer
	exportResults(e, records, path, true, &buf)

	require.FileExists(t, path)
	assert.Contains(t, buf.String(), "Exported 1 papers")
}
