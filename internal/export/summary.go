// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/meshintel/pharmascan/pkg/types"
)

// printSummary reports result statistics to w: total count, per-query
// counts (batch mode), the ten most frequent journals, and a
// publication-year histogram.
func printSummary(records []types.PaperRecord, batch bool, w io.Writer) {
	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(w, "SUMMARY STATISTICS")
	fmt.Fprintf(w, "%s\n", strings.Repeat("=", 60))
	fmt.Fprintf(w, "Total papers found: %d\n", len(records))

	if batch {
		fmt.Fprintln(w, "\nPapers per query:")
		for _, c := range countBy(records, func(r types.PaperRecord) string { return r.QueryLabel }) {
			fmt.Fprintf(w, "  %s: %d papers\n", c.key, c.n)
		}
	}

	fmt.Fprintln(w, "\nTop journals:")
	journals := countBy(records, func(r types.PaperRecord) string { return r.Journal })
	if len(journals) > 10 {
		journals = journals[:10]
	}
	for _, c := range journals {
		fmt.Fprintf(w, "  %s: %d papers\n", c.key, c.n)
	}

	printYearHistogram(records, w)
}

// printYearHistogram derives years from the first four characters of each
// publication date, best effort. Unparseable dates are skipped without
// comment.
func printYearHistogram(records []types.PaperRecord, w io.Writer) {
	years := make(map[string]int)
	for _, r := range records {
		if len(r.PubDate) < 4 {
			continue
		}
		year := r.PubDate[:4]
		if _, err := strconv.Atoi(year); err != nil {
			continue
		}
		years[year]++
	}
	if len(years) == 0 {
		return
	}

	keys := make([]string, 0, len(years))
	for y := range years {
		keys = append(keys, y)
	}
	sort.Strings(keys)

	fmt.Fprintln(w, "\nPublication years:")
	for _, y := range keys {
		fmt.Fprintf(w, "  %s: %d papers\n", y, years[y])
	}
}

type keyCount struct {
	key string
	n   int
}

// countBy groups records by key and returns counts in descending order,
// ties broken alphabetically. Empty keys are skipped.
func countBy(records []types.PaperRecord, key func(types.PaperRecord) string) []keyCount {
	counts := make(map[string]int)
	for _, r := range records {
		if k := key(r); k != "" {
			counts[k]++
		}
	}

	out := make([]keyCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, keyCount{k, n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].n != out[j].n {
			return out[i].n > out[j].n
		}
		return out[i].key < out[j].key
	})
	return out
}
