// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharmascan pipeline.
package types

// PaperRecord holds the flattened bibliographic fields for one PubMed
// article, as produced by the detail fetch and consumed by the exporter.
// Authors and affiliations arrive as lists from the API and are flattened
// to "; "-delimited strings at the fetch boundary; no other component
// sees the nested response shapes.
type PaperRecord struct {
	// PMID is the PubMed identifier, an opaque stable string.
	PMID string `json:"pmid" yaml:"pmid"`

	// Title is the article title, possibly truncated per OutputConfig.
	Title string `json:"title" yaml:"title"`

	// Abstract is the abstract text with structured segments joined by
	// single spaces, possibly truncated per OutputConfig.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Journal is the journal title as returned by the source.
	Journal string `json:"journal" yaml:"journal"`

	// PubDate is a loosely formatted publication date ("2023 Jan 15",
	// "2020 Spring", ...). No parseability is guaranteed.
	PubDate string `json:"publication_date" yaml:"publication_date"`

	// Authors is the "; "-joined list of author full names in source order.
	Authors string `json:"authors" yaml:"authors"`

	// Affiliations is the "; "-joined list of affiliation strings found
	// per-author or at the article level, in source order.
	Affiliations string `json:"affiliations" yaml:"affiliations"`

	// HasPharmaAffiliation reports whether any affiliation matched the
	// lexicon.
	HasPharmaAffiliation bool `json:"has_pharma_affiliation" yaml:"has_pharma_affiliation"`

	// SearchQuery is the originating query string. Set only by batch runs.
	SearchQuery string `json:"search_query,omitempty" yaml:"search_query,omitempty"`

	// QueryLabel is the human-readable label for the originating query
	// (e.g. "Query_3"). Set only by batch runs.
	QueryLabel string `json:"query_name,omitempty" yaml:"query_name,omitempty"`
}
