// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pubmed queries the NCBI E-utilities API and normalizes article
// metadata into flat PaperRecord fields.
//
// The E-utilities API documentation is available at:
// https://www.ncbi.nlm.nih.gov/books/NBK25499/
package pubmed

import "encoding/xml"

// eSearchResult is the response from the esearch.fcgi endpoint: an ordered
// list of PMIDs matching a query.
type eSearchResult struct {
	XMLName xml.Name `xml:"eSearchResult"`
	Count   int      `xml:"Count"`
	IDList  idList   `xml:"IdList"`
}

type idList struct {
	IDs []string `xml:"Id"`
}

// pubmedArticleSet is the response from the efetch.fcgi endpoint.
type pubmedArticleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	MedlineCitation medlineCitation `xml:"MedlineCitation"`
}

type medlineCitation struct {
	PMID    string  `xml:"PMID"`
	Article article `xml:"Article"`
}

type article struct {
	Journal      journal     `xml:"Journal"`
	ArticleTitle string      `xml:"ArticleTitle"`
	Abstract     *abstract   `xml:"Abstract"`
	AuthorList   *authorList `xml:"AuthorList"`

	// Affiliations holds article-level affiliation strings, present in
	// older citation records that predate per-author AffiliationInfo.
	Affiliations []string `xml:"Affiliation"`
}

type journal struct {
	Title        string       `xml:"Title"`
	JournalIssue journalIssue `xml:"JournalIssue"`
}

type journalIssue struct {
	PubDate pubDate `xml:"PubDate"`
}

// pubDate carries the publication date in one of two shapes: discrete
// Year/Month/Day fields, or a single free-form MedlineDate string
// (e.g. "2020 Jan-Feb", "1998 Winter").
type pubDate struct {
	Year        string `xml:"Year"`
	Month       string `xml:"Month"`
	Day         string `xml:"Day"`
	MedlineDate string `xml:"MedlineDate"`
}

// abstract may contain multiple AbstractText sections for structured
// abstracts (Background, Methods, Results, ...).
type abstract struct {
	Sections []abstractText `xml:"AbstractText"`
}

type abstractText struct {
	Label string `xml:"Label,attr"`
	Value string `xml:",chardata"`
}

type authorList struct {
	Authors []author `xml:"Author"`
}

type author struct {
	LastName        string            `xml:"LastName"`
	ForeName        string            `xml:"ForeName"`
	CollectiveName  string            `xml:"CollectiveName"`
	AffiliationInfo []affiliationInfo `xml:"AffiliationInfo"`
}

type affiliationInfo struct {
	Affiliation string `xml:"Affiliation"`
}
