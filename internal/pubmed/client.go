// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pubmed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/meshintel/pharmascan/pkg/types"
)

// eutilsBase is the NCBI E-utilities endpoint. Declared as a var so tests
// can substitute an httptest server.
var eutilsBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

const toolName = "pharmascan"

// Client fetches bibliographic records from PubMed. NCBI requires a
// contact email with every request; an API key is optional and raises the
// allowed request rate.
type Client struct {
	HTTPClient *http.Client
	Email      string
	Config     types.SearchConfig
}

// NewClient builds a PubMed client for the given contact email.
func NewClient(email string, cfg types.SearchConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Email:      email,
		Config:     cfg,
	}
}

// Search queries esearch.fcgi and returns PMIDs in relevance order, capped
// at maxResults (falling back to the configured default when <= 0). The
// list is returned as-is: no client-side re-sorting or dedup.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = c.Config.DefaultMaxResults
	}

	q := url.Values{}
	q.Set("db", "pubmed")
	q.Set("term", query)
	q.Set("retmax", strconv.Itoa(maxResults))
	q.Set("sort", "relevance")
	q.Set("retmode", "xml")

	var result eSearchResult
	if err := c.get(ctx, "/esearch.fcgi", q, &result); err != nil {
		return nil, fmt.Errorf("esearch: %w", err)
	}
	return result.IDList.IDs, nil
}

// FetchDetail retrieves one article via efetch.fcgi and normalizes it to a
// flat PaperRecord. All variable-shape response handling (structured
// abstracts, optional author and affiliation nesting, the two publication
// date forms) happens here; downstream components only see flat strings.
func (c *Client) FetchDetail(ctx context.Context, pmid string) (*types.PaperRecord, error) {
	q := url.Values{}
	q.Set("db", "pubmed")
	q.Set("id", pmid)
	q.Set("rettype", "xml")
	q.Set("retmode", "xml")

	var set pubmedArticleSet
	if err := c.get(ctx, "/efetch.fcgi", q, &set); err != nil {
		return nil, fmt.Errorf("efetch %s: %w", pmid, err)
	}
	if len(set.Articles) == 0 {
		return nil, fmt.Errorf("efetch %s: no article in response", pmid)
	}

	return recordFromArticle(pmid, set.Articles[0].MedlineCitation.Article), nil
}

// get issues a GET against the E-utilities path and decodes the XML body
// into out. The required email, tool name, and optional API key ride along
// on every call.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	q.Set("tool", toolName)
	q.Set("email", c.Email)
	if c.Config.APIKey != "" {
		q.Set("api_key", c.Config.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, eutilsBase+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("E-utilities request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("E-utilities returned HTTP %d", resp.StatusCode)
	}
	if err := xml.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing E-utilities response: %w", err)
	}
	return nil
}

// recordFromArticle flattens one parsed article into a PaperRecord. The
// affiliation-match flag is left false; classification belongs to the
// pipeline.
func recordFromArticle(pmid string, a article) *types.PaperRecord {
	var authors []string
	var affiliations []string

	if a.AuthorList != nil {
		for _, au := range a.AuthorList.Authors {
			// Full name only when both parts are present; collective
			// names and partial entries are skipped.
			if au.ForeName != "" && au.LastName != "" {
				authors = append(authors, au.ForeName+" "+au.LastName)
			}
			for _, info := range au.AffiliationInfo {
				if info.Affiliation != "" {
					affiliations = append(affiliations, info.Affiliation)
				}
			}
		}
	}
	for _, aff := range a.Affiliations {
		if aff != "" {
			affiliations = append(affiliations, aff)
		}
	}

	return &types.PaperRecord{
		PMID:         pmid,
		Title:        strings.TrimSpace(a.ArticleTitle),
		Abstract:     joinAbstract(a.Abstract),
		Journal:      a.Journal.Title,
		PubDate:      formatPubDate(a.Journal.JournalIssue.PubDate),
		Authors:      strings.Join(authors, "; "),
		Affiliations: strings.Join(affiliations, "; "),
	}
}

// joinAbstract concatenates abstract sections with single spaces.
func joinAbstract(ab *abstract) string {
	if ab == nil {
		return ""
	}
	var parts []string
	for _, s := range ab.Sections {
		text := strings.TrimSpace(s.Value)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// formatPubDate assembles "Year Month Day" from whichever sub-fields are
// present, trimmed. Records that carry only a free-form MedlineDate use
// that string verbatim.
func formatPubDate(d pubDate) string {
	joined := strings.TrimSpace(strings.Join(strings.Fields(d.Year+" "+d.Month+" "+d.Day), " "))
	if joined == "" {
		return strings.TrimSpace(d.MedlineDate)
	}
	return joined
}
