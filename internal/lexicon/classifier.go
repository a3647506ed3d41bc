// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import "strings"

// Classifier flags affiliation strings that contain industry keywords.
// Matching is case-insensitive substring containment with no tokenization
// or word-boundary checks, so short phrases like "cell" will match inside
// unrelated words. That imprecision is accepted; the lexicon is curated
// with it in mind.
type Classifier struct {
	lex *Lexicon
}

// NewClassifier builds a classifier over the given lexicon.
func NewClassifier(lex *Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Matches reports whether the affiliation contains any lexicon phrase.
// Empty input is always false. Categories are scanned companies first,
// then industry, collaboration, and academic-industry, short-circuiting
// on the first hit; the order only affects speed, not the result.
func (c *Classifier) Matches(affiliation string) bool {
	if affiliation == "" {
		return false
	}
	lower := strings.ToLower(affiliation)

	for _, cat := range [][]string{
		c.lex.Companies,
		c.lex.Industry,
		c.lex.Collaboration,
		c.lex.AcademicIndustry,
	} {
		for _, phrase := range cat {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
	}
	return false
}
