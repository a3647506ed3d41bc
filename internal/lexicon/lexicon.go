// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon holds the keyword lists used to flag industry
// affiliations and the classifier that applies them.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Lexicon groups the four keyword categories. All phrases are lowercase;
// matching is case-insensitive substring containment, so the categories
// need not be disjoint. The Lexicon is immutable after construction.
type Lexicon struct {
	// Industry lists pharmaceutical and biotech industry terms.
	Industry []string `yaml:"industry_keywords"`

	// Companies lists company and institution names.
	Companies []string `yaml:"company_keywords"`

	// Collaboration lists phrases indicating industry collaboration or
	// sponsorship.
	Collaboration []string `yaml:"collaboration_keywords"`

	// AcademicIndustry lists phrases indicating academic-industry
	// partnerships.
	AcademicIndustry []string `yaml:"academic_industry_keywords"`

	all []string
}

// Load reads a lexicon YAML file. Phrases are lowercased and trimmed;
// empty entries are dropped.
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon file: %w", err)
	}
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon file %s: %w", path, err)
	}
	lex.normalize()
	return &lex, nil
}

// LoadOrDefault loads the lexicon from path, falling back to the built-in
// lexicon when path is empty or the file cannot be read. The second return
// value reports whether the fallback was used.
func LoadOrDefault(path string) (*Lexicon, bool) {
	if path == "" {
		return Default(), true
	}
	lex, err := Load(path)
	if err != nil {
		return Default(), true
	}
	return lex, false
}

// All returns the union of all four categories, built lazily on first use.
// The per-category scan in the classifier does not need it, but callers
// inspecting the full phrase set do.
func (l *Lexicon) All() []string {
	if l.all == nil {
		seen := make(map[string]struct{})
		for _, cat := range [][]string{l.Companies, l.Industry, l.Collaboration, l.AcademicIndustry} {
			for _, phrase := range cat {
				if _, ok := seen[phrase]; ok {
					continue
				}
				seen[phrase] = struct{}{}
				l.all = append(l.all, phrase)
			}
		}
	}
	return l.all
}

// Size returns the total phrase count across categories, duplicates
// included.
func (l *Lexicon) Size() int {
	return len(l.Industry) + len(l.Companies) + len(l.Collaboration) + len(l.AcademicIndustry)
}

func (l *Lexicon) normalize() {
	l.Industry = cleanPhrases(l.Industry)
	l.Companies = cleanPhrases(l.Companies)
	l.Collaboration = cleanPhrases(l.Collaboration)
	l.AcademicIndustry = cleanPhrases(l.AcademicIndustry)
	l.all = nil
}

func cleanPhrases(phrases []string) []string {
	out := phrases[:0]
	for _, p := range phrases {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
