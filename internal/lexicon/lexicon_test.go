// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package lexicon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `industry_keywords:
  - Pharmaceutical
  - "  biotech  "
  - ""
company_keywords:
  - pfizer
collaboration_keywords: []
academic_industry_keywords:
  - academic-industry
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	lex, err := Load(path)
	require.NoError(t, err)

	// Phrases are lowercased and trimmed, empties dropped.
	assert.Equal(t, []string{"pharmaceutical", "biotech"}, lex.Industry)
	assert.Equal(t, []string{"pfizer"}, lex.Companies)
	assert.Empty(t, lex.Collaboration)
	assert.Equal(t, 4, lex.Size())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("industry_keywords: {not: a list"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	lex, fallback := LoadOrDefault("")
	assert.True(t, fallback)
	assert.NotZero(t, lex.Size())

	lex, fallback = LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, fallback)
	assert.NotZero(t, lex.Size())

	path := filepath.Join(t.TempDir(), "lex.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company_keywords: [acme]\n"), 0o644))
	lex, fallback = LoadOrDefault(path)
	assert.False(t, fallback)
	assert.Equal(t, []string{"acme"}, lex.Companies)
}

func TestAllUnionsAndDedupes(t *testing.T) {
	lex := &Lexicon{
		Industry:      []string{"pharma", "clinical"},
		Companies:     []string{"pfizer", "pharma"}, // overlaps Industry
		Collaboration: []string{"sponsored by"},
	}

	all := lex.All()
	assert.Len(t, all, 4)
	assert.Contains(t, all, "pfizer")
	assert.Contains(t, all, "clinical")

	// Second call returns the cached union.
	assert.Equal(t, all, lex.All())
}

func TestDefaultLexiconMatchesKnownIndustry(t *testing.T) {
	c := NewClassifier(Default())

	assert.True(t, c.Matches("Pfizer Inc, Groton CT"))
	assert.True(t, c.Matches("Novartis Institutes for BioMedical Research"))
	assert.True(t, c.Matches("Department of Clinical Pharmacology, Uppsala"))
	// "Mathematics" contains the phrase "ema", so a physics department is
	// the safer negative case.
	assert.False(t, c.Matches("Dept of Physics, MIT, Cambridge MA"))
}
