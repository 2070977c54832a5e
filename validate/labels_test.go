package validate

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func TestPrefLabelCardinalityViolation(t *testing.T) {
	c := &model.Concept{
		URI: "http://x/1",
		PrefLabels: []model.Literal{
			{Text: "First", Lang: "en"},
			{Text: "Second", Lang: "en"},
			{Text: "Einzig", Lang: "de"},
		},
	}

	findings := LabelIntegrity([]*model.Concept{c})
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, model.SeverityViolation, f.Severity)
	assert.Equal(t, model.CategoryPrefLabelDuplicates, f.Category)
	assert.Contains(t, f.Message, "S14 Violation: <http://x/1> has 2 prefLabels for language 'en'")
	assert.Contains(t, f.Message, `"First", "Second"`)
}

func TestLabelDisjointnessViolation(t *testing.T) {
	c := &model.Concept{
		URI:        "http://x/1",
		PrefLabels: []model.Literal{{Text: "Term", Lang: "en"}},
		AltLabels:  []model.Literal{{Text: "Term", Lang: "en"}, {Text: "Other", Lang: "en"}},
	}

	findings := LabelIntegrity([]*model.Concept{c})
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, model.CategoryLabelOverlap, f.Category)
	assert.Contains(t, f.Message, "S13 Violation: <http://x/1> has overlapping prefLabel/altLabel")
	assert.Contains(t, f.Message, `"Term"@en`)
}

func TestLabelQualityWarnings(t *testing.T) {
	c := &model.Concept{
		URI: "http://x/1",
		PrefLabels: []model.Literal{
			{Text: strings.Repeat("a", 501), Lang: "en"},
		},
		AltLabels: []model.Literal{
			{Text: "", Lang: "en"},
			{Text: "BÃ¤ume", Lang: "de"},
			{Text: "http://elsewhere.org/term", Lang: "en"},
		},
	}

	findings := LabelIntegrity([]*model.Concept{c})
	require.Len(t, findings, 4)

	cats := make(map[model.Category]bool)
	for _, f := range findings {
		assert.Equal(t, model.SeverityWarning, f.Severity)
		cats[f.Category] = true
	}
	assert.True(t, cats[model.CategoryLabelTooLong])
	assert.True(t, cats[model.CategoryLabelEmpty])
	assert.True(t, cats[model.CategoryLabelEncodingIssue])
	assert.True(t, cats[model.CategoryLabelLooksLikeURI])
}

func TestLabelLengthCountsRunes(t *testing.T) {
	short := &model.Concept{
		URI:        "http://x/1",
		PrefLabels: []model.Literal{{Text: strings.Repeat("ä", 400), Lang: "de"}},
	}
	assert.Empty(t, LabelIntegrity([]*model.Concept{short}))

	long := &model.Concept{
		URI:        "http://x/2",
		PrefLabels: []model.Literal{{Text: strings.Repeat("ä", 501), Lang: "de"}},
	}
	findings := LabelIntegrity([]*model.Concept{long})
	require.Len(t, findings, 1)
	assert.Equal(t, model.CategoryLabelTooLong, findings[0].Category)
	assert.Contains(t, findings[0].Message, "(501 chars)")
	assert.True(t, utf8.ValidString(findings[0].Message))
}

func TestLabelIntegrityCleanConcept(t *testing.T) {
	c := &model.Concept{
		URI:        "http://x/1",
		PrefLabels: []model.Literal{{Text: "Datenbanken", Lang: "de"}, {Text: "Databases", Lang: "en"}},
		AltLabels:  []model.Literal{{Text: "DB", Lang: "en"}},
	}
	assert.Empty(t, LabelIntegrity([]*model.Concept{c}))
}
