package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func TestIsValidURI(t *testing.T) {
	assert.True(t, IsValidURI("http://data.europa.eu/esco/skill/1"))
	assert.True(t, IsValidURI("<https://example.org/a>"))
	assert.False(t, IsValidURI("not a uri"))
	assert.False(t, IsValidURI("relative/path"))
	assert.False(t, IsValidURI(""))
}

func TestIsValidLanguageTag(t *testing.T) {
	assert.True(t, IsValidLanguageTag("en"))
	assert.True(t, IsValidLanguageTag("de-DE"))
	assert.True(t, IsValidLanguageTag("nds"))
	assert.True(t, IsValidLanguageTag("en-Latn-US"))
	assert.False(t, IsValidLanguageTag("EN"))
	assert.False(t, IsValidLanguageTag("e"))
	assert.False(t, IsValidLanguageTag("toolonglang"))
	assert.False(t, IsValidLanguageTag(""))
}

func TestDatatypesAndURIs(t *testing.T) {
	good := &model.Concept{
		URI:        "http://x/1",
		PrefLabels: []model.Literal{{Text: "ok", Lang: "en"}},
	}
	badURI := &model.Concept{
		URI:        "not a uri",
		PrefLabels: []model.Literal{{Text: "ok", Lang: "en"}},
	}
	badTag := &model.Concept{
		URI:        "http://x/2",
		PrefLabels: []model.Literal{{Text: "ok", Lang: "Deutsch"}},
	}

	findings := DatatypesAndURIs([]*model.Concept{good, badURI, badTag})
	require.Len(t, findings, 2)

	assert.Equal(t, model.SeverityViolation, findings[0].Severity)
	assert.Equal(t, model.CategoryInvalidURI, findings[0].Category)
	assert.Equal(t, "Invalid URI format: not a uri", findings[0].Message)

	assert.Equal(t, model.SeverityWarning, findings[1].Severity)
	assert.Equal(t, model.CategoryInvalidLanguageTag, findings[1].Category)
	assert.Equal(t, "Potentially invalid language tag 'Deutsch' in http://x/2", findings[1].Message)
}
