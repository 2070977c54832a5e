package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func TestHierarchyGapWarnings(t *testing.T) {
	child := relConcept("http://x/42-10")

	findings := HierarchyGaps([]*model.Concept{child}, false)
	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, model.SeverityWarning, f.Severity)
		assert.Equal(t, model.CategoryHierarchyGap, f.Category)
	}
	assert.Contains(t, findings[0].Message, "missing intermediate level concept '42'")
	assert.Contains(t, findings[1].Message, "missing intermediate level concept '4'")
}

func TestMissingBroaderToPrefixViolation(t *testing.T) {
	child := relConcept("http://x/42-10")
	parent := relConcept("http://x/42")

	findings := HierarchyGaps([]*model.Concept{child, parent}, false)

	var violation *model.Finding
	gapWarnings := 0
	for i := range findings {
		switch findings[i].Category {
		case model.CategoryMissingBroaderToPrefix:
			violation = &findings[i]
		case model.CategoryHierarchyGap:
			gapWarnings++
		}
	}
	// Both the child and the parent miss a "4" level; "42" exists but is
	// unreferenced by any broader statement.
	assert.Equal(t, 2, gapWarnings)
	require.NotNil(t, violation)
	assert.Equal(t, model.SeverityViolation, violation.Severity)
	assert.Contains(t, violation.Message, "Inconsistent hierarchy: <http://x/42-10> (code 42-10)")
	assert.Contains(t, violation.Message, "http://x/42")
	assert.Contains(t, violation.Message, "Found broader targets: —")
}

func TestDeclaredBroaderSatisfiesPrefix(t *testing.T) {
	child := relConcept("http://x/42-10", "skos:broader <http://x/42>")
	parent := relConcept("http://x/42", "skos:narrower <http://x/42-10>")

	for _, f := range HierarchyGaps([]*model.Concept{child, parent}, false) {
		assert.NotEqual(t, model.CategoryMissingBroaderToPrefix, f.Category)
	}
}

func TestParentMissingNarrowerInfo(t *testing.T) {
	child := relConcept("http://x/42-10", "skos:broader <http://x/42>")
	parent := relConcept("http://x/42")

	var infos []model.Finding
	for _, f := range HierarchyGaps([]*model.Concept{child, parent}, true) {
		if f.Category == model.CategoryParentMissingNarrower {
			infos = append(infos, f)
		}
	}
	require.Len(t, infos, 1)
	assert.Equal(t, model.SeverityInfo, infos[0].Severity)
	assert.Contains(t, infos[0].Message, "Parent missing skos:narrower: http://x/42 should include <http://x/42-10> (code 42-10) as narrower")
}

func TestParentMissingNarrowerSuppressedByDefault(t *testing.T) {
	child := relConcept("http://x/42-10", "skos:broader <http://x/42>")
	parent := relConcept("http://x/42")

	for _, f := range HierarchyGaps([]*model.Concept{child, parent}, false) {
		assert.NotEqual(t, model.CategoryParentMissingNarrower, f.Category)
	}
}

func TestHierarchyGapsNoCodedConcepts(t *testing.T) {
	assert.Nil(t, HierarchyGaps([]*model.Concept{relConcept("http://x/about")}, true))
}
