package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func TestSummarizeCountsAllCategories(t *testing.T) {
	findings := []model.Finding{
		model.Violation(model.CategoryPrefLabelDuplicates, "a"),
		model.Violation(model.CategoryPrefLabelDuplicates, "b"),
		model.Warning(model.CategoryHierarchyGap, "c"),
	}

	summary := Summarize(findings)
	assert.Len(t, summary, len(model.SummaryCategories))
	assert.Equal(t, 2, summary[model.CategoryPrefLabelDuplicates])
	assert.Equal(t, 1, summary[model.CategoryHierarchyGap])
	assert.Equal(t, 0, summary[model.CategoryLabelOverlap])
	assert.Equal(t, 0, summary[model.CategorySimpleCycle])
}

func TestSummarizeExcludesXLCategories(t *testing.T) {
	findings := []model.Finding{
		model.Warning(model.CategoryXLURIConflict, "a"),
		model.Warning(model.CategoryXLOrphanedLabel, "b"),
	}

	summary := Summarize(findings)
	assert.Len(t, summary, len(model.SummaryCategories))
	assert.NotContains(t, summary, model.CategoryXLURIConflict)
	assert.NotContains(t, summary, model.CategoryXLOrphanedLabel)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Len(t, summary, len(model.SummaryCategories))
	for _, cat := range model.SummaryCategories {
		assert.Equal(t, 0, summary[cat])
	}
}
