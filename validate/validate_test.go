package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janschachtschabel/skohub-ttl-cleaner/clean"
	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func newTestEngine() (*Engine, *model.RunState) {
	state := model.NewRunState()
	return NewEngine(state, clean.NewCanonicalizer(state), nil), state
}

func TestEngineRunCleanGraph(t *testing.T) {
	engine, _ := newTestEngine()
	concepts := []*model.Concept{
		relConcept("http://x/42", "skos:narrower <http://x/42-10>"),
		relConcept("http://x/42-10", "skos:broader <http://x/42>"),
	}
	concepts[0].OtherProperties = append(concepts[0].OtherProperties, "skos:inScheme <http://x/scheme>")
	concepts[1].OtherProperties = append(concepts[1].OtherProperties, "skos:inScheme <http://x/scheme>")

	res, err := engine.Run(concepts)
	require.NoError(t, err)
	assert.Empty(t, res.Violations)
	assert.Empty(t, res.Infos)
	// Only the missing "4" intermediate level remains.
	for _, w := range res.Warnings {
		assert.Equal(t, model.CategoryHierarchyGap, w.Category)
	}
}

func TestEngineRunCollectsAllSeverities(t *testing.T) {
	engine, _ := newTestEngine()
	engine.WarnMissingNarrower = true

	dup := relConcept("http://x/42")
	dup.PrefLabels = append(dup.PrefLabels, model.Literal{Text: "second", Lang: "en"})
	child := relConcept("http://x/42-10", "skos:broader <http://x/42>")

	res, err := engine.Run([]*model.Concept{dup, child})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Violations)
	assert.NotEmpty(t, res.Warnings)
	assert.NotEmpty(t, res.Infos)

	all := res.All()
	assert.Len(t, all, len(res.Violations)+len(res.Warnings)+len(res.Infos))
	assert.Equal(t, res.Violations[0], all[0])
}

func TestEngineSKOSXLOffByDefault(t *testing.T) {
	engine, _ := newTestEngine()
	label := relConcept("http://x/label-1", `skosxl:literalForm "text"@en`)

	res, err := engine.Run([]*model.Concept{label})
	require.NoError(t, err)
	for _, f := range res.All() {
		assert.NotEqual(t, model.CategoryXLOrphanedLabel, f.Category)
	}

	engine.EnableSKOSXL = true
	res, err = engine.Run([]*model.Concept{label})
	require.NoError(t, err)

	found := false
	for _, f := range res.All() {
		if f.Category == model.CategoryXLOrphanedLabel {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEnginePerConceptAndGlobalPartition(t *testing.T) {
	engine, _ := newTestEngine()
	child := relConcept("http://x/42-10")
	parent := relConcept("http://x/42")

	perConcept, err := engine.PerConcept([]*model.Concept{child})
	require.NoError(t, err)
	for _, f := range perConcept.All() {
		assert.NotEqual(t, model.CategoryHierarchyGap, f.Category)
	}

	global, err := engine.Global([]*model.Concept{child, parent})
	require.NoError(t, err)
	assert.NotEmpty(t, global.Warnings)
}

func TestRunFamilyRecoversPanic(t *testing.T) {
	engine, _ := newTestEngine()

	_, err := engine.runFamily("exploding", nil, func([]*model.Concept) []model.Finding {
		panic("boom")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exploding validation: boom")
}
