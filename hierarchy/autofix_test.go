package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func concept(uri string, props ...string) *model.Concept {
	return &model.Concept{
		URI:             uri,
		PrefLabels:      []model.Literal{{Text: "x", Lang: "en"}},
		OtherProperties: props,
	}
}

func TestBuildCodeIndex(t *testing.T) {
	idx := BuildCodeIndex([]*model.Concept{
		concept("http://x/311"),
		concept("http://x/31"),
		concept("http://x/about"),
	})

	assert.Equal(t, "http://x/311", idx.CodeToURI["311"])
	assert.Equal(t, "31", idx.URIToCode["http://x/31"])
	assert.NotContains(t, idx.URIToCode, "http://x/about")
}

func TestAutofixAddsBroaderToNearestPrefixParent(t *testing.T) {
	state := model.NewRunState()
	child := concept("http://x/311")
	parent := concept("http://x/31")

	added := Autofix([]*model.Concept{child, parent}, state)
	assert.Equal(t, 1, added)
	require.Len(t, child.OtherProperties, 1)
	assert.Equal(t, "skos:broader <http://x/31>", child.OtherProperties[0])
	require.Len(t, state.ChangeLog, 1)
	assert.Contains(t, state.ChangeLog[0], "Autofix: added skos:broader <http://x/31> to <http://x/311> based on code 311")
}

func TestAutofixPrefersLongestExistingPrefix(t *testing.T) {
	state := model.NewRunState()
	child := concept("http://x/44-1-2")
	mid := concept("http://x/44-1")
	top := concept("http://x/44")

	added := Autofix([]*model.Concept{child, mid, top}, state)
	assert.Equal(t, 2, added)
	require.Len(t, child.OtherProperties, 1)
	assert.Equal(t, "skos:broader <http://x/44-1>", child.OtherProperties[0])
	assert.Equal(t, "skos:broader <http://x/44>", mid.OtherProperties[0])
}

func TestAutofixSkipsDeclaredBroader(t *testing.T) {
	state := model.NewRunState()
	child := concept("http://x/311", "skos:broader <http://x/31>")
	parent := concept("http://x/31")

	added := Autofix([]*model.Concept{child, parent}, state)
	assert.Equal(t, 0, added)
	assert.Len(t, child.OtherProperties, 1)
}

func TestAutofixNoCandidates(t *testing.T) {
	state := model.NewRunState()
	lone := concept("http://x/311")

	assert.Equal(t, 0, Autofix([]*model.Concept{lone}, state))
	assert.Empty(t, lone.OtherProperties)
}

func TestBroaderCodes(t *testing.T) {
	child := concept("http://x/311", "skos:broader <http://x/31>")
	parent := concept("http://x/31")
	idx := BuildCodeIndex([]*model.Concept{child, parent})

	broader := BroaderCodes([]*model.Concept{child, parent}, idx)
	assert.True(t, broader["311"]["31"])
	assert.Empty(t, broader["31"])
}
