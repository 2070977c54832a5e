package clean

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

func TestCleanAbsoluteURIPassthrough(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	assert.Equal(t, "http://data.europa.eu/esco/skill/1", c.Clean("http://data.europa.eu/esco/skill/1"))
	assert.Equal(t, "http://data.europa.eu/esco/skill/1", c.Clean("<http://data.europa.eu/esco/skill/1>"))
}

func TestCleanEscoPrefix(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	assert.Equal(t, "http://data.europa.eu/esco/skill/123", c.Clean("esco:123"))
}

func TestCleanUnknownPrefix(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	assert.Equal(t, "http://example.org/foo/bar", c.Clean("foo:bar"))
}

func TestCleanRelativeAgainstBase(t *testing.T) {
	state := model.NewRunState()
	state.BaseURI = "http://vocab.example.com/skills/"
	c := NewCanonicalizer(state)

	assert.Equal(t, "http://vocab.example.com/skills/42-10", c.Clean("<42-10>"))
	assert.Equal(t, "http://vocab.example.com/skills/42-10", c.Clean("42-10"))
}

func TestCleanBareTokenDefaultNamespace(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	assert.Equal(t, "http://data.europa.eu/esco/skill/311", c.Clean("311"))
}

func TestResolveClassifiesPrefixExpansionAsFix(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	cleaned, issue := c.Resolve("esco:123")
	assert.Equal(t, "http://data.europa.eu/esco/skill/123", cleaned)
	assert.Equal(t, "URI fixed", issue)
	assert.Equal(t, 1, state.Stats.MalformedURIsFixed)
	assert.Equal(t, 0, state.Stats.URINormalizations)
	assert.Contains(t, state.ChangeLog[0], "URI fixed: expanded prefix 'esco:123'")
}

func TestResolveClassifiesBracketRemovalAsNormalization(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	cleaned, issue := c.Resolve("<http://x.org/a>")
	assert.Equal(t, "http://x.org/a", cleaned)
	assert.Equal(t, "URI normalized", issue)
	assert.Equal(t, 0, state.Stats.MalformedURIsFixed)
	assert.Equal(t, 1, state.Stats.URINormalizations)
	assert.Contains(t, state.ChangeLog[0], "angle brackets removed")
}

func TestResolveSuppressesBaseRoundTrip(t *testing.T) {
	state := model.NewRunState()
	state.BaseURI = "http://vocab.example.com/skills/"
	c := NewCanonicalizer(state)

	cleaned, issue := c.Resolve("<42-10>")
	assert.Equal(t, "http://vocab.example.com/skills/42-10", cleaned)
	assert.Equal(t, "", issue)
	assert.Empty(t, state.ChangeLog)
	assert.Equal(t, 0, state.Stats.URINormalizations)
}

func TestResolveDefaultNamespaceIsFix(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	cleaned, issue := c.Resolve("311")
	assert.Equal(t, "http://data.europa.eu/esco/skill/311", cleaned)
	assert.Equal(t, "URI fixed", issue)
	assert.Contains(t, state.ChangeLog[0], "added default namespace")
}

func TestResolveUntouched(t *testing.T) {
	state := model.NewRunState()
	c := NewCanonicalizer(state)

	cleaned, issue := c.Resolve("http://x.org/a")
	assert.Equal(t, "http://x.org/a", cleaned)
	assert.Equal(t, "", issue)
	assert.Empty(t, state.ChangeLog)
}
