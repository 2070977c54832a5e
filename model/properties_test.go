package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropertyURIs(t *testing.T) {
	uris := PropertyURIs("skos:narrower <http://x/a>, <http://x/b>")
	assert.Equal(t, []string{"<http://x/a>", "<http://x/b>"}, uris)

	assert.Nil(t, PropertyURIs("skos:notation \"42\""))
	assert.Nil(t, PropertyURIs(""))
}

func TestFirstPropertyURI(t *testing.T) {
	assert.Equal(t, "<http://x/a>", FirstPropertyURI("skosxl:prefLabel <http://x/a>, <http://x/b>"))
	assert.Equal(t, "", FirstPropertyURI("skos:notation \"42\""))
}
