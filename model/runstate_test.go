package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunState(t *testing.T) {
	state := NewRunState()
	_, err := uuid.Parse(state.RunID)
	require.NoError(t, err)
	assert.NotEqual(t, state.RunID, NewRunState().RunID)
}

func TestRecord(t *testing.T) {
	state := NewRunState()
	state.Record("fixed %d of %d", 1, 2)
	require.Len(t, state.ChangeLog, 1)
	assert.Equal(t, "fixed 1 of 2", state.ChangeLog[0])
}

func TestStatsMap(t *testing.T) {
	s := Stats{TotalConcepts: 3, DuplicatesRemoved: 1, CommaFixes: 2}
	m := s.Map()

	assert.Len(t, m, 14)
	assert.Equal(t, 3, m["total_concepts"])
	assert.Equal(t, 1, m["duplicates_removed"])
	assert.Equal(t, 2, m["comma_fixes"])
	assert.Equal(t, 0, m["concepts_without_preflabel"])
}
