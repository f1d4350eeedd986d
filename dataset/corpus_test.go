package dataset

import (
	"strings"
	"testing"

	"github.com/poiesic/matchbox/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorpus_Events(t *testing.T) {
	store := testStore(t)

	corpus := store.Corpus(core.EntityTypeEvent)

	assert.Contains(t, corpus, "Name: Mountain Hike")
	assert.Contains(t, corpus, "Location: Blue Ridge")
	assert.Contains(t, corpus, "Type: Outdoors")
	assert.Contains(t, corpus, "Date: 2024-06-01")
	assert.Contains(t, corpus, "Description: Guided hike")
	assert.Contains(t, corpus, "Name: Jazz Night")

	// One block per event, dataset order preserved.
	assert.Less(t, strings.Index(corpus, "Mountain Hike"), strings.Index(corpus, "Jazz Night"))
}

func TestCorpus_Users(t *testing.T) {
	store := testStore(t)

	corpus := store.Corpus(core.EntityTypeUser)

	assert.Contains(t, corpus, "Username: alice")
	assert.Contains(t, corpus, "Email: alice@example.com")
	assert.Contains(t, corpus, "Interests: hiking")
	assert.NotContains(t, corpus, "Name: Mountain Hike")
}

func TestCorpus_Communities(t *testing.T) {
	store := testStore(t)

	corpus := store.Corpus(core.EntityTypeCommunity)

	assert.Contains(t, corpus, "Name: Trail Blazers")
	assert.Contains(t, corpus, "Description: Hiking group")
}

func TestCorpus_EmptyCollection(t *testing.T) {
	store, err := NewStore(nil, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, store.Corpus(core.EntityTypeEvent))
	assert.Empty(t, store.Corpus(core.EntityTypeUser))
	assert.Empty(t, store.Corpus(core.EntityTypeCommunity))
}
