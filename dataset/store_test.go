package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/matchbox/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(
		[]core.Event{
			{Id: 1, Name: "Mountain Hike", Location: "Blue Ridge", Category: "Outdoors", Date: "2024-06-01", Time: "08:00", Description: "Guided hike"},
			{Id: 2, Name: "Jazz Night", Location: "Riverside", Category: "Music", Date: "2024-06-08", Time: "19:30"},
		},
		[]core.User{
			{Id: 1, Username: "alice", Email: "alice@example.com", Interests: []string{"hiking"}, CommunityIds: []core.ID{1}},
		},
		[]core.Community{
			{Id: 1, Name: "Trail Blazers", Description: "Hiking group", Interests: []string{"hiking"}},
		},
	)
	require.NoError(t, err)
	return store
}

func TestNewStore_Validation(t *testing.T) {
	t.Run("rejects event without name", func(t *testing.T) {
		_, err := NewStore([]core.Event{{Id: 1}}, nil, nil)
		assert.True(t, errors.Is(err, core.ErrInvalidEntity))
	})

	t.Run("rejects user without id", func(t *testing.T) {
		_, err := NewStore(nil, []core.User{{Username: "alice"}}, nil)
		assert.True(t, errors.Is(err, core.ErrInvalidEntity))
	})

	t.Run("empty collections are valid", func(t *testing.T) {
		store, err := NewStore(nil, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, store.Events())
		assert.Empty(t, store.Entities(core.EntityTypeUser))
	})
}

func TestStore_ByID(t *testing.T) {
	store := testStore(t)

	event, err := store.EventByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Mountain Hike", event.Name)

	user, err := store.UserByID(1)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	community, err := store.CommunityByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Trail Blazers", community.Name)

	_, err = store.EventByID(99)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = store.UserByID(99)
	assert.True(t, errors.Is(err, core.ErrNotFound))

	_, err = store.CommunityByID(99)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestStore_FindByKey(t *testing.T) {
	store := testStore(t)

	t.Run("case-insensitive event match", func(t *testing.T) {
		entity, ok := store.FindByKey(core.EntityTypeEvent, "mountain hike")
		require.True(t, ok)
		assert.Equal(t, core.ID(1), entity.EntityID())
	})

	t.Run("case-insensitive username match", func(t *testing.T) {
		entity, ok := store.FindByKey(core.EntityTypeUser, "ALICE")
		require.True(t, ok)
		assert.Equal(t, "alice", entity.Key())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := store.FindByKey(core.EntityTypeEvent, "Underwater Chess")
		assert.False(t, ok)
	})

	t.Run("empty key never matches", func(t *testing.T) {
		_, ok := store.FindByKey(core.EntityTypeUser, "")
		assert.False(t, ok)
	})
}

func TestStore_Entities_Order(t *testing.T) {
	store := testStore(t)

	entities := store.Entities(core.EntityTypeEvent)
	require.Len(t, entities, 2)
	assert.Equal(t, "Mountain Hike", entities[0].Key())
	assert.Equal(t, "Jazz Night", entities[1].Key())
}

func TestLoadFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dataset.json")
		contents := `{
			"events": [{"id": 1, "name": "Mountain Hike", "location": "Blue Ridge", "type": "Outdoors", "date": "2024-06-01", "time": "08:00"}],
			"users": [{"id": 1, "username": "alice", "email": "alice@example.com", "interests": ["hiking"], "community_ids": [1]}],
			"communities": [{"id": 1, "name": "Trail Blazers", "interests": ["hiking"]}]
		}`
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		store, err := LoadFile(path)
		require.NoError(t, err)

		event, err := store.EventByID(1)
		require.NoError(t, err)
		assert.Equal(t, "Outdoors", event.Category)
		assert.Equal(t, "Saturday", event.Day())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestSeed(t *testing.T) {
	store := Seed()

	assert.NotEmpty(t, store.Events())
	assert.NotEmpty(t, store.Users())
	assert.NotEmpty(t, store.Communities())

	// Seed keys must be unique within each collection for reconciliation.
	seen := map[string]bool{}
	for _, e := range store.Events() {
		assert.False(t, seen[e.Name], "duplicate event name %q", e.Name)
		seen[e.Name] = true
	}
}
