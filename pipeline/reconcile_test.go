package pipeline

import (
	"testing"

	"github.com/poiesic/matchbox/ai/mock"
	"github.com/poiesic/matchbox/core"
	"github.com/poiesic/matchbox/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatcher(t *testing.T) (*Matcher, *mock.MockProvider) {
	t.Helper()

	store, err := dataset.NewStore(
		[]core.Event{
			{Id: 1, Name: "Mountain Hike", Location: "Blue Ridge", Category: "Outdoors", Date: "2024-06-01", Time: "08:00", Description: "Guided hike"},
			{Id: 2, Name: "Jazz Night", Location: "Riverside", Category: "Music", Date: "2024-06-08", Time: "19:30"},
		},
		[]core.User{
			{Id: 1, Username: "alice", Email: "alice@example.com", Interests: []string{"hiking"}},
			{Id: 2, Username: "bmarsh", Email: "bmarsh@example.com", Interests: []string{"running"}},
		},
		[]core.Community{
			{Id: 1, Name: "Trail Blazers", Interests: []string{"hiking"}},
		},
	)
	require.NoError(t, err)

	provider := mock.NewMockProvider().(*mock.MockProvider)
	matcher, err := NewMatcher(store, provider)
	require.NoError(t, err)
	t.Cleanup(matcher.Release)

	return matcher, provider
}

func TestReconcile_CaseInsensitiveMatch(t *testing.T) {
	matcher, _ := testMatcher(t)

	t.Run("username different case", func(t *testing.T) {
		matched := matcher.reconcile([]map[string]any{{"username": "Alice"}}, core.EntityTypeUser)
		require.Len(t, matched, 1)
		assert.Equal(t, core.ID(1), matched[0].EntityID())
		assert.Equal(t, "alice", matched[0].Key())
	})

	t.Run("event name different case", func(t *testing.T) {
		matched := matcher.reconcile([]map[string]any{{"name": "MOUNTAIN HIKE"}}, core.EntityTypeEvent)
		require.Len(t, matched, 1)
		assert.Equal(t, "Mountain Hike", matched[0].Key())
	})
}

func TestReconcile_DropsUnknownCandidates(t *testing.T) {
	matcher, _ := testMatcher(t)

	matched := matcher.reconcile([]map[string]any{
		{"username": "nobody"},
		{"username": "alice"},
	}, core.EntityTypeUser)

	require.Len(t, matched, 1)
	assert.Equal(t, "alice", matched[0].Key())
}

func TestReconcile_MissingKeyField(t *testing.T) {
	matcher, _ := testMatcher(t)

	// A candidate without the key field reconciles as an empty key and
	// simply fails to match; no panic, no error.
	matched := matcher.reconcile([]map[string]any{
		{"location": "Blue Ridge"},
		{"name": 42},
	}, core.EntityTypeEvent)

	assert.Empty(t, matched)
}

func TestReconcile_DeduplicatesByCanonicalID(t *testing.T) {
	matcher, _ := testMatcher(t)

	matched := matcher.reconcile([]map[string]any{
		{"name": "Mountain Hike"},
		{"name": "mountain hike"},
		{"name": "Jazz Night"},
	}, core.EntityTypeEvent)

	require.Len(t, matched, 2)
	assert.Equal(t, "Mountain Hike", matched[0].Key())
	assert.Equal(t, "Jazz Night", matched[1].Key())
}

func TestReconcile_OrderFollowsCandidates(t *testing.T) {
	matcher, _ := testMatcher(t)

	matched := matcher.reconcile([]map[string]any{
		{"name": "Jazz Night"},
		{"name": "Mountain Hike"},
	}, core.EntityTypeEvent)

	require.Len(t, matched, 2)
	assert.Equal(t, "Jazz Night", matched[0].Key())
	assert.Equal(t, "Mountain Hike", matched[1].Key())
}

func TestReconcile_NeverCopiesCandidateFields(t *testing.T) {
	matcher, _ := testMatcher(t)

	// The LLM hallucinated a different location; the canonical record
	// must come through untouched.
	matched := matcher.reconcile([]map[string]any{
		{"name": "Mountain Hike", "location": "Mars", "description": "invented"},
	}, core.EntityTypeEvent)

	require.Len(t, matched, 1)
	event, ok := matched[0].(core.Event)
	require.True(t, ok)
	assert.Equal(t, "Blue Ridge", event.Location)
	assert.Equal(t, "Guided hike", event.Description)
}
