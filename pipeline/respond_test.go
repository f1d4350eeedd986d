package pipeline

import (
	"testing"

	"github.com/poiesic/matchbox/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResponse(t *testing.T) {
	t.Run("events", func(t *testing.T) {
		resp := BuildResponse([]core.Entity{
			core.Event{Id: 1, Name: "Mountain Hike"},
			core.Event{Id: 2, Name: "Jazz Night"},
		}, core.EntityTypeEvent)

		assert.Equal(t, "Here are the events that suit you according to your preferences: Mountain Hike, Jazz Night", resp.Message)
		require.Len(t, resp.Entities, 2)
	})

	t.Run("users", func(t *testing.T) {
		resp := BuildResponse([]core.Entity{
			core.User{Id: 1, Username: "alice"},
		}, core.EntityTypeUser)

		assert.Equal(t, "Here are the users that match your query: alice", resp.Message)
	})

	t.Run("communities top three", func(t *testing.T) {
		resp := BuildResponse([]core.Entity{
			core.Community{Id: 1, Name: "Trail Blazers"},
			core.Community{Id: 2, Name: "Makers Circle"},
			core.Community{Id: 3, Name: "Road Runners"},
			core.Community{Id: 4, Name: "Book Club"},
		}, core.EntityTypeCommunity)

		// The count reflects all matches but the message only names
		// the first three.
		assert.Equal(t, "Found 4 communities matching your interests. Top matches include Trail Blazers, Makers Circle, Road Runners.", resp.Message)
		assert.Len(t, resp.Entities, 4)
	})

	t.Run("communities fewer than three", func(t *testing.T) {
		resp := BuildResponse([]core.Entity{
			core.Community{Id: 1, Name: "Trail Blazers"},
		}, core.EntityTypeCommunity)

		assert.Equal(t, "Found 1 communities matching your interests. Top matches include Trail Blazers.", resp.Message)
	})
}

func TestBuildResponse_ZeroMatches(t *testing.T) {
	tests := []struct {
		entityType core.EntityType
		want       string
	}{
		{core.EntityTypeEvent, "I couldn't find any events matching your criteria. Would you like to try a different search?"},
		{core.EntityTypeUser, "I couldn't find any users matching your criteria. Would you like to try a different search?"},
		{core.EntityTypeCommunity, "No matching communities found. Try different interests or keywords."},
	}

	for _, tt := range tests {
		t.Run(tt.entityType.String(), func(t *testing.T) {
			resp := BuildResponse(nil, tt.entityType)
			assert.Equal(t, tt.want, resp.Message)
			assert.Empty(t, resp.Entities)
			assert.NotNil(t, resp.Entities)
		})
	}
}
