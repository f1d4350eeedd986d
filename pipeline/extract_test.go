package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObjects(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		objects, err := ExtractObjects(`[{"name":"A"},{"name":"B"}]`)
		require.NoError(t, err)
		require.Len(t, objects, 2)
		assert.Equal(t, "A", objects[0]["name"])
		assert.Equal(t, "B", objects[1]["name"])
	})

	t.Run("array surrounded by prose", func(t *testing.T) {
		objects, err := ExtractObjects("Here you go:\n[{\"name\":\"A\"}]\nThanks!")
		require.NoError(t, err)
		require.Len(t, objects, 1)
		assert.Equal(t, "A", objects[0]["name"])
	})

	t.Run("array inside markdown code fence", func(t *testing.T) {
		text := "```json\n[{\"username\":\"alice\"}]\n```"
		objects, err := ExtractObjects(text)
		require.NoError(t, err)
		require.Len(t, objects, 1)
		assert.Equal(t, "alice", objects[0]["username"])
	})

	t.Run("multiline array", func(t *testing.T) {
		text := "[\n  {\"name\": \"Mountain Hike\", \"location\": \"Blue Ridge\"},\n  {\"name\": \"Jazz Night\"}\n]"
		objects, err := ExtractObjects(text)
		require.NoError(t, err)
		assert.Len(t, objects, 2)
	})

	t.Run("empty array", func(t *testing.T) {
		objects, err := ExtractObjects("No matches: []")
		require.NoError(t, err)
		assert.Empty(t, objects)
	})

	t.Run("nested arrays span first to last bracket", func(t *testing.T) {
		objects, err := ExtractObjects(`[{"name":"A","interests":["hiking","jazz"]}]`)
		require.NoError(t, err)
		require.Len(t, objects, 1)
		assert.Equal(t, []any{"hiking", "jazz"}, objects[0]["interests"])
	})
}

func TestExtractObjects_Failures(t *testing.T) {
	t.Run("no brackets", func(t *testing.T) {
		_, err := ExtractObjects("I could not find any matches.")
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})

	t.Run("closing bracket before opening", func(t *testing.T) {
		_, err := ExtractObjects("] oops [")
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})

	t.Run("invalid JSON inside brackets", func(t *testing.T) {
		_, err := ExtractObjects(`[{"name": "A",}]`)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrNoJSONArray)
	})

	t.Run("non-object elements", func(t *testing.T) {
		_, err := ExtractObjects("[1,2,3]")
		assert.ErrorIs(t, err, ErrNonObjectElement)
	})

	t.Run("mixed object and scalar elements", func(t *testing.T) {
		_, err := ExtractObjects(`[{"name":"A"}, 7]`)
		assert.ErrorIs(t, err, ErrNonObjectElement)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ExtractObjects("")
		assert.ErrorIs(t, err, ErrNoJSONArray)
	})
}
