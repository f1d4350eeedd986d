package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEntity(t *testing.T) {
	t.Run("valid event", func(t *testing.T) {
		err := ValidateEntity(Event{Id: 1, Name: "Mountain Hike"})
		assert.NoError(t, err)
	})

	t.Run("valid user", func(t *testing.T) {
		err := ValidateEntity(User{Id: 2, Username: "alice", Email: "alice@example.com"})
		assert.NoError(t, err)
	})

	t.Run("nil entity", func(t *testing.T) {
		err := ValidateEntity(nil)
		assert.True(t, errors.Is(err, ErrInvalidEntity))
	})

	t.Run("zero id", func(t *testing.T) {
		err := ValidateEntity(Community{Name: "Trail Runners"})
		assert.True(t, errors.Is(err, ErrInvalidEntity))
	})

	t.Run("empty key", func(t *testing.T) {
		err := ValidateEntity(User{Id: 3})
		assert.True(t, errors.Is(err, ErrInvalidEntity))
		assert.True(t, errors.Is(err, ErrEmptyKey))
	})
}

func TestValidateEntityType(t *testing.T) {
	assert.NoError(t, ValidateEntityType(EntityTypeEvent))
	assert.NoError(t, ValidateEntityType(EntityTypeUser))
	assert.NoError(t, ValidateEntityType(EntityTypeCommunity))

	err := ValidateEntityType(EntityType(99))
	assert.True(t, errors.Is(err, ErrUnknownEntityType))
}
