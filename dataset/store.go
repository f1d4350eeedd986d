// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/poiesic/matchbox/core"
)

// Store holds the canonical entity collections. It is populated once at
// construction and never mutated afterwards, so it is safe for concurrent
// readers without locking.
type Store struct {
	events      []core.Event
	users       []core.User
	communities []core.Community
}

// NewStore creates a store from the given collections. Every entity is
// validated; the input slices are copied so later mutation by the caller
// cannot affect the store.
func NewStore(events []core.Event, users []core.User, communities []core.Community) (*Store, error) {
	for _, e := range events {
		if err := core.ValidateEntity(e); err != nil {
			return nil, fmt.Errorf("event %d: %w", e.Id, err)
		}
	}
	for _, u := range users {
		if err := core.ValidateEntity(u); err != nil {
			return nil, fmt.Errorf("user %d: %w", u.Id, err)
		}
	}
	for _, c := range communities {
		if err := core.ValidateEntity(c); err != nil {
			return nil, fmt.Errorf("community %d: %w", c.Id, err)
		}
	}

	return &Store{
		events:      slices.Clone(events),
		users:       slices.Clone(users),
		communities: slices.Clone(communities),
	}, nil
}

// fileContents is the on-disk JSON shape for LoadFile.
type fileContents struct {
	Events      []core.Event     `json:"events"`
	Users       []core.User      `json:"users"`
	Communities []core.Community `json:"communities"`
}

// LoadFile reads a dataset from a JSON file with top-level "events",
// "users", and "communities" arrays.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var contents fileContents
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}

	return NewStore(contents.Events, contents.Users, contents.Communities)
}

// Events returns a copy of the canonical event collection in dataset order.
func (s *Store) Events() []core.Event {
	return slices.Clone(s.events)
}

// Users returns a copy of the canonical user collection in dataset order.
func (s *Store) Users() []core.User {
	return slices.Clone(s.users)
}

// Communities returns a copy of the canonical community collection in dataset order.
func (s *Store) Communities() []core.Community {
	return slices.Clone(s.communities)
}

// Entities returns the canonical collection for the given type as the
// common Entity view, in dataset order.
func (s *Store) Entities(t core.EntityType) []core.Entity {
	switch t {
	case core.EntityTypeEvent:
		entities := make([]core.Entity, len(s.events))
		for i, e := range s.events {
			entities[i] = e
		}
		return entities
	case core.EntityTypeUser:
		entities := make([]core.Entity, len(s.users))
		for i, u := range s.users {
			entities[i] = u
		}
		return entities
	case core.EntityTypeCommunity:
		entities := make([]core.Entity, len(s.communities))
		for i, c := range s.communities {
			entities[i] = c
		}
		return entities
	default:
		return nil
	}
}

// EventByID returns the event with the given id, or core.ErrNotFound.
func (s *Store) EventByID(id core.ID) (core.Event, error) {
	for _, e := range s.events {
		if e.Id == id {
			return e, nil
		}
	}
	return core.Event{}, fmt.Errorf("%w: event %d", core.ErrNotFound, id)
}

// UserByID returns the user with the given id, or core.ErrNotFound.
func (s *Store) UserByID(id core.ID) (core.User, error) {
	for _, u := range s.users {
		if u.Id == id {
			return u, nil
		}
	}
	return core.User{}, fmt.Errorf("%w: user %d", core.ErrNotFound, id)
}

// CommunityByID returns the community with the given id, or core.ErrNotFound.
func (s *Store) CommunityByID(id core.ID) (core.Community, error) {
	for _, c := range s.communities {
		if c.Id == id {
			return c, nil
		}
	}
	return core.Community{}, fmt.Errorf("%w: community %d", core.ErrNotFound, id)
}

// FindByKey looks up an entity by its reconciliation key (name, or
// username for users). The comparison is case-insensitive. Returns the
// first match in dataset order.
func (s *Store) FindByKey(t core.EntityType, key string) (core.Entity, bool) {
	if key == "" {
		return nil, false
	}
	for _, entity := range s.Entities(t) {
		if strings.EqualFold(entity.Key(), key) {
			return entity, true
		}
	}
	return nil, false
}
