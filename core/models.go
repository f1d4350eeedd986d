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


package core

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Dataset entities carry stable IDs assigned at load time; ephemeral
// values (text chunks) derive content-based IDs via IDFromContent.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EntityType identifies which canonical collection an entity belongs to.
type EntityType int

const (
	// EntityTypeEvent represents an event entity.
	EntityTypeEvent EntityType = iota + 1
	// EntityTypeUser represents a user entity.
	EntityTypeUser
	// EntityTypeCommunity represents a community entity.
	EntityTypeCommunity
)

// String returns the lowercase name of the entity type.
func (t EntityType) String() string {
	switch t {
	case EntityTypeEvent:
		return "event"
	case EntityTypeUser:
		return "user"
	case EntityTypeCommunity:
		return "community"
	default:
		return "unknown"
	}
}

// ParseEntityType converts a string such as "event" or "user" into an EntityType.
// Matching is case-insensitive; plural forms are accepted.
func ParseEntityType(s string) (EntityType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "event", "events":
		return EntityTypeEvent, nil
	case "user", "users":
		return EntityTypeUser, nil
	case "community", "communities":
		return EntityTypeCommunity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEntityType, s)
	}
}

// Entity is the common view over the three canonical entity variants.
// Key returns the reconciliation key: the display name, or the username
// for users. Matching on the key is always case-insensitive.
type Entity interface {
	EntityID() ID
	Key() string
	Kind() EntityType
}

// Event is a scheduled happening with a location and date.
type Event struct {
	Id          ID     `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Category    string `json:"type"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// EntityID returns the event's stable identifier.
func (e Event) EntityID() ID { return e.Id }

// Key returns the event name, used for candidate reconciliation.
func (e Event) Key() string { return e.Name }

// Kind returns EntityTypeEvent.
func (e Event) Kind() EntityType { return EntityTypeEvent }

// Day derives the weekday name from the event's date.
// Returns an empty string for malformed dates.
func (e Event) Day() string { return DayFromDate(e.Date) }

// User is a member profile with interests and community memberships.
type User struct {
	Id           ID       `json:"id"`
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Interests    []string `json:"interests"`
	CommunityIds []ID     `json:"community_ids"`
}

// EntityID returns the user's stable identifier.
func (u User) EntityID() ID { return u.Id }

// Key returns the username, used for candidate reconciliation.
func (u User) Key() string { return u.Username }

// Kind returns EntityTypeUser.
func (u User) Kind() EntityType { return EntityTypeUser }

// Community is an interest group that users can belong to.
type Community struct {
	Id          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Interests   []string `json:"interests"`
	ImageURL    string   `json:"image_url,omitempty"`
}

// EntityID returns the community's stable identifier.
func (c Community) EntityID() ID { return c.Id }

// Key returns the community name, used for candidate reconciliation.
func (c Community) Key() string { return c.Name }

// Kind returns EntityTypeCommunity.
func (c Community) Kind() EntityType { return EntityTypeCommunity }
