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
	"fmt"
	"strings"

	"github.com/poiesic/matchbox/core"
)

// Corpus serializes the canonical collection for the given type into a
// single labeled-field text block suitable for chunking and embedding.
// The entity key fields appear verbatim so the LLM can echo them back
// for reconciliation.
func (s *Store) Corpus(t core.EntityType) string {
	var b strings.Builder

	switch t {
	case core.EntityTypeEvent:
		for _, e := range s.events {
			fmt.Fprintf(&b, "Name: %s\nLocation: %s\nType: %s\nDate: %s\nTime: %s\nDescription: %s\n\n",
				e.Name, e.Location, e.Category, e.Date, e.Time, e.Description)
		}
	case core.EntityTypeUser:
		for _, u := range s.users {
			fmt.Fprintf(&b, "Username: %s\nEmail: %s\nInterests: %s\n\n",
				u.Username, u.Email, strings.Join(u.Interests, ", "))
		}
	case core.EntityTypeCommunity:
		for _, c := range s.communities {
			fmt.Fprintf(&b, "Name: %s\nDescription: %s\nInterests: %s\n\n",
				c.Name, c.Description, strings.Join(c.Interests, ", "))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
