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

import "errors"

// Domain errors
var (
	// ErrEmptyQuery indicates a match query was empty after trimming.
	// Callers should map this to a client error (HTTP 400 equivalent).
	ErrEmptyQuery = errors.New("query cannot be empty")

	// ErrEmptyMessage indicates a chat message was empty after trimming.
	// Callers should map this to a client error (HTTP 400 equivalent).
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrUpstream wraps failures of the embedding or completion services
	// (network, auth, quota). Callers should surface a generic server
	// error without leaking the wrapped detail.
	ErrUpstream = errors.New("upstream service failure")

	// ErrNotFound indicates a requested entity id is absent from the
	// canonical dataset.
	ErrNotFound = errors.New("entity not found")

	// ErrUnknownEntityType indicates an entity type string could not be parsed.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrInvalidEntity indicates an entity failed validation.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrEmptyKey indicates an entity's name or username field is empty.
	ErrEmptyKey = errors.New("entity key cannot be empty")
)
