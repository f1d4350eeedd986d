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

import "fmt"

// ValidateEntity validates any entity variant according to domain rules.
//
// Validation rules:
//   - Id must be non-zero (dataset entities carry stable assigned IDs)
//   - Key (name or username) must not be empty
//
// NOT validated:
//   - Event dates (a malformed date only degrades the derived day)
//   - Optional fields (description, image URL, interests)
func ValidateEntity(entity Entity) error {
	if entity == nil {
		return fmt.Errorf("%w: entity is nil", ErrInvalidEntity)
	}

	if entity.EntityID() == 0 {
		return fmt.Errorf("%w: %s id must be non-zero", ErrInvalidEntity, entity.Kind())
	}

	if entity.Key() == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntity, ErrEmptyKey)
	}

	return nil
}

// ValidateEntityType validates that an EntityType has a valid value.
func ValidateEntityType(t EntityType) error {
	if t != EntityTypeEvent && t != EntityTypeUser && t != EntityTypeCommunity {
		return fmt.Errorf("%w: value %d", ErrUnknownEntityType, t)
	}
	return nil
}
