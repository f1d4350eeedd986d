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


package pipeline

import "errors"

var (
	// ErrStoreRequired is returned when a dataset store is not provided.
	ErrStoreRequired = errors.New("dataset store required")

	// ErrProviderRequired is returned when an AI provider is not provided.
	ErrProviderRequired = errors.New("AI provider required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrNoJSONArray indicates no bracket-delimited array was found in
	// the completion text.
	ErrNoJSONArray = errors.New("no JSON array found in response")

	// ErrNonObjectElement indicates the parsed array contains elements
	// that are not JSON objects.
	ErrNonObjectElement = errors.New("array contains non-object items")
)
