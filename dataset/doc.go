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


// Package dataset provides the canonical in-memory entity collections
// that Matchbox searches over.
//
// A Store is loaded once (from a JSON file or the built-in seed data)
// and never mutated afterwards, which makes it safe for concurrent
// readers across simultaneous match requests. The store is the single
// source of truth: match results always contain entities exactly as
// they appear here, never values synthesized by the LLM.
//
// Corpus serialization turns a collection into labeled-field text
// blocks, one per entity, which the pipeline chunks and embeds.
package dataset
