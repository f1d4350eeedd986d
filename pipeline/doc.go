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


// Package pipeline implements the semantic retrieval and extraction
// pipeline at the heart of Matchbox.
//
// A match request flows through six stages:
//
//	corpus -> ChunkText -> Ranker.Rank -> buildPrompt -> Completer.Complete -> ExtractObjects -> reconcile
//
// The canonical dataset is serialized to labeled text, split into
// word-safe chunks, and ranked against the query by cosine similarity
// of embeddings. The top chunks ground an LLM extraction prompt; the
// model's JSON-array answer is parsed tolerantly and reconciled back to
// canonical entities by case-insensitive key lookup.
//
// The pipeline is synchronous per request. The only shared mutable
// state is the Ranker's chunk embedding cache, which is safe for
// concurrent use; the LLM round-trip, the dominant latency source, is
// issued without holding any lock. Callers bound request latency with
// context deadlines.
//
// Failure policy: empty queries are programmer errors (core.ErrEmptyQuery);
// upstream transport failures propagate as core.ErrUpstream; malformed
// LLM output is not an error at this boundary — it is logged together
// with the offending text and collapsed to an empty match list.
package pipeline
