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

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/matchbox/ai"
	"github.com/poiesic/matchbox/core"
	"github.com/poiesic/matchbox/dataset"
)

// DefaultTopK is the number of ranked chunks forwarded to the LLM when
// no value is configured.
const DefaultTopK = 5

// Matcher runs the retrieval pipeline: serialize the canonical dataset,
// chunk it, rank chunks against the query by embedding similarity, ask
// the LLM for matches grounded in the top chunks, then reconcile the
// model's answer back to canonical entities.
type Matcher struct {
	store     *dataset.Store
	ranker    *Ranker
	completer ai.Completer
	chunkSize int
	topK      int
	logger    *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher) error

// WithChunkSize sets the corpus chunk size in bytes.
// Default is DefaultChunkSize.
func WithChunkSize(size int) Option {
	return func(m *Matcher) error {
		if size < 1 {
			size = DefaultChunkSize
		}
		m.chunkSize = size
		return nil
	}
}

// WithTopK sets how many ranked chunks are forwarded to the LLM.
// Default is DefaultTopK.
func WithTopK(topK int) Option {
	return func(m *Matcher) error {
		if topK < 1 {
			topK = DefaultTopK
		}
		m.topK = topK
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
		return nil
	}
}

// NewMatcher creates a new matcher over the given canonical store and
// AI provider.
func NewMatcher(store *dataset.Store, provider ai.Provider, opts ...Option) (*Matcher, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	m := &Matcher{
		store:     store,
		completer: provider.Completer(),
		chunkSize: DefaultChunkSize,
		topK:      DefaultTopK,
		logger:    slog.Default().With("component", "matcher"),
	}

	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	ranker, err := NewRanker(provider.Embedder(), WithRankerLogger(m.logger))
	if err != nil {
		return nil, err
	}
	m.ranker = ranker

	return m, nil
}

// Release releases the matcher's worker pool.
// The matcher should not be used after calling Release.
func (m *Matcher) Release() {
	if m.ranker != nil {
		m.ranker.Release()
	}
}

// FindMatches runs the full pipeline for a query against the canonical
// collection of the given type. Returns the matched canonical entities,
// possibly empty; "no matches" is never an error. An empty query fails
// with core.ErrEmptyQuery before any embedding or LLM call is made.
// Malformed LLM output is recovered as an empty result and logged with
// the offending text.
func (m *Matcher) FindMatches(ctx context.Context, query string, entityType core.EntityType) ([]core.Entity, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, core.ErrEmptyQuery
	}
	if err := core.ValidateEntityType(entityType); err != nil {
		return nil, err
	}

	corpus := m.store.Corpus(entityType)
	chunks := ChunkText(corpus, m.chunkSize)
	if len(chunks) == 0 {
		m.logger.Warn("no dataset entries for entity type", "entityType", entityType.String())
		return []core.Entity{}, nil
	}

	ranked, err := m.ranker.Rank(ctx, query, chunks, m.topK)
	if err != nil {
		return nil, err
	}

	topChunks := make([]string, len(ranked))
	for i, chunk := range ranked {
		topChunks[i] = chunk.Text
	}

	prompt := buildPrompt(query, strings.Join(topChunks, "\n"), entityType)

	response, err := m.completer.Complete(ctx, extractionSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("raw completion", "entityType", entityType.String(), "response", response)

	candidates, err := ExtractObjects(response)
	if err != nil {
		m.logger.Error("failed to extract matches from completion", "err", err, "response", response)
		return []core.Entity{}, nil
	}

	matched := m.reconcile(candidates, entityType)
	m.logger.Info("match request completed",
		"entityType", entityType.String(),
		"chunks", len(chunks),
		"candidates", len(candidates),
		"matched", len(matched))
	return matched, nil
}

// Chat forwards a message to the completion service with no retrieval
// context. An empty message fails with core.ErrEmptyMessage.
func (m *Matcher) Chat(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", core.ErrEmptyMessage
	}
	return m.completer.Chat(ctx, message)
}
