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
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/matchbox/ai"
	"github.com/poiesic/matchbox/core"
)

const (
	// defaultEmbedBatchSize is the number of chunks sent per embedding request.
	defaultEmbedBatchSize = 16

	// defaultCacheSize bounds the chunk embedding cache. The canonical
	// corpora are small and static, so this comfortably holds every
	// chunk across all three entity types.
	defaultCacheSize = 1024
)

// RankedChunk is a corpus chunk paired with its similarity to a query.
// Index is the chunk's position in the original corpus order; ties in
// score preserve this order.
type RankedChunk struct {
	Text  string
	Score float32
	Index int
}

// Ranker scores corpus chunks against a query by cosine similarity of
// their embeddings. Chunk embeddings are computed in batches on a worker
// pool and cached by content ID, since the corpus is identical across
// queries; the query embedding is never cached.
type Ranker struct {
	embedder  ai.Embedder
	pool      *ants.Pool
	cache     *lru.Cache[core.ID, []float32]
	batchSize int
	logger    *slog.Logger
}

// RankerOption configures a Ranker.
type RankerOption func(*Ranker) error

// WithRankerPoolSize sets the worker pool size for batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithRankerPoolSize(size int) RankerOption {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		if r.pool != nil {
			r.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithRankerBatchSize sets the number of chunks per embedding request.
func WithRankerBatchSize(size int) RankerOption {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}
		r.batchSize = size
		return nil
	}
}

// WithRankerLogger sets a custom logger.
// Default is slog.Default().
func WithRankerLogger(logger *slog.Logger) RankerOption {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker around the given embedder.
func NewRanker(embedder ai.Embedder, opts ...RankerOption) (*Ranker, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	cache, err := lru.New[core.ID, []float32](defaultCacheSize)
	if err != nil {
		pool.Release()
		return nil, err
	}

	r := &Ranker{
		embedder:  embedder,
		pool:      pool,
		cache:     cache,
		batchSize: defaultEmbedBatchSize,
		logger:    slog.Default().With("component", "ranker"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			r.Release()
			return nil, err
		}
	}

	return r, nil
}

// Release releases the worker pool.
// The ranker should not be used after calling Release.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}

// Rank embeds the query and all chunks with the same model and returns
// up to topK chunks ordered by descending cosine similarity. Ties keep
// the original chunk order (the sort is stable over the corpus index).
// An empty chunk slice returns immediately without any embedding call.
func (r *Ranker) Rank(ctx context.Context, query string, chunks []string, topK int) ([]RankedChunk, error) {
	if len(chunks) == 0 || topK <= 0 {
		return nil, nil
	}

	queryVector, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "err", err)
		return nil, err
	}

	chunkVectors, err := r.embedChunks(ctx, chunks)
	if err != nil {
		r.logger.Error("error generating embeddings for chunks", "count", len(chunks), "err", err)
		return nil, err
	}

	ranked := make([]RankedChunk, len(chunks))
	for i, chunk := range chunks {
		ranked[i] = RankedChunk{
			Text:  chunk,
			Score: cosineSimilarity(queryVector, chunkVectors[i]),
			Index: i,
		}
	}

	slices.SortStableFunc(ranked, func(a, b RankedChunk) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked, nil
}

// embedChunks returns one vector per chunk, serving cached chunks and
// embedding the rest in batches on the worker pool.
func (r *Ranker) embedChunks(ctx context.Context, chunks []string) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))

	var misses []int
	for i, chunk := range chunks {
		if vector, ok := r.cache.Get(core.IDFromContent(chunk)); ok {
			vectors[i] = vector
		} else {
			misses = append(misses, i)
		}
	}
	if len(misses) == 0 {
		r.logger.Debug("all chunk embeddings served from cache", "count", len(chunks))
		return vectors, nil
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for start := 0; start < len(misses); start += r.batchSize {
		end := min(start+r.batchSize, len(misses))
		batch := misses[start:end]

		wg.Add(1)
		submitErr := r.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for j, idx := range batch {
				texts[j] = chunks[idx]
			}

			batchVectors, err := r.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(batchVectors) != len(batch) {
				err = fmt.Errorf("embedder returned %d vectors for %d texts", len(batchVectors), len(batch))
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			for j, idx := range batch {
				vectors[idx] = batchVectors[j]
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
		}
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}

	for _, idx := range misses {
		r.cache.Add(core.IDFromContent(chunks[idx]), vectors[idx])
	}
	return vectors, nil
}

// cosineSimilarity computes the normalized dot product of two vectors.
// Mismatched lengths or zero-norm vectors score 0 rather than producing
// NaN.
func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float32
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (float32(math.Sqrt(float64(normA))) * float32(math.Sqrt(float64(normB))))
}
