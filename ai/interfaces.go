package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity ranking.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Completer sends prompts to a chat completion service and returns raw
// response text. Implementations must be thread-safe for concurrent use.
type Completer interface {
	// Complete performs a retrieval-grounded extraction call: the system
	// prompt pins the model to JSON-array-only output and sampling runs
	// at a low temperature to minimize formatting drift. Returns the raw
	// completion text; parsing is the caller's concern.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Chat performs a free-form passthrough call with no system prompt
	// and default sampling.
	Chat(ctx context.Context, message string) (string, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Completer instances,
// ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Completer returns the chat completion service.
	// The returned Completer is safe for concurrent use.
	Completer() Completer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
