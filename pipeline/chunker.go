package pipeline

import "strings"

// DefaultChunkSize is the target chunk length, in bytes, used when no
// chunk size is configured. The accounting unit is len(word)+1 per word
// (the word plus one separator), not rendered width.
const DefaultChunkSize = 500

// ChunkText breaks a large text into word-safe chunks of roughly
// chunkSize bytes. Words are accumulated greedily; a chunk is closed as
// soon as appending the next word would push it past chunkSize. A single
// word longer than chunkSize is never split and becomes its own chunk.
// Empty or whitespace-only input yields no chunks.
func ChunkText(text string, chunkSize int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var chunks []string
	var current []string
	currentLength := 0

	for _, word := range words {
		if len(current) > 0 && currentLength+len(word)+1 > chunkSize {
			chunks = append(chunks, strings.Join(current, " "))
			current = current[:0]
			currentLength = 0
		}
		current = append(current, word)
		currentLength += len(word) + 1
	}

	if len(current) > 0 {
		chunks = append(chunks, strings.Join(current, " "))
	}

	return chunks
}
