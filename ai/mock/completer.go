package mock

import "context"

// MockCompleter is a test double for ai.Completer.
// It allows custom behavior injection via function fields and records
// the prompts it was called with.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, Complete returns an empty JSON array.
	CompleteFunc func(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ChatFunc is called by Chat if set.
	// If nil, Chat echoes the message back.
	ChatFunc func(ctx context.Context, message string) (string, error)

	// LastSystemPrompt and LastUserPrompt record the most recent
	// Complete call for prompt-content assertions.
	LastSystemPrompt string
	LastUserPrompt   string

	callCount int
}

// NewMockCompleter creates a mock completer with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockCompleter().
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete records the prompts and delegates to CompleteFunc if set.
func (m *MockCompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	m.callCount++
	m.LastSystemPrompt = systemPrompt
	m.LastUserPrompt = userPrompt

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, systemPrompt, userPrompt)
	}

	return "[]", nil
}

// Chat delegates to ChatFunc if set, otherwise echoes the message.
func (m *MockCompleter) Chat(ctx context.Context, message string) (string, error) {
	m.callCount++

	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message)
	}

	return message, nil
}

// CallCount returns the number of times any method was called.
func (m *MockCompleter) CallCount() int {
	return m.callCount
}

// Reset clears the call count, recorded prompts, and custom functions.
func (m *MockCompleter) Reset() {
	m.callCount = 0
	m.LastSystemPrompt = ""
	m.LastUserPrompt = ""
	m.CompleteFunc = nil
	m.ChatFunc = nil
}
