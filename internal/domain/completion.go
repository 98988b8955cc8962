package domain

import "context"

// Completer turns a system directive plus one user message into free text.
// The router and the answer generator both talk to the model through it.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// CompletionRequest is a single-turn chat completion request.
type CompletionRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	// Purpose labels the call in provider metrics ("routing", "answer").
	Purpose string
}

// CompletionResult carries the model output and token usage.
type CompletionResult struct {
	Text             string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}
