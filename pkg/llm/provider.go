// Package llm provides the gateway agents use to call language models:
// per-task provider routing, retry with exponential backoff, and JSON
// schema validation of structured output.
package llm

import "context"

// Request is one completion request to a provider.
type Request struct {
	// System prompt (optional)
	System string

	// Prompt is the user-turn content
	Prompt string

	// MaxTokens caps the completion; 0 uses the provider default
	MaxTokens int
}

// Usage reports token consumption for one completion.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Response is a provider completion.
type Response struct {
	Text  string
	Usage Usage
}

// Provider is one backing LLM API. Implementations classify their
// failures via *Error so the gateway can decide what to retry.
type Provider interface {
	// Name returns the registry name the provider was built from.
	Name() string

	// Complete issues a single non-streaming completion.
	Complete(ctx context.Context, req Request) (*Response, error)
}
