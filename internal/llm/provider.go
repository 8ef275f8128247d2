package llm

import "context"

// Provider is the single capability every generation backend implements:
// a prompt goes in, text comes out. Which backend serves the request is
// decided by configuration, never by the caller.
type Provider interface {
	// Generate sends a prompt to the model and returns the raw text output.
	Generate(ctx context.Context, req Request) (string, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and output constraints.
	System string

	// Prompt is the user-facing content (source text, question, etc.).
	Prompt string

	// MaxTokens bounds the output length.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}
