package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	var p Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini, cfg.Model)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI, cfg.Model)
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic, cfg.Model)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return p, nil
}
