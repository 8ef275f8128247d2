package llm

// Config holds all generation backend configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "gemini", "openai", "anthropic", "mock"
	Provider string

	// Model is a provider-specific model ID. Empty means the
	// provider's default.
	Model string

	Gemini    GeminiConfig
	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey string
	// BaseURL overrides the API endpoint for OpenAI-compatible
	// providers (OpenRouter, local inference servers).
	BaseURL string
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
}
