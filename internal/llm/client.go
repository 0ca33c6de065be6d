package llm

import (
	"context"
	"fmt"
)

// ContentRequest describes one chat-completion call.
type ContentRequest struct {
	System      string
	Prompt      string
	Tier        ModelTier
	Temperature float32
	MaxTokens   int
}

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content for the request
	GenerateContent(ctx context.Context, req ContentRequest) (string, error)
	// GenerateImage generates an image from a prompt and returns its URL
	GenerateImage(ctx context.Context, prompt string) (string, error)
	// Probe issues a minimal request to verify the credential works
	Probe(ctx context.Context) error
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	default:
		return NewOpenAIClient(config, apiKey)
	}
}

// APIError is a failed provider call. StatusCode is 0 when the request never
// reached the provider (transport failure).
type APIError struct {
	StatusCode int
	Message    string
	ErrType    string
	Body       string
	Cause      error
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("API request failed: %s", e.Message)
	}
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}
