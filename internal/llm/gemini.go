package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements Client for Google Gemini
type GeminiClient struct {
	client *genai.Client
	config *Config
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, config *Config, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultGeminiConfig()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		config: config,
	}, nil
}

// GenerateContent generates text content for the request
func (c *GeminiClient) GenerateContent(ctx context.Context, req ContentRequest) (string, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", req.Tier)
	}

	model := c.client.GenerativeModel(modelName)
	model.SetTemperature(req.Temperature)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}

	resp, err := model.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", wrapGeminiError(err)
	}

	return extractTextFromResponse(resp)
}

// wrapGeminiError surfaces the HTTP status and message from googleapi errors
// so callers can tell an invalid key or exhausted quota apart from a
// transport failure.
func wrapGeminiError(err error) *APIError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &APIError{
			StatusCode: gerr.Code,
			Message:    gerr.Message,
			Body:       gerr.Body,
			Cause:      err,
		}
	}
	return &APIError{Message: "failed to generate content", Cause: err}
}

// GenerateImage is not available through the text generation API this client
// wraps.
func (c *GeminiClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return "", fmt.Errorf("image generation is not supported by the gemini provider")
}

// Probe verifies the credential with a minimal completion
func (c *GeminiClient) Probe(ctx context.Context) error {
	_, err := c.GenerateContent(ctx, ContentRequest{
		Prompt:    "Test message to verify API connection.",
		Tier:      TierLite,
		MaxTokens: 10,
	})
	return err
}

// Close releases resources held by the client
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// extractTextFromResponse extracts text from a Gemini API response
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", &APIError{Message: "received invalid response: no candidates returned"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &APIError{Message: "received invalid response: no content returned"}
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", &APIError{Message: "received invalid response: no text parts returned"}
	}

	return strings.Join(parts, ""), nil
}
