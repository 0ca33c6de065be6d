package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const openAIBaseURL = "https://api.openai.com"

// OpenAIClient implements Client against the OpenAI HTTP API
type OpenAIClient struct {
	apiKey     string
	config     *Config
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config == nil {
		config = DefaultOpenAIConfig()
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = openAIBaseURL
	}

	return &OpenAIClient{
		apiKey:     apiKey,
		config:     config,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

// GenerateContent issues a chat completion and returns the first choice's
// message content.
func (c *OpenAIClient) GenerateContent(ctx context.Context, req ContentRequest) (string, error) {
	body := chatRequest{
		Model:       c.config.GetModel(req.Tier),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.System != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.System})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})

	var resp chatResponse
	if err := c.post(ctx, "/v1/chat/completions", body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", &APIError{Message: "received invalid response: no choices returned"}
	}
	return resp.Choices[0].Message.Content, nil
}

// GenerateImage issues an image generation request and returns the URL of
// the generated image.
func (c *OpenAIClient) GenerateImage(ctx context.Context, prompt string) (string, error) {
	body := imageRequest{
		Model:  c.config.GetModel(TierImage),
		Prompt: prompt,
		N:      1,
		Size:   "1024x1024",
	}

	var resp imageResponse
	if err := c.post(ctx, "/v1/images/generations", body, &resp); err != nil {
		return "", err
	}
	if len(resp.Data) == 0 {
		return "", &APIError{Message: "received invalid response: no image data returned"}
	}
	return resp.Data[0].URL, nil
}

// Probe verifies the credential with a minimal completion. A response
// without choices counts as a failure even when the status is 200.
func (c *OpenAIClient) Probe(ctx context.Context) error {
	body := chatRequest{
		Model: c.config.GetModel(TierLite),
		Messages: []chatMessage{
			{Role: "user", Content: "Test message to verify API connection."},
		},
		MaxTokens: 10,
	}

	var resp chatResponse
	if err := c.post(ctx, "/v1/chat/completions", body, &resp); err != nil {
		return err
	}
	if len(resp.Choices) == 0 {
		return &APIError{Message: "received invalid response: no choices returned"}
	}
	return nil
}

// Close releases resources held by the client
func (c *OpenAIClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// openAIErrorBody is the vendor error envelope.
type openAIErrorBody struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// post sends a JSON request and decodes the JSON response into out. Failures
// always come back as *APIError so callers can classify them.
func (c *OpenAIClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return &APIError{Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return &APIError{Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// StatusCode 0 marks a transport failure: DNS, refused connection,
		// timeout. These classify as network errors upstream.
		return &APIError{Message: err.Error(), Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			Body:       string(data),
		}
		var vendor openAIErrorBody
		if json.Unmarshal(data, &vendor) == nil && vendor.Error.Message != "" {
			apiErr.Message = vendor.Error.Message
			apiErr.ErrType = vendor.Error.Type
		}
		return apiErr
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to decode response body", Cause: err}
	}
	return nil
}
