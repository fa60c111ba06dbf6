// ABOUTME: OpenAI-compatible chat client used to annotate paragraphs
// ABOUTME: Requests structured output constrained by the analysis response schema
package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/harper/bookchunk/internal/config"
	"github.com/harper/bookchunk/internal/models"
)

// Submitter sends one prompt and returns the raw response text
type Submitter interface {
	Submit(ctx context.Context, prompt string) (string, error)
}

// ClientConfig holds configuration for the OpenAI-compatible client
type ClientConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
}

// DefaultConfig returns the default client configuration, pointed at Gemini's OpenAI endpoint
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:      apiKey,
		BaseURL:     config.DefaultBaseURL,
		Model:       config.DefaultModel,
		Temperature: config.DefaultTemperature,
	}
}

// ConfigFrom copies the analysis settings out of the loaded configuration
func ConfigFrom(cfg *config.Config) *ClientConfig {
	return &ClientConfig{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: cfg.Temperature,
	}
}

// OpenAIClient submits analysis prompts. It makes exactly one request per
// Submit; callers own cancellation through the context.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	format      *openai.ChatCompletionResponseFormat
}

// NewOpenAIClient creates a client with the given API key using default configuration
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey))
}

// NewOpenAIClientWithConfig creates a client with custom configuration
func NewOpenAIClientWithConfig(cfg *ClientConfig) (*OpenAIClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%w: API key is required", models.ErrMissingCredential)
	}

	oaConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oaConfig.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(oaConfig),
		model:       model,
		temperature: cfg.Temperature,
		format: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "analysis_response",
				Schema: AnalysisSchema(),
				Strict: true,
			},
		},
	}, nil
}

// Model returns the model name sent with each request
func (c *OpenAIClient) Model() string {
	return c.model
}

// Submit sends the prompt as a single user message and returns the first choice's content
func (c *OpenAIClient) Submit(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature:    c.temperature,
		ResponseFormat: c.format,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices returned", models.ErrExternalService)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty response (finish reason %q)", models.ErrExternalService, resp.Choices[0].FinishReason)
	}
	return content, nil
}
