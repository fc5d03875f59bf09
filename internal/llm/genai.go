package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GenAIClient implements Client with the unified google.golang.org/genai SDK.
// Its completions use the direct-text variant.
type GenAIClient struct {
	client *genai.Client
	config *Config
}

// NewGenAIClient creates a client against the Gemini API backend
func NewGenAIClient(ctx context.Context, cfg *Config) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{
		client: client,
		config: cfg,
	}, nil
}

// Complete sends the prompt and returns the response text field
func (c *GenAIClient) Complete(ctx context.Context, req RequestEnvelope) (Completion, error) {
	return complete(ctx, c.config, req, func(ctx context.Context) (Completion, error) {
		var genConfig *genai.GenerateContentConfig
		if c.config.Temperature != nil {
			genConfig = &genai.GenerateContentConfig{Temperature: genai.Ptr(*c.config.Temperature)}
		}

		resp, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(req.Prompt), genConfig)
		if err != nil {
			return Completion{}, err
		}
		return TextCompletion(resp.Text()), nil
	})
}

// Model returns the configured model name
func (c *GenAIClient) Model() string {
	return c.config.Model
}

// Close is a no-op; the genai client holds no long-lived connections.
func (c *GenAIClient) Close() error {
	return nil
}
