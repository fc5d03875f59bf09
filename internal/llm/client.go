package llm

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Client is an abstraction over LLM providers
type Client interface {
	// Complete performs one bounded, non-retried generation call.
	// Failures are returned as *TransportError.
	Complete(ctx context.Context, req RequestEnvelope) (Completion, error)
	// Model returns the model name requests are sent to
	Model() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	switch cfg.Provider {
	case ProviderGemini, "":
		return NewGeminiClient(ctx, cfg)
	case ProviderGenAI:
		return NewGenAIClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

// complete wraps one provider call with the per-request deadline and the
// transport error contract shared by every client.
func complete(ctx context.Context, cfg *Config, req RequestEnvelope, call func(context.Context) (Completion, error)) (Completion, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	start := time.Now()
	log.Printf("[LLM] %s/%s request expecting %s (%d chars)", cfg.Provider, cfg.Model, req.Expects(), len(req.Prompt))

	completion, err := call(ctx)
	if err != nil {
		log.Printf("[LLM] %s/%s failed after %v: %v", cfg.Provider, cfg.Model, time.Since(start), err)
		return Completion{}, &TransportError{Provider: cfg.Provider, Message: "failed to generate content", Cause: err}
	}
	if completion.IsEmpty() {
		log.Printf("[LLM] %s/%s returned an empty completion", cfg.Provider, cfg.Model)
		return Completion{}, &TransportError{Provider: cfg.Provider, Message: "empty response"}
	}

	log.Printf("[LLM] %s/%s %s completion, %d chars in %v", cfg.Provider, cfg.Model, completion.Kind, len(completion.Content()), time.Since(start))
	return completion, nil
}
