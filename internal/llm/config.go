// Package llm provides the completion client abstraction over the Gemini SDKs.
package llm

import (
	"time"

	"github.com/jonathan/career-advisor/internal/config"
)

// Provider represents an LLM provider SDK
type Provider string

// Provider constants define supported SDKs
const (
	// ProviderGemini uses github.com/google/generative-ai-go and answers with candidates
	ProviderGemini Provider = "gemini"
	// ProviderGenAI uses google.golang.org/genai and answers with direct text
	ProviderGenAI Provider = "genai"
)

// Config holds the client configuration for one provider
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	Timeout  time.Duration
	// Temperature is left to the provider default when nil.
	Temperature *float32
	// BaseURL overrides the endpoint of the genai provider (tests, proxies).
	BaseURL string
}

// DefaultConfig returns the default configuration (Gemini, gemini-2.0-flash, 30s)
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    config.DefaultModel,
		Timeout:  config.DefaultTimeout,
	}
}

// NewConfig converts the application LLM settings.
func NewConfig(c config.LLMConfig) *Config {
	cfg := DefaultConfig()
	if c.Provider != "" {
		cfg.Provider = Provider(c.Provider)
	}
	if c.Model != "" {
		cfg.Model = c.Model
	}
	if c.Timeout.Duration > 0 {
		cfg.Timeout = c.Timeout.Duration
	}
	cfg.APIKey = c.APIKey
	return cfg
}

// WithModel returns a copy of the config using a different model
func (c *Config) WithModel(model string) *Config {
	newConfig := *c
	newConfig.Model = model
	return &newConfig
}

// WithTemperature returns a copy of the config with a fixed sampling temperature
func (c *Config) WithTemperature(t float32) *Config {
	newConfig := *c
	newConfig.Temperature = &t
	return &newConfig
}

func (c *Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return config.DefaultTimeout
	}
	return c.Timeout
}
