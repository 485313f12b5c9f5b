// Package llm provides the chat-completion clients the polisher talks to.
//
// Every provider satisfies Completer: an ordered (system, user) message pair
// plus a model name goes out, a single text completion comes back. Any
// failure is returned as *UpstreamCallError and is never retried.
package llm

import (
	"context"
	"fmt"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"

	DefaultModel   = "mistral-nemo:latest"
	DefaultTimeout = 120 * time.Second
)

type ClientConfig struct {
	Provider string        `mapstructure:"provider" json:"provider"`
	BaseURL  string        `mapstructure:"base_url" json:"base_url"`
	APIKey   string        `mapstructure:"api_key" json:"-"`
	Model    string        `mapstructure:"model" json:"model"`
	Timeout  time.Duration `mapstructure:"timeout" json:"timeout"`
}

// Completer sends one system/user exchange to a model and returns its reply.
type Completer interface {
	Name() string
	Complete(ctx context.Context, systemMessage, userMessage, model string) (string, error)
}

// ModelLister is implemented by providers that can enumerate their models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// UpstreamCallError wraps any failure of the outbound completion call:
// transport errors, non-2xx statuses and malformed provider responses.
type UpstreamCallError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *UpstreamCallError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s completion failed with status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s completion failed: %v", e.Provider, e.Err)
}

func (e *UpstreamCallError) Unwrap() error {
	return e.Err
}

// New builds the Completer selected by cfg.Provider.
func New(cfg ClientConfig) (Completer, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	switch cfg.Provider {
	case ProviderOpenAI, "":
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout), nil
	case ProviderOllama:
		return NewOllamaClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
