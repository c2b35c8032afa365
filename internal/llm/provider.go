// Package llm provides the language-model backends used for AI commit summaries.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingAPIKey is returned when no credential is configured for a provider.
var ErrMissingAPIKey = errors.New("API key is not set")

// Request contains the data sent to a model.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
}

// Response contains the text produced by a model.
type Response struct {
	Content    string
	TokensUsed int
}

// Provider is the model backend abstraction.
type Provider interface {
	Generate(ctx context.Context, req Request) (Response, error)
	Name() string
}

// Provider names accepted by New.
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// New creates a provider by name. An empty name selects Anthropic, an empty
// model the provider's default. apiKey falls back to the provider's
// environment variables.
func New(name, model, apiKey string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProviderAnthropic:
		return NewAnthropic(model, apiKey)
	case ProviderGemini, "google":
		return NewGemini(model, apiKey)
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", name)
	}
}

// resolveKey returns explicit if set, otherwise the first non-empty variable.
func resolveKey(explicit string, envVars ...string) (string, error) {
	if k := strings.TrimSpace(explicit); k != "" {
		return k, nil
	}
	for _, v := range envVars {
		if k := strings.TrimSpace(os.Getenv(v)); k != "" {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w (pass --api-key or set %s)", ErrMissingAPIKey, strings.Join(envVars, " or "))
}
