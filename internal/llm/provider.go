package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/exam-ace/backend/internal/config"
)

// Provider is the interface every LLM backend satisfies.
//
// CheckHealth is a cheap reachability probe. Cloud providers are assumed
// always up; only the local variant actually pings its endpoint. It never
// returns an error, unreachable means false.
type Provider interface {
	CheckHealth(ctx context.Context) bool
	Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}

const (
	// Local inference can take minutes, so the generation timeout is long.
	generateTimeoutSeconds = 120

	defaultAnthropicModel = "claude-opus-4-5-20251101"
	defaultMistralModel   = "mistral-medium-latest"
	defaultLocalModel     = "phi-3-mini-4k-instruct"

	defaultMistralBaseURL = "https://api.mistral.ai/v1"
	defaultLocalBaseURL   = "http://localhost:1234/v1"
)

// NewProvider builds the configured provider. An unrecognized provider name
// is a configuration error and fails here, not at call time.
func NewProvider(cfg *config.Config) (Provider, error) {
	switch strings.ToLower(cfg.LLMProvider) {
	case "anthropic":
		model := cfg.LLMModel
		if model == "" {
			model = defaultAnthropicModel
		}
		return NewAnthropicProvider(cfg.LLMAPIKey, model), nil
	case "mistral":
		model := cfg.LLMModel
		if model == "" {
			model = defaultMistralModel
		}
		baseURL := cfg.LLMBaseURL
		if baseURL == "" {
			baseURL = defaultMistralBaseURL
		}
		return NewMistralProvider(cfg.LLMAPIKey, model, baseURL), nil
	case "local":
		model := cfg.LLMModel
		if model == "" {
			model = defaultLocalModel
		}
		baseURL := cfg.LLMBaseURL
		if baseURL == "" {
			baseURL = defaultLocalBaseURL
		}
		return NewLocalProvider(model, baseURL, cfg.LLMAPIKey, cfg.LLMHealthTimeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q: must be 'anthropic', 'mistral', or 'local'", cfg.LLMProvider)
	}
}
