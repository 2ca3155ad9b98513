package llm

import (
	"context"
	"log"
	"net/http"
	"time"
)

// LocalProvider targets an OpenAI-compatible endpoint running on the same
// box or LAN (LM Studio by default, also Ollama or vLLM). Unlike the cloud
// providers it actually probes reachability before generation is attempted.
type LocalProvider struct {
	chat          *chatClient
	healthTimeout time.Duration
}

func NewLocalProvider(model, baseURL, apiKey string, healthTimeoutSeconds int) *LocalProvider {
	if apiKey == "" {
		apiKey = "not-needed"
	}
	if healthTimeoutSeconds <= 0 {
		healthTimeoutSeconds = 3
	}
	return &LocalProvider{
		chat:          newChatClient(apiKey, model, baseURL),
		healthTimeout: time.Duration(healthTimeoutSeconds) * time.Second,
	}
}

// CheckHealth pings the /models listing endpoint with a short timeout.
// Any connect error, timeout, or non-2xx status reads as unhealthy.
func (p *LocalProvider) CheckHealth(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.healthTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.chat.baseURL+"/models", nil)
	if err != nil {
		return false
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("WARN: local LLM health check failed: %v", err)
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (p *LocalProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	return p.chat.generate(ctx, systemPrompt, userPrompt, temperature)
}
