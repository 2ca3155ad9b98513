package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/exam-ace/backend/internal/config"
)

func TestNewProvider_UnknownNameFailsFast(t *testing.T) {
	_, err := NewProvider(&config.Config{LLMProvider: "frontier-gpt"})
	if err == nil {
		t.Fatal("expected error for unknown provider name")
	}
	if !strings.Contains(err.Error(), "frontier-gpt") {
		t.Errorf("error should name the bad provider, got: %v", err)
	}
}

func TestNewProvider_KnownVariants(t *testing.T) {
	for _, name := range []string{"anthropic", "mistral", "local"} {
		provider, err := NewProvider(&config.Config{LLMProvider: name, LLMAPIKey: "test-key"})
		if err != nil {
			t.Fatalf("%s: expected no error, got: %v", name, err)
		}
		if provider == nil {
			t.Fatalf("%s: nil provider", name)
		}
	}

	// Case is normalized before dispatch.
	if _, err := NewProvider(&config.Config{LLMProvider: "Local"}); err != nil {
		t.Errorf("provider names should be case-insensitive, got: %v", err)
	}
}

func TestCloudProvidersAlwaysHealthy(t *testing.T) {
	ctx := context.Background()

	if !NewAnthropicProvider("key", "model").CheckHealth(ctx) {
		t.Error("anthropic provider should always report healthy")
	}
	if !NewMistralProvider("key", "model", defaultMistralBaseURL).CheckHealth(ctx) {
		t.Error("mistral provider should always report healthy")
	}
}

func TestLocalProvider_HealthProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("expected /models probe, got %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	provider := NewLocalProvider("test-model", srv.URL, "", 3)
	if !provider.CheckHealth(context.Background()) {
		t.Error("expected healthy against a live endpoint")
	}
}

func TestLocalProvider_HealthProbeFailures(t *testing.T) {
	// Non-2xx status reads as unhealthy.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	provider := NewLocalProvider("test-model", srv.URL, "", 3)
	if provider.CheckHealth(context.Background()) {
		t.Error("expected unhealthy for 503 response")
	}
	srv.Close()

	// Connection refused reads as unhealthy, never as an error.
	if provider.CheckHealth(context.Background()) {
		t.Error("expected unhealthy for closed endpoint")
	}
}

func TestLocalProvider_GenerateSpeaksChatCompletions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("expected /chat/completions, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer not-needed" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[]"}}]}`))
	}))
	defer srv.Close()

	provider := NewLocalProvider("test-model", srv.URL, "", 3)
	text, err := provider.Generate(context.Background(), "system", "user", 0.5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if text != "[]" {
		t.Errorf("expected raw completion text, got %q", text)
	}
}

func TestChatClient_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer srv.Close()

	provider := NewLocalProvider("test-model", srv.URL, "", 3)
	if _, err := provider.Generate(context.Background(), "system", "user", 0.5); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
