package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// chatClient posts to an OpenAI-compatible /chat/completions endpoint.
// Both the Mistral cloud API and local inference servers (LM Studio,
// Ollama, vLLM) speak this wire shape.
type chatClient struct {
	apiKey  string
	model   string
	baseURL string
	http    *http.Client
}

func newChatClient(apiKey, model, baseURL string) *chatClient {
	return &chatClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: generateTimeoutSeconds * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *chatClient) generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("chat completion returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

// MistralProvider talks to the hosted Mistral chat completions API.
type MistralProvider struct {
	chat *chatClient
}

func NewMistralProvider(apiKey, model, baseURL string) *MistralProvider {
	return &MistralProvider{chat: newChatClient(apiKey, model, baseURL)}
}

// CheckHealth always reports healthy; the hosted API is assumed reachable.
func (p *MistralProvider) CheckHealth(ctx context.Context) bool {
	return true
}

func (p *MistralProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	return p.chat.generate(ctx, systemPrompt, userPrompt, temperature)
}
