package quiz

import (
	"context"
	"fmt"
	"testing"

	"github.com/exam-ace/backend/internal/models"
)

// stubProvider scripts health and a sequence of generation responses.
type stubProvider struct {
	healthy   bool
	responses []stubResponse
	calls     int
}

type stubResponse struct {
	text string
	err  error
}

func (s *stubProvider) CheckHealth(ctx context.Context) bool {
	return s.healthy
}

func (s *stubProvider) Generate(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	if s.calls >= len(s.responses) {
		return "", fmt.Errorf("unexpected generate call %d", s.calls+1)
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp.text, resp.err
}

func TestGenerateQuiz_UnhealthyProviderFallsBack(t *testing.T) {
	provider := &stubProvider{healthy: false}

	questions, source, err := GenerateQuiz(context.Background(), provider, "physics", models.DifficultyBeginner, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if source != models.SourcePracticeBank {
		t.Errorf("expected source %q, got %q", models.SourcePracticeBank, source)
	}
	if len(questions) != 5 {
		t.Errorf("expected 5 bank questions, got %d", len(questions))
	}
	if provider.calls != 0 {
		t.Errorf("generate must not be called when unhealthy, got %d calls", provider.calls)
	}
}

func TestGenerateQuiz_AllAttemptsFailFallsBack(t *testing.T) {
	provider := &stubProvider{
		healthy: true,
		responses: []stubResponse{
			{text: "not json at all"},
			{text: "still not json"},
			{text: "nope"},
		},
	}

	questions, source, err := GenerateQuiz(context.Background(), provider, "physics", models.DifficultyIntermediate, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if source != models.SourcePracticeBank {
		t.Errorf("expected source %q, got %q", models.SourcePracticeBank, source)
	}
	if provider.calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", provider.calls)
	}
	if len(questions) != 5 {
		t.Errorf("expected 5 bank questions, got %d", len(questions))
	}
}

func TestGenerateQuiz_RecoversOnSecondAttempt(t *testing.T) {
	provider := &stubProvider{
		healthy: true,
		responses: []stubResponse{
			{text: "```json\n[broken"},
			{text: validQuizJSON(5)},
		},
	}

	questions, source, err := GenerateQuiz(context.Background(), provider, "chemistry", models.DifficultyAdvanced, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if source != models.SourceAI {
		t.Errorf("expected source %q, got %q", models.SourceAI, source)
	}
	if provider.calls != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", provider.calls)
	}
	if len(questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(questions))
	}
}

func TestGenerateQuiz_NetworkErrorsCountAsAttempts(t *testing.T) {
	provider := &stubProvider{
		healthy: true,
		responses: []stubResponse{
			{err: fmt.Errorf("connection refused")},
			{err: fmt.Errorf("request timed out")},
			{text: validQuizJSON(3)},
		},
	}

	_, source, err := GenerateQuiz(context.Background(), provider, "biology", models.DifficultyBeginner, 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if source != models.SourceAI {
		t.Errorf("expected source %q, got %q", models.SourceAI, source)
	}
	if provider.calls != 3 {
		t.Errorf("expected 3 calls, got %d", provider.calls)
	}
}
