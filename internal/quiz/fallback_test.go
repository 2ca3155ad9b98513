package quiz

import (
	"errors"
	"testing"

	"github.com/exam-ace/backend/internal/models"
)

func TestSampleFallback_ExactMatch(t *testing.T) {
	questions, err := SampleFallback("Computer Science", models.DifficultyBeginner, 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.Question == "" || len(q.Options) != 4 || q.Explanation == "" {
			t.Errorf("question %d is malformed: %+v", i, q)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			t.Errorf("question %d: correct_index %d out of range", i, q.CorrectIndex)
		}
	}
}

func TestSampleFallback_SubstringMatch(t *testing.T) {
	// "math" is a substring of the "mathematics" pool key.
	questions, err := SampleFallback("math", models.DifficultyIntermediate, 3)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(questions))
	}
}

func TestSampleFallback_UnknownSubjectUsesDefault(t *testing.T) {
	questions, err := SampleFallback("underwater basket weaving", models.DifficultyAdvanced, 3)
	if err != nil {
		t.Fatalf("expected default-subject fallback, got error: %v", err)
	}
	if len(questions) != 3 {
		t.Errorf("expected 3 questions, got %d", len(questions))
	}
}

func TestSampleFallback_ClampsToPoolSize(t *testing.T) {
	pool := fallbackBank[bankKey{"computer science", models.DifficultyBeginner}]

	questions, err := SampleFallback("computer science", models.DifficultyBeginner, 50)
	if err != nil {
		t.Fatalf("clamping is not an error, got: %v", err)
	}
	if len(questions) != len(pool) {
		t.Errorf("expected clamp to pool size %d, got %d", len(pool), len(questions))
	}
}

func TestSampleFallback_NoReplacement(t *testing.T) {
	questions, err := SampleFallback("physics", models.DifficultyAdvanced, 7)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range questions {
		if seen[q.Question] {
			t.Errorf("question sampled twice: %q", q.Question)
		}
		seen[q.Question] = true
	}
}

func TestSampleFallback_EmptyPoolIsFatal(t *testing.T) {
	_, err := SampleFallback("anything", models.Difficulty("expert"), 5)
	if err == nil {
		t.Fatal("expected error for a difficulty with no pools")
	}
	if !errors.Is(err, ErrNoFallbackContent) {
		t.Errorf("expected ErrNoFallbackContent, got: %v", err)
	}
}

func TestBankContentIsWellFormed(t *testing.T) {
	for key, pool := range fallbackBank {
		if len(pool) == 0 {
			t.Errorf("pool %v is empty", key)
		}
		for i, q := range pool {
			if q.Question == "" {
				t.Errorf("pool %v question %d: empty text", key, i)
			}
			if len(q.Options) != 4 {
				t.Errorf("pool %v question %d: %d options", key, i, len(q.Options))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
				t.Errorf("pool %v question %d: correct_index %d", key, i, q.CorrectIndex)
			}
			if q.Explanation == "" {
				t.Errorf("pool %v question %d: empty explanation", key, i)
			}
		}
	}
}
