package quiz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/exam-ace/backend/internal/models"
)

func validQuizJSON(count int) string {
	questions := make([]models.QuizQuestion, count)
	for i := range questions {
		questions[i] = models.QuizQuestion{
			Question:     "What is the capital of France?",
			Options:      []string{"Paris", "London", "Berlin", "Madrid"},
			CorrectIndex: i % 4,
			Explanation:  "Paris has been the capital of France since 987.",
		}
	}
	data, _ := json.Marshal(questions)
	return string(data)
}

func TestValidateOutput_ValidJSON(t *testing.T) {
	questions, err := ValidateOutput(validQuizJSON(5), 5)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	q := questions[0]
	if q.Question != "What is the capital of France?" {
		t.Errorf("question text not preserved: %q", q.Question)
	}
	if len(q.Options) != 4 || q.Options[0] != "Paris" {
		t.Errorf("options not preserved: %v", q.Options)
	}
	if q.CorrectIndex != 0 {
		t.Errorf("correct_index not preserved: %d", q.CorrectIndex)
	}
	if q.Explanation == "" {
		t.Error("explanation not preserved")
	}
}

func TestValidateOutput_MarkdownFences(t *testing.T) {
	for _, fence := range []string{"```json", "```"} {
		input := fence + "\n" + validQuizJSON(3) + "\n```"
		questions, err := ValidateOutput(input, 3)
		if err != nil {
			t.Fatalf("fence %q: expected no error, got: %v", fence, err)
		}
		if len(questions) != 3 {
			t.Errorf("fence %q: expected 3 questions, got %d", fence, len(questions))
		}
	}
}

func TestValidateOutput_NotJSON(t *testing.T) {
	if _, err := ValidateOutput("I'm sorry, I can't generate questions right now.", 5); err == nil {
		t.Fatal("expected error for non-JSON output")
	}
}

func TestValidateOutput_NotAnArray(t *testing.T) {
	_, err := ValidateOutput(`{"questions": []}`, 5)
	if err == nil {
		t.Fatal("expected error for non-array output")
	}
	if !strings.Contains(err.Error(), "array") {
		t.Errorf("error should mention array shape, got: %v", err)
	}
}

func TestValidateOutput_WrongCount(t *testing.T) {
	if _, err := ValidateOutput(validQuizJSON(4), 5); err == nil {
		t.Fatal("expected error for 4 questions when 5 were requested")
	}
	if _, err := ValidateOutput(validQuizJSON(6), 5); err == nil {
		t.Fatal("expected error for 6 questions when 5 were requested")
	}
}

func TestValidateOutput_MissingCorrectIndex(t *testing.T) {
	input := `[{"question": "Q?", "options": ["a","b","c","d"], "explanation": "because"}]`
	_, err := ValidateOutput(input, 1)
	if err == nil {
		t.Fatal("expected error for missing correct_index")
	}

	var ve *ValidationError
	if !asValidationError(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if !containsSubstring(ve.Errors, "missing correct_index") {
		t.Errorf("expected missing correct_index error, got: %v", ve.Errors)
	}
}

func TestValidateOutput_WrongOptionCount(t *testing.T) {
	three := `[{"question": "Q?", "options": ["a","b","c"], "correct_index": 0, "explanation": "because"}]`
	five := `[{"question": "Q?", "options": ["a","b","c","d","e"], "correct_index": 0, "explanation": "because"}]`

	for name, input := range map[string]string{"three options": three, "five options": five} {
		_, err := ValidateOutput(input, 1)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var ve *ValidationError
		if !asValidationError(err, &ve) {
			t.Fatalf("%s: expected ValidationError, got %T", name, err)
		}
		if !containsSubstring(ve.Errors, "expected 4 options") {
			t.Errorf("%s: expected option count error, got: %v", name, ve.Errors)
		}
	}
}

func TestValidateOutput_CorrectIndexOutOfRange(t *testing.T) {
	input := `[{"question": "Q?", "options": ["a","b","c","d"], "correct_index": 4, "explanation": "because"}]`
	_, err := ValidateOutput(input, 1)
	if err == nil {
		t.Fatal("expected error for correct_index 4")
	}
}

func TestValidateOutput_CollectsAllErrors(t *testing.T) {
	input := `[
		{"question": "", "options": ["a","b","c","d"], "correct_index": 0, "explanation": "ok"},
		{"question": "Q?", "options": ["a","b"], "correct_index": 9, "explanation": ""}
	]`
	_, err := ValidateOutput(input, 2)
	if err == nil {
		t.Fatal("expected error")
	}

	var ve *ValidationError
	if !asValidationError(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(ve.Errors) < 4 {
		t.Errorf("expected all element errors collected, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func asValidationError(err error, target **ValidationError) bool {
	ve, ok := err.(*ValidationError)
	if ok {
		*target = ve
	}
	return ok
}

func containsSubstring(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
