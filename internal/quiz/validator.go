package quiz

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/exam-ace/backend/internal/models"
)

// ValidationError carries every structural problem found in a generated
// batch so one failed attempt yields a complete diagnostic.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// rawQuestion mirrors QuizQuestion but keeps correct_index as a pointer so a
// missing field is distinguishable from a legitimate zero.
type rawQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// ValidateOutput parses raw LLM text into exactly expectedCount questions.
// It fails atomically — either every element validates or the whole call
// errors with the full list of problems.
func ValidateOutput(raw string, expectedCount int) ([]models.QuizQuestion, error) {
	cleaned := stripCodeFences(raw)

	var parsed any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, fmt.Errorf("LLM output is not valid JSON: %w", err)
	}

	items, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON array of questions, got %s", jsonTypeName(parsed))
	}

	if len(items) != expectedCount {
		return nil, fmt.Errorf("expected %d questions, got %d", expectedCount, len(items))
	}

	questions := make([]models.QuizQuestion, 0, expectedCount)
	var errs []string

	for i, item := range items {
		data, _ := json.Marshal(item)
		var q rawQuestion
		if err := json.Unmarshal(data, &q); err != nil {
			errs = append(errs, fmt.Sprintf("question %d: %v", i, err))
			continue
		}

		if q.Question == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty question text", i))
		}
		if len(q.Options) != 4 {
			errs = append(errs, fmt.Sprintf("question %d: expected 4 options, got %d", i, len(q.Options)))
		}
		if q.CorrectIndex == nil {
			errs = append(errs, fmt.Sprintf("question %d: missing correct_index", i))
		} else if *q.CorrectIndex < 0 || *q.CorrectIndex > 3 {
			errs = append(errs, fmt.Sprintf("question %d: correct_index %d out of range [0, 3]", i, *q.CorrectIndex))
		}
		if q.Explanation == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty explanation", i))
		}

		if len(errs) > 0 {
			continue
		}

		questions = append(questions, models.QuizQuestion{
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: *q.CorrectIndex,
			Explanation:  q.Explanation,
		})
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return questions, nil
}

// stripCodeFences removes ```json ... ``` wrappers that some models add
// despite being told not to.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```json"))
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimSpace(strings.TrimPrefix(s, "```"))
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	}
	return s
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
