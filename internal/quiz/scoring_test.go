package quiz

import (
	"testing"

	"github.com/exam-ace/backend/internal/models"
)

func questionsWithCorrectIndices(indices []int) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, len(indices))
	for i, idx := range indices {
		questions[i] = models.QuizQuestion{
			Question:     "Question text",
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: idx,
			Explanation:  "Explanation text",
		}
	}
	return questions
}

func TestScoreQuiz_RecomputesServerSide(t *testing.T) {
	questions := questionsWithCorrectIndices([]int{0, 1, 2, 3, 0})
	answers := []int{0, 1, 3, 3, 1}

	result, err := ScoreQuiz(questions, answers)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if result.Correct != 3 {
		t.Errorf("expected 3 correct, got %d", result.Correct)
	}
	if result.Total != 5 {
		t.Errorf("expected total 5, got %d", result.Total)
	}
	if result.Score != 60.00 {
		t.Errorf("expected score 60.00, got %.2f", result.Score)
	}

	expected := []bool{true, true, false, true, false}
	for i, r := range result.Results {
		if r.IsCorrect != expected[i] {
			t.Errorf("question %d: expected is_correct=%v, got %v", i, expected[i], r.IsCorrect)
		}
		if r.SelectedIndex != answers[i] {
			t.Errorf("question %d: expected selected_index=%d, got %d", i, answers[i], r.SelectedIndex)
		}
		if r.Explanation == "" {
			t.Errorf("question %d: result missing explanation", i)
		}
	}
}

func TestScoreQuiz_RoundsToTwoDecimals(t *testing.T) {
	questions := questionsWithCorrectIndices([]int{0, 0, 0})
	result, err := ScoreQuiz(questions, []int{0, 1, 1})
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	// 1/3 = 33.333... rounds to 33.33
	if result.Score != 33.33 {
		t.Errorf("expected score 33.33, got %v", result.Score)
	}
}

func TestScoreQuiz_AnswerCountMismatch(t *testing.T) {
	questions := questionsWithCorrectIndices([]int{0, 1, 2, 3, 0})

	_, err := ScoreQuiz(questions, []int{0, 1, 2, 3})
	if err == nil {
		t.Fatal("expected error for 4 answers to 5 questions")
	}
	if _, ok := err.(*SubmissionError); !ok {
		t.Fatalf("expected SubmissionError, got %T", err)
	}
}

func TestScoreQuiz_AnswerIndexOutOfRange(t *testing.T) {
	questions := questionsWithCorrectIndices([]int{0, 1})

	for _, bad := range [][]int{{0, 4}, {-1, 1}} {
		_, err := ScoreQuiz(questions, bad)
		if err == nil {
			t.Fatalf("expected error for answers %v", bad)
		}
		if _, ok := err.(*SubmissionError); !ok {
			t.Fatalf("expected SubmissionError for answers %v, got %T", bad, err)
		}
	}
}
