package quiz

import (
	"fmt"
	"math"

	"github.com/exam-ace/backend/internal/models"
)

// SubmissionError is a client input failure — wrong answer arity or an
// out-of-range answer index. Handlers map it to a 400.
type SubmissionError struct {
	msg string
}

func (e *SubmissionError) Error() string {
	return e.msg
}

// ScoreResult is the server-side recomputation of a submitted quiz.
type ScoreResult struct {
	Total   int
	Correct int
	Score   float64
	Results []models.QuestionResult
}

// ScoreQuiz recomputes the score for a stored question snapshot against the
// caller's submitted answers. Answers are never trusted beyond their indices:
// correctness comes from the snapshot, index-wise. A shape mismatch is a
// SubmissionError and leaves no partial result.
func ScoreQuiz(questions []models.QuizQuestion, answers []int) (*ScoreResult, error) {
	if len(answers) != len(questions) {
		return nil, &SubmissionError{msg: fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers))}
	}

	for i, ans := range answers {
		if ans < 0 || ans > 3 {
			return nil, &SubmissionError{msg: fmt.Sprintf("answer index %d for question %d is out of range [0, 3]", ans, i)}
		}
	}

	correct := 0
	results := make([]models.QuestionResult, 0, len(questions))
	for i, q := range questions {
		isCorrect := answers[i] == q.CorrectIndex
		if isCorrect {
			correct++
		}
		results = append(results, models.QuestionResult{
			Question:      q.Question,
			Options:       q.Options,
			SelectedIndex: answers[i],
			CorrectIndex:  q.CorrectIndex,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		})
	}

	total := len(questions)
	score := math.Round(float64(correct)/float64(total)*100*100) / 100

	return &ScoreResult{
		Total:   total,
		Correct: correct,
		Score:   score,
		Results: results,
	}, nil
}
