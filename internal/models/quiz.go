package models

import "time"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var ValidDifficulties = map[Difficulty]bool{
	DifficultyBeginner:     true,
	DifficultyIntermediate: true,
	DifficultyAdvanced:     true,
}

// Source tags recorded on every generated quiz.
const (
	SourceAI           = "ai"
	SourcePracticeBank = "practice_bank"
)

// QuizQuestion is the canonical question shape — the LLM must produce it,
// the fallback bank is authored in it, and the DB stores it verbatim.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// PublicQuestion is the client-facing projection — no correct_index or
// explanation before submission.
type PublicQuestion struct {
	Index    int      `json:"index"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizAttempt is the stored snapshot of a generated quiz. Answers and Score
// are nil until the quiz is submitted.
type QuizAttempt struct {
	ID         string         `json:"id"`
	UserID     int64          `json:"user_id"`
	Subject    string         `json:"subject"`
	Difficulty Difficulty     `json:"difficulty"`
	Questions  []QuizQuestion `json:"questions"`
	Answers    []int          `json:"answers,omitempty"`
	Score      *float64       `json:"score,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ── Request Types ─────────────────────────────────────

type GenerateQuizRequest struct {
	Subject    string     `json:"subject"`
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
}

type SubmitQuizRequest struct {
	QuizID  string `json:"quiz_id"`
	Answers []int  `json:"answers"`
}

// ── Response Types ────────────────────────────────────

type GenerateQuizResponse struct {
	QuizID     string           `json:"quiz_id"`
	Questions  []PublicQuestion `json:"questions"`
	Subject    string           `json:"subject"`
	Difficulty Difficulty       `json:"difficulty"`
	Source     string           `json:"source"`
}

type QuestionResult struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	SelectedIndex int      `json:"selected_index"`
	CorrectIndex  int      `json:"correct_index"`
	IsCorrect     bool     `json:"is_correct"`
	Explanation   string   `json:"explanation"`
}

type SubmitQuizResponse struct {
	QuizID  string           `json:"quiz_id"`
	Score   float64          `json:"score"`
	Total   int              `json:"total"`
	Correct int              `json:"correct"`
	Results []QuestionResult `json:"results"`
}

// AttemptDetail is the review view of a single attempt. Results is only
// populated once the quiz has been submitted.
type AttemptDetail struct {
	ID         string           `json:"id"`
	Subject    string           `json:"subject"`
	Difficulty Difficulty       `json:"difficulty"`
	Score      *float64         `json:"score"`
	CreatedAt  time.Time        `json:"created_at"`
	Questions  []PublicQuestion `json:"questions"`
	Results    []QuestionResult `json:"results,omitempty"`
}

// HistoryEntry is the compact per-attempt row on the history listing.
type HistoryEntry struct {
	ID         string     `json:"id"`
	Subject    string     `json:"subject"`
	Difficulty Difficulty `json:"difficulty"`
	Score      *float64   `json:"score"`
	CreatedAt  time.Time  `json:"created_at"`
}

// UserSettings holds per-user quiz preferences. TimeLimit is minutes,
// nil = no limit.
type UserSettings struct {
	Subject          string     `json:"subject"`
	Difficulty       Difficulty `json:"difficulty"`
	QuestionCount    int        `json:"question_count"`
	TimeLimit        *int       `json:"time_limit"`
	AutoSubmit       bool       `json:"auto_submit"`
	ShowExplanations bool       `json:"show_explanations"`
}

// DefaultSettings matches what the frontend assumes before a user saves anything.
func DefaultSettings() UserSettings {
	return UserSettings{
		Subject:          "General Knowledge",
		Difficulty:       DifficultyBeginner,
		QuestionCount:    10,
		TimeLimit:        nil,
		AutoSubmit:       false,
		ShowExplanations: true,
	}
}
