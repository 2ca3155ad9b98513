package quiz

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/exam-ace/backend/internal/models"
)

// ErrAttemptNotFound covers both an unknown quiz id and an owner mismatch —
// a foreign quiz looks exactly like a missing one to the caller.
var ErrAttemptNotFound = errors.New("quiz attempt not found")

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertAttempt(attempt *models.QuizAttempt) error {
	questionsJSON, err := json.Marshal(attempt.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	err = s.db.QueryRow(
		`INSERT INTO quiz_attempts (id, user_id, subject, difficulty, questions)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		attempt.ID, attempt.UserID, attempt.Subject, attempt.Difficulty, questionsJSON,
	).Scan(&attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quiz attempt: %w", err)
	}
	return nil
}

// GetAttempt fetches a snapshot by (id, owner). A missing row or an owner
// mismatch both return ErrAttemptNotFound.
func (s *Store) GetAttempt(id string, userID int64) (*models.QuizAttempt, error) {
	attempt := models.QuizAttempt{ID: id, UserID: userID}
	var questionsJSON, answersJSON []byte

	err := s.db.QueryRow(
		`SELECT subject, difficulty, questions, answers, score, created_at
		 FROM quiz_attempts WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&attempt.Subject, &attempt.Difficulty, &questionsJSON, &answersJSON, &attempt.Score, &attempt.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz attempt: %w", err)
	}

	if err := json.Unmarshal(questionsJSON, &attempt.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal stored questions: %w", err)
	}
	if answersJSON != nil {
		if err := json.Unmarshal(answersJSON, &attempt.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal stored answers: %w", err)
		}
	}
	return &attempt, nil
}

// SaveResult attaches answers and score to a snapshot. Resubmission
// overwrites — last write wins.
func (s *Store) SaveResult(id string, userID int64, answers []int, score float64) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	res, err := s.db.Exec(
		`UPDATE quiz_attempts SET answers = $1, score = $2 WHERE id = $3 AND user_id = $4`,
		answersJSON, score, id, userID,
	)
	if err != nil {
		return fmt.Errorf("save quiz result: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrAttemptNotFound
	}
	return nil
}

func (s *Store) ListHistory(userID int64, limit int) ([]models.HistoryEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, subject, difficulty, score, created_at
		 FROM quiz_attempts
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list quiz history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Subject, &e.Difficulty, &e.Score, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
