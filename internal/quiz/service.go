package quiz

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/exam-ace/backend/internal/llm"
	"github.com/exam-ace/backend/internal/models"
)

// historyLimit bounds the history listing, newest first.
const historyLimit = 50

type Service struct {
	store    *Store
	provider llm.Provider
}

func NewService(store *Store, provider llm.Provider) *Service {
	return &Service{store: store, provider: provider}
}

// Generate runs the full pipeline — health-gated LLM generation with
// fallback — then stores the snapshot and returns the public projection,
// which never carries correct indices or explanations.
func (s *Service) Generate(ctx context.Context, userID int64, req models.GenerateQuizRequest) (*models.GenerateQuizResponse, error) {
	questions, source, err := GenerateQuiz(ctx, s.provider, req.Subject, req.Difficulty, req.Count)
	if err != nil {
		return nil, err
	}

	attempt := &models.QuizAttempt{
		ID:         uuid.NewString(),
		UserID:     userID,
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		Questions:  questions,
	}
	if err := s.store.InsertAttempt(attempt); err != nil {
		return nil, fmt.Errorf("store quiz snapshot: %w", err)
	}

	return &models.GenerateQuizResponse{
		QuizID:     attempt.ID,
		Questions:  publicView(questions),
		Subject:    req.Subject,
		Difficulty: req.Difficulty,
		Source:     source,
	}, nil
}

// Submit recomputes the score server-side from the stored snapshot and
// persists answers + score. Submitting twice overwrites the previous result.
func (s *Service) Submit(ctx context.Context, userID int64, req models.SubmitQuizRequest) (*models.SubmitQuizResponse, error) {
	attempt, err := s.store.GetAttempt(req.QuizID, userID)
	if err != nil {
		return nil, err
	}

	result, err := ScoreQuiz(attempt.Questions, req.Answers)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveResult(req.QuizID, userID, req.Answers, result.Score); err != nil {
		return nil, err
	}

	return &models.SubmitQuizResponse{
		QuizID:  req.QuizID,
		Score:   result.Score,
		Total:   result.Total,
		Correct: result.Correct,
		Results: result.Results,
	}, nil
}

func (s *Service) History(userID int64) ([]models.HistoryEntry, error) {
	return s.store.ListHistory(userID, historyLimit)
}

// GetAttempt returns a single attempt for review. Before submission only the
// public projection is exposed; after it, the full per-question results are
// rebuilt from the snapshot.
func (s *Service) GetAttempt(userID int64, id string) (*models.AttemptDetail, error) {
	attempt, err := s.store.GetAttempt(id, userID)
	if err != nil {
		return nil, err
	}

	detail := &models.AttemptDetail{
		ID:         attempt.ID,
		Subject:    attempt.Subject,
		Difficulty: attempt.Difficulty,
		Score:      attempt.Score,
		CreatedAt:  attempt.CreatedAt,
		Questions:  publicView(attempt.Questions),
	}

	if attempt.Score != nil && attempt.Answers != nil {
		result, err := ScoreQuiz(attempt.Questions, attempt.Answers)
		if err == nil {
			detail.Results = result.Results
		}
	}
	return detail, nil
}

func publicView(questions []models.QuizQuestion) []models.PublicQuestion {
	public := make([]models.PublicQuestion, 0, len(questions))
	for i, q := range questions {
		public = append(public, models.PublicQuestion{
			Index:    i,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return public
}
