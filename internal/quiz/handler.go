package quiz

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/exam-ace/backend/internal/models"
)

// RateLimiter gates the expensive generation path. Implementations must
// fail open when their backing store is down.
type RateLimiter interface {
	Allow(ctx context.Context, userID int64) bool
}

type Handler struct {
	service *Service
	limiter RateLimiter
}

func NewHandler(service *Service, limiter RateLimiter) *Handler {
	return &Handler{service: service, limiter: limiter}
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	req.Subject = strings.TrimSpace(req.Subject)
	if req.Subject == "" || len(req.Subject) > 200 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject must be 1-200 characters"})
		return
	}
	if !models.ValidDifficulties[req.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "difficulty must be 'beginner', 'intermediate', or 'advanced'"})
		return
	}
	if req.Count == 0 {
		req.Count = 10
	}
	if req.Count < 3 || req.Count > 30 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "count must be between 3 and 30"})
		return
	}

	if !h.limiter.Allow(r.Context(), userID) {
		writeJSON(w, http.StatusTooManyRequests, models.ErrorResponse{Error: "Rate limit exceeded. Try again later."})
		return
	}

	resp, err := h.service.Generate(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrNoFallbackContent) {
			writeJSON(w, http.StatusBadGateway, models.ErrorResponse{Error: "Quiz generation is unavailable: " + err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate quiz"})
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.QuizID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "quiz_id is required"})
		return
	}

	resp, err := h.service.Submit(r.Context(), userID, req)
	if err != nil {
		var subErr *SubmissionError
		switch {
		case errors.Is(err, ErrAttemptNotFound):
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
		case errors.As(err, &subErr):
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: subErr.Error()})
		default:
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit quiz"})
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	entries, err := h.service.History(userID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load history"})
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	detail, err := h.service.GetAttempt(userID, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, ErrAttemptNotFound) {
			writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Quiz not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load quiz"})
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
