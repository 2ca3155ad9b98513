package settings

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/exam-ace/backend/internal/models"
)

type Handler struct {
	db *sql.DB
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{db: db}
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// Get returns the user's saved preferences, or the defaults if nothing has
// been saved yet.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var s models.UserSettings
	err := h.db.QueryRow(
		`SELECT subject, difficulty, question_count, time_limit, auto_submit, show_explanations
		 FROM user_settings WHERE user_id = $1`,
		userID,
	).Scan(&s.Subject, &s.Difficulty, &s.QuestionCount, &s.TimeLimit, &s.AutoSubmit, &s.ShowExplanations)

	if err == sql.ErrNoRows {
		writeJSON(w, http.StatusOK, models.DefaultSettings())
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load settings"})
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var s models.UserSettings
	if err := json.NewDecoder(r.Body).Decode(&s); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	s.Subject = strings.TrimSpace(s.Subject)
	if s.Subject == "" || len(s.Subject) > 200 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject must be 1-200 characters"})
		return
	}
	if !models.ValidDifficulties[s.Difficulty] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid difficulty"})
		return
	}
	if s.QuestionCount < 3 || s.QuestionCount > 30 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question_count must be between 3 and 30"})
		return
	}
	if s.TimeLimit != nil && (*s.TimeLimit < 1 || *s.TimeLimit > 120) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_limit must be between 1 and 120 minutes"})
		return
	}

	_, err := h.db.Exec(
		`INSERT INTO user_settings (user_id, subject, difficulty, question_count, time_limit, auto_submit, show_explanations, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET
			subject = EXCLUDED.subject,
			difficulty = EXCLUDED.difficulty,
			question_count = EXCLUDED.question_count,
			time_limit = EXCLUDED.time_limit,
			auto_submit = EXCLUDED.auto_submit,
			show_explanations = EXCLUDED.show_explanations,
			updated_at = NOW()`,
		userID, s.Subject, s.Difficulty, s.QuestionCount, s.TimeLimit, s.AutoSubmit, s.ShowExplanations,
	)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save settings"})
		return
	}

	writeJSON(w, http.StatusOK, s)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
