package analytics

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"github.com/exam-ace/backend/internal/models"
)

type Handler struct {
	db *sql.DB
}

func NewHandler(db *sql.DB) *Handler {
	return &Handler{db: db}
}

type OverallStats struct {
	TotalQuizzes int     `json:"total_quizzes"`
	AvgScore     float64 `json:"avg_score"`
	BestScore    float64 `json:"best_score"`
	WorstScore   float64 `json:"worst_score"`
}

type BreakdownRow struct {
	Key      string  `json:"key"`
	Attempts int     `json:"attempts"`
	AvgScore float64 `json:"avg_score"`
}

type PerformanceResponse struct {
	Overall      OverallStats   `json:"overall"`
	BySubject    []BreakdownRow `json:"by_subject"`
	ByDifficulty []BreakdownRow `json:"by_difficulty"`
}

func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

// Performance aggregates the caller's scored attempts overall and broken
// down by subject and difficulty. Unsubmitted attempts don't count.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var resp PerformanceResponse
	err := h.db.QueryRow(
		`SELECT COUNT(*)::int,
		        COALESCE(AVG(score), 0),
		        COALESCE(MAX(score), 0),
		        COALESCE(MIN(score), 0)
		 FROM quiz_attempts
		 WHERE user_id = $1 AND score IS NOT NULL`,
		userID,
	).Scan(&resp.Overall.TotalQuizzes, &resp.Overall.AvgScore, &resp.Overall.BestScore, &resp.Overall.WorstScore)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load performance stats"})
		return
	}

	resp.BySubject, err = h.breakdown(userID, "subject")
	if err == nil {
		resp.ByDifficulty, err = h.breakdown(userID, "difficulty")
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to load performance stats"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) breakdown(userID int64, column string) ([]BreakdownRow, error) {
	// column is one of two fixed identifiers, never caller input.
	rows, err := h.db.Query(
		`SELECT `+column+`, COUNT(*)::int, ROUND(AVG(score)::numeric, 2)
		 FROM quiz_attempts
		 WHERE user_id = $1 AND score IS NOT NULL
		 GROUP BY `+column+`
		 ORDER BY COUNT(*) DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []BreakdownRow{}
	for rows.Next() {
		var row BreakdownRow
		if err := rows.Scan(&row.Key, &row.Attempts, &row.AvgScore); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
