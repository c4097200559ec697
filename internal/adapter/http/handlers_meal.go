package adapthttp

import (
	"net/http"
	"time"

	"nutrisec/internal/domain"
)

// mealRequest is a candidate meal. An omitted time defaults to now.
type mealRequest struct {
	Foods  []domain.Food `json:"foods"`
	Hour   *int          `json:"hour"`
	Minute *int          `json:"minute"`
}

func (m mealRequest) clock() (int, int) {
	now := time.Now().In(time.Local)
	hour, minute := now.Hour(), now.Minute()
	if m.Hour != nil {
		hour = *m.Hour
	}
	if m.Minute != nil {
		minute = *m.Minute
	}
	return hour, minute
}

func (s *Server) handleMealEvaluate(w http.ResponseWriter, r *http.Request) {
	var body mealRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hour, minute := body.clock()
	verdict, err := s.meal.Evaluate(body.Foods, hour, minute)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verdict)
}

func (s *Server) handleMealPreview(w http.ResponseWriter, r *http.Request) {
	var body mealRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	hour, minute := body.clock()
	preview, err := s.meal.Preview(r.Context(), dayID(r), body.Foods, hour, minute)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}
