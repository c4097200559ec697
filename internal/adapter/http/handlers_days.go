package adapthttp

import (
	"net/http"

	"github.com/gorilla/mux"

	"nutrisec/internal/app"
	"nutrisec/internal/domain"
)

func dayID(r *http.Request) string {
	return mux.Vars(r)["id"]
}

func (s *Server) handleListDays(w http.ResponseWriter, r *http.Request) {
	filter, err := domain.ParseDayFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	items, err := s.days.ListDays(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"filter": filter, "items": items})
}

func (s *Server) handleStartDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string `json:"title"`
	}
	if err := parseOptionalJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sum, err := s.days.StartDay(r.Context(), body.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sum)
}

func (s *Server) handleCurrentDay(w http.ResponseWriter, r *http.Request) {
	sum, err := s.days.CurrentDay(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleClearCompleted(w http.ResponseWriter, r *http.Request) {
	n, err := s.days.ClearCompleted(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "deleted": n})
}

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	sum, err := s.days.GetDay(r.Context(), dayID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleEditDay(w http.ResponseWriter, r *http.Request) {
	var edit app.DayEdit
	if err := parseJSON(r, &edit); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sum, err := s.days.EditDay(r.Context(), dayID(r), edit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	deleted, err := s.days.DeleteDay(r.Context(), dayID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		writeServiceError(w, domain.ErrDayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) handleSetCompleted(completed bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := s.days.SetCompleted(r.Context(), dayID(r), completed)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, sum)
	}
}

func (s *Server) handleEat(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Foods []domain.Food `json:"foods"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	sum, err := s.days.Eat(r.Context(), dayID(r), body.Foods)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (s *Server) handleUndoLastMeal(w http.ResponseWriter, r *http.Request) {
	meal, sum, err := s.days.UndoLastMeal(r.Context(), dayID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"meal": meal, "summary": sum})
}
