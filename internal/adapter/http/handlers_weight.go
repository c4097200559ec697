package adapthttp

import "net/http"

func (s *Server) handleRecordWeight(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := s.weight.RecordWeight(r.Context(), dayID(r), body.Value, body.Unit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day})
}

func (s *Server) handleClearWeight(w http.ResponseWriter, r *http.Request) {
	day, err := s.weight.ClearWeight(r.Context(), dayID(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day})
}

func (s *Server) handleCardio(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DeltaKcal int `json:"deltaKcal"`
	}
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	day, err := s.cardio.Record(r.Context(), dayID(r), body.DeltaKcal)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"day": day})
}
