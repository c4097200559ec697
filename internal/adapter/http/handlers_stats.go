package adapthttp

import "net/http"

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	window := intQuery(r, "window", 30)
	linear, err := boolQuery(r, "linear")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	report, err := s.stats.Report(r.Context(), window, linear, r.URL.Query().Get("unit"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
