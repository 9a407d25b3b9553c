package web

import (
	"net/http"
)

// handleEvents serves the calendar event feed consumed by the widget.
//
// GET /api/events
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	evts, err := s.events.Events(r.Context())
	if err != nil {
		respondError(w, r, err, "EVENTS_PIPELINE_FAILED", http.StatusInternalServerError)
		return
	}
	respondJSON(w, evts)
}

// handleHealth reports liveness.
//
// GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]string{"status": "ok"})
}
