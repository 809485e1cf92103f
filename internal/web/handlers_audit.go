package web

import (
	"net/http"
)

// handleAuditLog returns the most recent mutation-trail entries. With no
// trail configured the list is simply empty.
func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	entries, err := s.trail.ListRecent(r.Context(), parseIntParam(r, "limit", 100))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "data": entries})
}
