package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/web/templates"
)

// handleBeginEdit opens an edit session: the record is fetched fresh,
// cloned into a draft, and rendered as a form.
func (s *Server) handleBeginEdit(w http.ResponseWriter, r *http.Request) {
	def, ok := s.entityDef(w, r)
	if !ok {
		return
	}

	session, err := s.service.BeginEdit(r.Context(), def.Key, chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, def.Label, templates.EditForm(def, session))
}

// handleSaveEdit merges the submitted values into the draft and saves.
// On failure the session stays editing and the form re-renders with the
// draft intact above an error banner; the user's input is never lost.
func (s *Server) handleSaveEdit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, ok := s.service.EditSessionByID(sessionID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	def, _ := reconcile.Get(session.EntityKey)

	values, err := formValues(r, def)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.service.UpdateDraft(sessionID, values); err != nil {
		s.respondError(w, r, err)
		return
	}

	session, err = s.service.SaveEdit(r.Context(), sessionID)
	if err != nil {
		if isHTMX(r) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(statusFor(err))
			msg := mappedAlert(err)
			msg.Render(r.Context(), w)
			templates.EditForm(def, session).Render(r.Context(), w)
			return
		}
		s.respondError(w, r, err)
		return
	}

	s.render(w, r, def.Label, templates.DetailView(def, rowFromSession(session)))
}

// handleCancelEdit discards the draft, no backend call, and re-renders the
// last confirmed record.
func (s *Server) handleCancelEdit(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, ok := s.service.EditSessionByID(sessionID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	def, _ := reconcile.Get(session.EntityKey)
	row := rowFromSession(session)
	s.service.CancelEdit(sessionID)

	s.render(w, r, def.Label, templates.DetailView(def, row))
}
