package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/web/templates"
)

// handleBeginWizard opens the create wizard on step 0.
func (s *Server) handleBeginWizard(w http.ResponseWriter, r *http.Request) {
	def, ok := s.entityDef(w, r)
	if !ok {
		return
	}

	wizard, err := s.service.BeginWizard(def.Key)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, "New "+def.Label, templates.WizardStep(def, wizard))
}

// handleWizardNext validates the current step and advances; on the final
// step it submits the accumulator. A submission failure closes the wizard
// anyway and surfaces as a non-blocking toast over the refreshed list.
func (s *Server) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	wizard, ok := s.service.WizardByID(wizardID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	def, _ := reconcile.Get(wizard.EntityKey)

	values, err := formValues(r, def)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	wizard, done, warning, err := s.service.WizardNext(r.Context(), wizardID, values)
	if err != nil {
		// Step validation failed: same step re-renders above the error.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(statusFor(err))
		mappedAlert(err).Render(r.Context(), w)
		templates.WizardStep(def, wizard).Render(r.Context(), w)
		return
	}

	if !done {
		s.render(w, r, "New "+def.Label, templates.WizardStep(def, wizard))
		return
	}

	// Wizard closed; show the refreshed list, with the warning when the
	// submission itself failed.
	page, lerr := s.service.LoadPage(r.Context(), def.Key, 1, defaultPageSize, parseFilters(r), nil)
	if lerr != nil {
		s.respondError(w, r, lerr)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if warning != "" {
		templates.Toast(warning).Render(r.Context(), w)
	}
	templates.ListPage(def, page).Render(r.Context(), w)
}

// handleWizardPrev steps back without validation or data loss.
func (s *Server) handleWizardPrev(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	wizard, ok := s.service.WizardByID(wizardID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	def, _ := reconcile.Get(wizard.EntityKey)

	values, err := formValues(r, def)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	wizard, err = s.service.WizardPrev(wizardID, values)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, "New "+def.Label, templates.WizardStep(def, wizard))
}

// handleWizardCancel discards the accumulator and returns to the list.
func (s *Server) handleWizardCancel(w http.ResponseWriter, r *http.Request) {
	wizardID := chi.URLParam(r, "wizardID")
	wizard, ok := s.service.WizardByID(wizardID)
	if !ok {
		http.NotFound(w, r)
		return
	}
	def, _ := reconcile.Get(wizard.EntityKey)
	s.service.CancelWizard(wizardID)

	page, err := s.service.LoadPage(r.Context(), def.Key, 1, defaultPageSize, parseFilters(r), nil)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, def.Label, templates.ListPage(def, page))
}
