package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// Wizard is the linear create flow: N ordered steps, each collecting a
// declared slice of fields, merged into one accumulator and submitted once
// on the final step. There is no branching and no partial submission.
type Wizard struct {
	ID        string
	EntityKey string
	Step      int
	Acc       reconcile.Fields
}

// StepCount returns the wizard's number of steps.
func (w *Wizard) StepCount() int {
	if def, ok := reconcile.Get(w.EntityKey); ok {
		return len(def.Steps)
	}
	return 0
}

// OnFinalStep reports whether the next advance submits.
func (w *Wizard) OnFinalStep() bool {
	return w.Step >= w.StepCount()-1
}

// BeginWizard opens a create wizard for an entity.
func (s *Service) BeginWizard(entityKey string) (*Wizard, error) {
	def, ok := reconcile.Get(entityKey)
	if !ok {
		return nil, fmt.Errorf("unknown entity: %s", entityKey)
	}
	if len(def.Steps) == 0 {
		return nil, fmt.Errorf("entity %s has no wizard steps", entityKey)
	}

	w := &Wizard{
		ID:        uuid.NewString(),
		EntityKey: entityKey,
		Acc:       make(reconcile.Fields),
	}
	s.mu.Lock()
	s.wizards[w.ID] = w
	s.mu.Unlock()
	return w, nil
}

// WizardByID returns an open wizard.
func (s *Service) WizardByID(id string) (*Wizard, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[id]
	return w, ok
}

// WizardNext validates the current step's fields against the provided
// values, merges them into the accumulator, and advances. Fields belonging
// to later steps are not validated yet, whatever their eventual
// requirements. A validation failure leaves the step unchanged.
//
// On the final step, Next submits the accumulated payload once. A
// submission failure is deliberately non-blocking: the wizard still closes
// and the failure comes back as a warning, not an error.
func (s *Service) WizardNext(ctx context.Context, wizardID string, values map[string]any) (w *Wizard, done bool, warning string, err error) {
	// The lock is held across validation, merge, and step advance: the
	// accumulator is a plain map, and overlapping requests for the same
	// wizard must not mutate it concurrently. Only the final submission's
	// network call runs unlocked.
	s.mu.Lock()
	w, ok := s.wizards[wizardID]
	if !ok {
		s.mu.Unlock()
		return nil, false, "", fmt.Errorf("unknown wizard: %s", wizardID)
	}
	def, _ := reconcile.Get(w.EntityKey)

	// Only this step's fields are validated or merged.
	for _, spec := range def.StepFields(w.Step) {
		v, present := values[spec.LogicalName]
		if !present {
			v = w.Acc[spec.LogicalName]
		}
		if spec.Required && isBlank(v) {
			s.mu.Unlock()
			return w, false, "", reconcile.MissingRequiredField(spec.LogicalName)
		}
		if v != nil {
			w.Acc[spec.LogicalName] = v
		}
	}

	if !w.OnFinalStep() {
		w.Step++
		s.mu.Unlock()
		return w, false, "", nil
	}

	// Final step: one submission of the whole accumulator.
	payload, err := reconcile.Denormalize(w.Acc, def.Fields)
	if err != nil {
		s.mu.Unlock()
		return w, false, "", err
	}
	payload = reconcile.StripDenied(payload, def.DenyList)

	// Closing the wizard before the network call makes the submission
	// single-shot: a concurrent Next for the same id now misses the map.
	delete(s.wizards, wizardID)
	s.mu.Unlock()

	created, submitErr := s.api.Create(ctx, api.CollectionPath(def.Path), payload)

	if submitErr != nil {
		// Backend readiness gaps are non-fatal here; the wizard closes and
		// the user sees a warning instead of losing the flow.
		slog.Warn("wizard submission failed",
			"entity", w.EntityKey,
			"error", submitErr,
		)
		return w, true, MapError(submitErr).Message, nil
	}

	s.audit.Record(ctx, audit.Entry{
		Action:    audit.ActionCreate,
		EntityKey: w.EntityKey,
		After:     reconcile.Normalize(created, def.Fields),
	})
	return w, true, "", nil
}

// WizardPrev steps back without validation. Values already entered on the
// current step are merged unvalidated first so nothing is lost.
func (s *Service) WizardPrev(wizardID string, values map[string]any) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.wizards[wizardID]
	if !ok {
		return nil, fmt.Errorf("unknown wizard: %s", wizardID)
	}
	for k, v := range values {
		if v != nil {
			w.Acc[k] = v
		}
	}
	if w.Step > 0 {
		w.Step--
	}
	return w, nil
}

// CancelWizard discards the accumulator and closes the wizard.
func (s *Service) CancelWizard(wizardID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, wizardID)
}

// isBlank mirrors the reconcile engine's notion of a cleared value for
// step-level required checks.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}
