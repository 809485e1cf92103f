package console

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/entity"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// EditState is the detail view's lifecycle state.
type EditState int

const (
	// StateViewing shows the confirmed record; no draft exists.
	StateViewing EditState = iota
	// StateEditing holds a mutable draft cloned from the record.
	StateEditing
	// StateSaving is in flight; transient, visible only mid-save.
	StateSaving
)

func (s EditState) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	default:
		return "viewing"
	}
}

// EditSession is one detail view's state machine:
//
//	Viewing -> Editing  (Begin: record cloned into a draft)
//	Editing -> Saving   (Save: draft denormalized and written)
//	Saving  -> Viewing  (success: server-confirmed state re-fetched)
//	Saving  -> Editing  (failure: draft preserved, nothing lost)
//	Editing -> Viewing  (Cancel: draft discarded, no network)
//
// The session exclusively owns its record and draft for the lifetime of the
// view; nothing is shared across sessions, and two sessions over the same
// record race as last-writer-wins on the backend.
type EditSession struct {
	ID        string
	EntityKey string
	RecordID  string
	State     EditState

	// Record is the last server-confirmed normalized record.
	Record reconcile.Fields
	// Draft is the mutable copy under edit; nil outside StateEditing.
	Draft reconcile.Fields
}

// Load fetches and normalizes one record for plain viewing.
func (s *Service) Load(ctx context.Context, entityKey, id string) (Row, error) {
	def, ok := reconcile.Get(entityKey)
	if !ok {
		return Row{}, fmt.Errorf("unknown entity: %s", entityKey)
	}
	raw, err := s.api.Get(ctx, api.RecordPath(def.Path, id))
	if err != nil {
		return Row{}, err
	}
	return Row{ID: entity.RecordID(raw), Fields: reconcile.Normalize(raw, def.Fields)}, nil
}

// BeginEdit fetches the record fresh, clones it into a draft, and opens an
// editing session.
func (s *Service) BeginEdit(ctx context.Context, entityKey, id string) (*EditSession, error) {
	row, err := s.Load(ctx, entityKey, id)
	if err != nil {
		return nil, err
	}

	session := &EditSession{
		ID:        uuid.NewString(),
		EntityKey: entityKey,
		RecordID:  id,
		State:     StateEditing,
		Record:    row.Fields,
		Draft:     row.Fields.Clone(),
	}

	s.mu.Lock()
	s.edits[session.ID] = session
	s.mu.Unlock()
	return session, nil
}

// EditSessionByID returns an open session.
func (s *Service) EditSessionByID(id string) (*EditSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.edits[id]
	return session, ok
}

// UpdateDraft merges edited values into a session's draft. Only sessions in
// StateEditing accept changes.
func (s *Service) UpdateDraft(sessionID string, changes map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.edits[sessionID]
	if !ok {
		return fmt.Errorf("unknown edit session: %s", sessionID)
	}
	if session.State != StateEditing {
		return fmt.Errorf("session is %s, not editing", session.State)
	}
	for k, v := range changes {
		session.Draft[k] = v
	}
	return nil
}

// SaveEdit validates the draft's changed fields, writes them back, and
// re-fetches the server-confirmed record. Untouched fields stay out of the
// payload entirely; a draft with no changes skips the write.
//
// Required-field validation failures block the network call entirely and
// leave the session editing. Network and backend failures likewise keep the
// session in StateEditing with the draft intact so the user's input
// survives; only a confirmed save returns to StateViewing.
func (s *Service) SaveEdit(ctx context.Context, sessionID string) (*EditSession, error) {
	s.mu.Lock()
	session, ok := s.edits[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, fmt.Errorf("unknown edit session: %s", sessionID)
	}
	if session.State != StateEditing {
		s.mu.Unlock()
		return session, fmt.Errorf("session is %s, not editing", session.State)
	}
	def, ok := reconcile.Get(session.EntityKey)
	if !ok {
		s.mu.Unlock()
		return session, fmt.Errorf("unknown entity: %s", session.EntityKey)
	}
	// Only fields the user actually changed leave the session. The rest of
	// the draft is normalized display state (locale dates, masked accounts,
	// fallback text) that must never be written back as data.
	changed := reconcile.Diff(session.Record, session.Draft)
	session.State = StateSaving
	s.mu.Unlock()

	fail := func(err error) (*EditSession, error) {
		s.mu.Lock()
		session.State = StateEditing
		s.mu.Unlock()
		return session, err
	}

	payload, err := reconcile.Denormalize(changed, def.Fields)
	if err != nil {
		return fail(err)
	}
	payload = reconcile.StripDenied(payload, def.DenyList)

	if len(payload) > 0 {
		if _, err := s.api.Update(ctx, api.RecordPath(def.Path, session.RecordID), payload); err != nil {
			return fail(err)
		}
	}

	// Re-fetch rather than trusting the optimistic write; the confirmed
	// state is what the view renders next.
	confirmed, err := s.Load(ctx, session.EntityKey, session.RecordID)
	if err != nil {
		return fail(err)
	}

	if len(payload) > 0 {
		s.audit.Record(ctx, audit.Entry{
			Action:    audit.ActionUpdate,
			EntityKey: session.EntityKey,
			RecordID:  session.RecordID,
			Before:    session.Record,
			After:     confirmed.Fields,
		})
	}

	s.mu.Lock()
	session.Record = confirmed.Fields
	session.Draft = nil
	session.State = StateViewing
	s.mu.Unlock()
	return session, nil
}

// CancelEdit discards the draft and closes the session. No network call.
func (s *Service) CancelEdit(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.edits, sessionID)
}
