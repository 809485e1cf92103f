// Package console implements the staff-facing view flows: paginated lists,
// the detail/edit cycle, and the create wizard. It owns no persistent
// state; every flow fetches fresh from the resource backend and runs the
// result through the reconcile engine before a view sees it.
package console

import (
	"sync"

	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/storage"
)

// Service coordinates all view flows against the backend.
//
// Edit sessions and wizards live in memory, keyed by UUID; they are
// per-view scratch state, discarded on cancel or completion. Overlapping
// saves to the same record are not coordinated: the backend applies them
// in arrival order and the last writer wins.
type Service struct {
	api    *api.Client
	images *storage.Client
	audit  *audit.Recorder

	mu      sync.Mutex
	edits   map[string]*EditSession
	wizards map[string]*Wizard
}

// NewService creates the flow service. images and recorder may be nil when
// the corresponding collaborator is not configured.
func NewService(client *api.Client, images *storage.Client, recorder *audit.Recorder) *Service {
	return &Service{
		api:     client,
		images:  images,
		audit:   recorder,
		edits:   make(map[string]*EditSession),
		wizards: make(map[string]*Wizard),
	}
}

// Images returns the storage collaborator client, or nil when unset.
func (s *Service) Images() *storage.Client { return s.images }
