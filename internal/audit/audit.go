// Package audit records staff mutations to a Postgres trail. The trail is
// optional: with no database configured the recorder is nil and every call
// is a no-op. Recording is best-effort by design; a failed audit write is
// logged and never fails the mutation it describes.
package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Action is the kind of mutation being recorded.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionUpload Action = "image_upload"
)

// Entry is one audit record. Before and After hold normalized snapshots of
// the record around the mutation; either may be nil.
type Entry struct {
	Action    Action
	EntityKey string
	RecordID  string
	Actor     string
	IPAddress string
	Before    map[string]any
	After     map[string]any
}

// Recorder writes entries to the audit table.
type Recorder struct {
	pool *pgxpool.Pool
}

// NewRecorder creates a recorder over an existing pool.
func NewRecorder(pool *pgxpool.Pool) *Recorder {
	return &Recorder{pool: pool}
}

const insertEntry = `
INSERT INTO audit_log (id, action, entity_key, record_id, actor, ip_address, before_state, after_state, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Record writes one entry. Safe on a nil recorder; failures are logged and
// swallowed so the mutation path is never blocked by its own trail.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if r == nil || r.pool == nil {
		return
	}

	id := pgtype.UUID{Bytes: uuid.New(), Valid: true}
	before := marshalState(e.Before)
	after := marshalState(e.After)

	_, err := r.pool.Exec(ctx, insertEntry,
		id,
		string(e.Action),
		e.EntityKey,
		e.RecordID,
		e.Actor,
		e.IPAddress,
		before,
		after,
		pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true},
	)
	if err != nil {
		slog.Warn("audit write failed",
			"action", e.Action,
			"entity", e.EntityKey,
			"record_id", e.RecordID,
			"error", err,
		)
	}
}

// ListRecent returns the newest entries, most recent first.
func (r *Recorder) ListRecent(ctx context.Context, limit int) ([]StoredEntry, error) {
	if r == nil || r.pool == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, action, entity_key, record_id, actor, created_at
FROM audit_log
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []StoredEntry
	for rows.Next() {
		var (
			id      pgtype.UUID
			created pgtype.Timestamptz
			e       StoredEntry
		)
		if err := rows.Scan(&id, &e.Action, &e.EntityKey, &e.RecordID, &e.Actor, &created); err != nil {
			return nil, err
		}
		e.ID = uuid.UUID(id.Bytes).String()
		e.CreatedAt = created.Time
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// StoredEntry is a persisted audit row as read back for display.
type StoredEntry struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	EntityKey string    `json:"entityKey"`
	RecordID  string    `json:"recordId,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// marshalState renders a snapshot as JSONB input, nil when empty.
func marshalState(state map[string]any) []byte {
	if len(state) == 0 {
		return nil
	}
	buf, err := json.Marshal(state)
	if err != nil {
		return nil
	}
	return buf
}
