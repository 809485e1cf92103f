package audit

import (
	"context"
	"testing"
)

// The trail is optional; every call must be a clean no-op without a pool.
func TestNilRecorderIsNoOp(t *testing.T) {
	var r *Recorder
	r.Record(context.Background(), Entry{Action: ActionCreate, EntityKey: "vendors"})

	entries, err := r.ListRecent(context.Background(), 10)
	if err != nil {
		t.Errorf("ListRecent() error = %v", err)
	}
	if entries != nil {
		t.Errorf("ListRecent() = %v, want nil", entries)
	}

	r = NewRecorder(nil)
	r.Record(context.Background(), Entry{Action: ActionDelete})
}

func TestMarshalState(t *testing.T) {
	if got := marshalState(nil); got != nil {
		t.Errorf("marshalState(nil) = %q, want nil", got)
	}
	if got := marshalState(map[string]any{}); got != nil {
		t.Errorf("marshalState(empty) = %q, want nil", got)
	}
	got := marshalState(map[string]any{"name": "Acme"})
	if string(got) != `{"name":"Acme"}` {
		t.Errorf("marshalState = %s", got)
	}
}
