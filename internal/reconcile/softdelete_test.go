package reconcile

import "testing"

func TestIsSoftDeleted(t *testing.T) {
	tests := []struct {
		name string
		raw  RawRecord
		want bool
	}{
		{"no markers", RawRecord{"name": "Acme"}, false},
		{"deleted_at timestamp", RawRecord{"deleted_at": "2024-03-15T10:30:00Z"}, true},
		{"deletedAt timestamp", RawRecord{"deletedAt": "2024-03-15T10:30:00Z"}, true},
		{"is_deleted bool true", RawRecord{"is_deleted": true}, true},
		{"is_deleted bool false", RawRecord{"is_deleted": false}, false},
		{"isDeleted string true", RawRecord{"isDeleted": "true"}, true},
		{"deleted numeric 1", RawRecord{"deleted": float64(1)}, true},
		{"deleted numeric 0", RawRecord{"deleted": float64(0)}, false},
		{"deleted_at null", RawRecord{"deleted_at": nil}, false},
		{"deleted_at string null", RawRecord{"deleted_at": "null"}, false},
		{"deleted string false", RawRecord{"deleted": "false"}, false},
		{"any single truthy marker wins", RawRecord{"is_deleted": false, "deleted": true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSoftDeleted(tt.raw); got != tt.want {
				t.Errorf("IsSoftDeleted(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
