package entity

import (
	"reflect"
	"testing"

	"github.com/thrive-platform/admin-console/internal/reconcile"
)

func vendorDef(t *testing.T) reconcile.EntityDef {
	t.Helper()
	def, ok := reconcile.Get(VendorKey)
	if !ok {
		t.Fatal("vendors entity not registered")
	}
	return def
}

func TestVendorNormalize_SparseRecord(t *testing.T) {
	def := vendorDef(t)

	raw := reconcile.RawRecord{
		"name":  "Acme",
		"phone": "555-1212",
	}
	fields := reconcile.Normalize(raw, def.Fields)
	v := VendorFromFields("v1", fields)

	if v.Name != "Acme" {
		t.Errorf("Name = %q, want %q", v.Name, "Acme")
	}
	if v.ContactNumber != "555-1212" {
		t.Errorf("ContactNumber = %q, want %q", v.ContactNumber, "555-1212")
	}
	if v.Email != reconcile.NotProvided {
		t.Errorf("Email = %q, want %q", v.Email, reconcile.NotProvided)
	}
	if v.Category != "Uncategorized" {
		t.Errorf("Category = %q, want %q", v.Category, "Uncategorized")
	}
	if !v.Active {
		t.Error("Active = false, want true (declared fallback)")
	}
	if v.DiscountRate != 0 {
		t.Errorf("DiscountRate = %v, want 0", v.DiscountRate)
	}
}

func TestVendorEdit_EmailWriteBack(t *testing.T) {
	def := vendorDef(t)

	draft := reconcile.Fields{"email": "new@example.com"}
	payload, err := reconcile.Denormalize(draft, def.Fields)
	if err != nil {
		t.Fatalf("Denormalize() error = %v", err)
	}
	payload = reconcile.StripDenied(payload, def.DenyList)

	if payload["email"] != "new@example.com" {
		t.Errorf("payload[email] = %v, want %q", payload["email"], "new@example.com")
	}
	if payload["primary_email"] != "new@example.com" {
		t.Errorf("payload[primary_email] = %v, want %q", payload["primary_email"], "new@example.com")
	}
	for _, denied := range def.DenyList {
		if _, ok := payload[denied]; ok {
			t.Errorf("denied key %q present in payload", denied)
		}
	}
}

// Normalizing a write-back payload must leave every writable field
// unchanged, and display-only fields must not appear in the payload at
// all: a locale-formatted join date is a rendering, not data.
func TestVendorRoundTrip_WritableFieldsStable(t *testing.T) {
	def := vendorDef(t)

	raw := reconcile.RawRecord{
		"name":          "Acme Supplies",
		"contactName":   "Pat Jones",
		"phone":         "555-1212",
		"email":         "pat@acme.example",
		"category":      "Food",
		"description":   "Local grocer",
		"city":          "Austin",
		"state":         "TX",
		"zip":           "73301",
		"website":       "https://acme.example",
		"bank_account":  "1234567890",
		"discount_rate": "12.5",
		"created_at":    "2024-03-15T10:30:00Z",
		"is_active":     "yes",
	}

	first := reconcile.Normalize(raw, def.Fields)
	payload, err := reconcile.Denormalize(first, def.Fields)
	if err != nil {
		t.Fatalf("Denormalize() error = %v", err)
	}

	for _, key := range []string{"created_at", "createdAt", "joined_at", "joinedAt", "registration_date"} {
		if _, ok := payload[key]; ok {
			t.Errorf("read-only date key %q leaked into the payload", key)
		}
	}

	second := reconcile.Normalize(reconcile.RawRecord(payload), def.Fields)
	for _, spec := range def.Fields {
		if len(spec.WriteKeys) == 0 {
			continue
		}
		if !reflect.DeepEqual(first[spec.LogicalName], second[spec.LogicalName]) {
			t.Errorf("round trip changed %s: %#v -> %#v",
				spec.LogicalName, first[spec.LogicalName], second[spec.LogicalName])
		}
	}
	if second.String("joinedDate") != reconcile.NotProvided {
		t.Errorf("joinedDate = %q, want fallback %q after a payload that omits it",
			second.String("joinedDate"), reconcile.NotProvided)
	}
	if second.String("location") != "Austin, TX 73301" {
		t.Errorf("location = %q, want %q", second.String("location"), "Austin, TX 73301")
	}
}

func TestRegisteredEntities(t *testing.T) {
	for _, key := range []string{VendorKey, BeneficiaryKey, DiscountKey} {
		def, ok := reconcile.Get(key)
		if !ok {
			t.Errorf("entity %q not registered", key)
			continue
		}
		if def.Path == "" {
			t.Errorf("entity %q has no resource path", key)
		}
		if len(def.Steps) == 0 {
			t.Errorf("entity %q has no wizard steps", key)
		}
		for i, step := range def.Steps {
			for _, name := range step {
				if _, ok := def.Spec(name); !ok {
					t.Errorf("entity %q step %d names unknown field %q", key, i, name)
				}
			}
		}
	}
}

func TestRecordID(t *testing.T) {
	tests := []struct {
		name string
		raw  reconcile.RawRecord
		want string
	}{
		{"id key", reconcile.RawRecord{"id": "abc"}, "abc"},
		{"underscore id", reconcile.RawRecord{"_id": "abc"}, "abc"},
		{"uuid key", reconcile.RawRecord{"uuid": "abc"}, "abc"},
		{"numeric id", reconcile.RawRecord{"id": float64(42)}, "42"},
		{"large numeric id stays in digits", reconcile.RawRecord{"id": float64(1234567890123)}, "1234567890123"},
		{"id preferred over uuid", reconcile.RawRecord{"id": "a", "uuid": "b"}, "a"},
		{"missing", reconcile.RawRecord{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordID(tt.raw); got != tt.want {
				t.Errorf("RecordID(%v) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
