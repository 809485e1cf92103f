package reconcile

import "strings"

// Kind describes how a logical field's raw value is interpreted during
// normalization.
type Kind int

const (
	// KindText resolves to a display string.
	KindText Kind = iota
	// KindNumber parses string-encoded numbers and resolves to float64.
	KindNumber
	// KindDate formats the raw value with the locale date formatter.
	KindDate
	// KindFlag resolves to a bool.
	KindFlag
	// KindAccount is a sensitive numeric string masked to its last 4 digits.
	KindAccount
	// KindLocation is a flat location string; when every alias is absent it
	// is synthesized from the record's city/state/zip components.
	KindLocation
)

// NotProvided is the display sentinel used when a text field has no usable
// value and no more specific fallback is declared.
const NotProvided = "Not provided"

// defaultSentinels are raw values treated as "absent" for every field, in
// addition to any per-field sentinels. The backend emits all of these for
// fields it has no data for, depending on version.
var defaultSentinels = []string{"", "N/A", "n/a", "null", "undefined"}

// FieldSpec declares how one logical field of an entity maps onto the raw
// wire record, in both directions.
type FieldSpec struct {
	// LogicalName is the stable name the console uses (e.g. "contactName").
	LogicalName string

	// Aliases are the raw keys to probe, highest priority first.
	Aliases []string

	// Kind selects the value interpretation. Zero value is KindText.
	Kind Kind

	// Fallback is used when every alias is absent or a sentinel.
	// When nil, the kind's zero fallback applies (NotProvided for text and
	// date kinds, 0 for numbers, false for flags).
	Fallback any

	// EmptySentinels are additional raw values treated as absent for this
	// field, beyond the package defaults.
	EmptySentinels []string

	// WriteKeys are the raw keys populated on write-back. More than one is
	// the norm: the write-side schema accepted by the backend is not
	// reliably known, so camelCase and snake_case are sent together.
	// When empty, the field is display-only and never written back;
	// normalized renderings (masked accounts, locale dates) must not reach
	// the backend.
	WriteKeys []string

	// Required marks fields that must be non-empty before a save or a
	// wizard submission is allowed to reach the network.
	Required bool

	// NullToClear marks fields where an explicitly cleared value must be
	// written as null, so the backend can distinguish "untouched" from
	// "cleared".
	NullToClear bool
}

// writeKeys returns the raw keys a field is written under, or nil for
// display-only fields.
func (s FieldSpec) writeKeys() []string {
	return s.WriteKeys
}

// fallback returns the declared fallback or the kind's zero fallback.
func (s FieldSpec) fallback() any {
	if s.Fallback != nil {
		return s.Fallback
	}
	switch s.Kind {
	case KindNumber:
		return float64(0)
	case KindFlag:
		return false
	default:
		return NotProvided
	}
}

// isSentinel reports whether a raw value counts as absent for this field.
func (s FieldSpec) isSentinel(v any) bool {
	if v == nil {
		return true
	}
	str, ok := v.(string)
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(str)
	for _, sent := range defaultSentinels {
		if trimmed == sent {
			return true
		}
	}
	for _, sent := range s.EmptySentinels {
		if trimmed == sent {
			return true
		}
	}
	return false
}

// EntityDef bundles everything the console needs to reconcile one entity
// type: its field specs, the raw keys that must never reach the backend,
// and the wizard's step layout.
type EntityDef struct {
	// Key identifies the entity: "vendors", "beneficiaries", "discounts".
	Key string

	// Label is the display name: "Vendors".
	Label string

	// Path is the resource API collection path, e.g. "/vendors".
	Path string

	// Fields are the entity's field specs in display order.
	Fields []FieldSpec

	// DenyList names raw keys stripped from every outgoing payload.
	// These are legacy fields the backend rejects with validation errors;
	// the list is a compatibility shim reverse-engineered against the
	// current deployment and should shrink as the backend contract firms
	// up.
	DenyList []string

	// Steps lays out the create wizard: Steps[i] names the logical fields
	// collected (and validated) on step i.
	Steps [][]string
}

// Spec returns the field spec for a logical name.
func (d EntityDef) Spec(logicalName string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.LogicalName == logicalName {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// StepFields returns the specs for one wizard step, in declared order.
// Out-of-range steps return nil.
func (d EntityDef) StepFields(step int) []FieldSpec {
	if step < 0 || step >= len(d.Steps) {
		return nil
	}
	specs := make([]FieldSpec, 0, len(d.Steps[step]))
	for _, name := range d.Steps[step] {
		if s, ok := d.Spec(name); ok {
			specs = append(specs, s)
		}
	}
	return specs
}
