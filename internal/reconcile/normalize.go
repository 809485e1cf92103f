package reconcile

import (
	"strings"
	"time"
)

// dateLayouts are the wire date formats the backend has been observed to
// emit, probed in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"Jan 2, 2006",
}

// displayDateLayout is the locale format dates are rendered in.
const displayDateLayout = "Jan 2, 2006"

// Normalize resolves a raw record into a fully-populated Fields map, one
// entry per FieldSpec. It is total: whatever shape raw has, every declared
// logical field comes back with a usable value, falling back to the spec's
// fallback when no alias carries data.
func Normalize(raw RawRecord, specs []FieldSpec) Fields {
	out := make(Fields, len(specs))
	for _, spec := range specs {
		out[spec.LogicalName] = resolve(raw, spec)
	}
	return out
}

// resolve probes a field's aliases in priority order and interprets the
// first non-sentinel hit according to the field's kind.
func resolve(raw RawRecord, spec FieldSpec) any {
	for _, alias := range spec.Aliases {
		v, ok := raw[alias]
		if !ok || spec.isSentinel(v) {
			continue
		}
		if resolved, ok := interpret(v, spec); ok {
			return resolved
		}
	}
	if spec.Kind == KindLocation {
		if loc := synthesizeLocation(raw); loc != "" {
			return loc
		}
	}
	return spec.fallback()
}

// interpret converts one raw value per the field kind. A false return means
// the value was unusable (e.g. an unparseable number) and probing should
// continue with the next alias.
func interpret(v any, spec FieldSpec) (any, bool) {
	switch spec.Kind {
	case KindNumber:
		n, ok := coerceNumber(v)
		return n, ok
	case KindFlag:
		b, ok := coerceBool(v)
		return b, ok
	case KindDate:
		s := strings.TrimSpace(coerceString(v))
		if s == "" {
			return nil, false
		}
		return formatDate(s), true
	case KindAccount:
		s := strings.TrimSpace(coerceString(v))
		if s == "" {
			return nil, false
		}
		return MaskAccount(s), true
	default:
		s := strings.TrimSpace(coerceString(v))
		if s == "" {
			return nil, false
		}
		return s, true
	}
}

// formatDate renders a wire date in the display layout. Values that parse
// under none of the known layouts are passed through as-is rather than
// erroring; the console shows what the backend sent.
func formatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return s
}

// MaskAccount hides all but the last four characters of an account number.
// Values of four characters or fewer are returned unchanged.
func MaskAccount(account string) string {
	if len(account) <= 4 {
		return account
	}
	return "****" + account[len(account)-4:]
}

// locationComponents probe the usual aliases for each address part when a
// flat location string is absent from the record.
var locationComponents = [][]string{
	{"city", "City"},
	{"state", "State", "province"},
	{"zip", "zip_code", "zipCode", "postal_code", "postalCode"},
}

// synthesizeLocation builds "{city}, {state} {zip}" from the record's
// address parts, checking a nested address object first and then the
// record's own keys. Missing components are dropped and dangling commas
// trimmed, so a record with only a state still renders cleanly.
func synthesizeLocation(raw RawRecord) string {
	source := raw
	if nested, ok := raw["address"].(map[string]any); ok {
		source = RawRecord(nested)
	}

	part := func(aliases []string) string {
		for _, a := range aliases {
			if v, ok := source[a]; ok {
				if s := strings.TrimSpace(coerceString(v)); s != "" {
					return s
				}
			}
		}
		return ""
	}

	city := part(locationComponents[0])
	state := part(locationComponents[1])
	zip := part(locationComponents[2])

	tail := strings.TrimSpace(state + " " + zip)
	loc := city + ", " + tail
	loc = strings.Trim(loc, ", ")
	return strings.TrimSpace(loc)
}
