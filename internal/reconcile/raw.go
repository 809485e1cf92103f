// Package reconcile bridges the loosely-shaped records returned by the
// THRIVE resource API with the fully-typed view-models the console renders.
//
// The backend is inconsistent about field naming: the same logical field may
// arrive as contact_name, contactName, primary_contact, or primaryContact
// depending on endpoint and deployment version. Rather than scattering
// optional-chaining through view code, every access goes through a FieldSpec:
// a declarative rule naming the raw aliases to probe (highest priority
// first), the values that count as "absent", the fallback to use when
// nothing matches, and the raw keys to populate on write-back.
//
// Normalize is total: it never fails, whatever shape the backend sends.
// Unknown keys are ignored, missing keys degrade to fallbacks, and the view
// layer never has to null-check.
package reconcile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawRecord is an untyped record as received from the resource API.
// No key set is guaranteed; this is the untrusted-shape boundary.
type RawRecord map[string]any

// Clone returns a shallow copy of the record.
func (r RawRecord) Clone() RawRecord {
	out := make(RawRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Fields is a normalized record keyed by logical field name. Every logical
// field declared in the entity's specs is present; values are already
// resolved to their final display type.
type Fields map[string]any

// String returns the named field as a string. Missing fields return "".
// Numbers go through the same coercion as normalization, so a large
// numeric id renders as digits, not scientific notation.
func (f Fields) String(name string) string {
	v, ok := f[name]
	if !ok || v == nil {
		return ""
	}
	return coerceString(v)
}

// Number returns the named field as a float64, or 0 when absent.
func (f Fields) Number(name string) float64 {
	switch v := f[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// Bool returns the named field as a bool, or false when absent.
func (f Fields) Bool(name string) bool {
	b, _ := f[name].(bool)
	return b
}

// Clone returns a shallow copy, used when an edit view needs a mutable
// draft without touching the record it was opened from.
func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// coerceString renders an arbitrary raw value as a string. JSON numbers
// arrive as float64; integral values are rendered without a decimal point
// so account and phone numbers survive the trip.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprint(t)
	}
}

// coerceNumber parses a raw value as a number, accepting string-encoded
// values with currency symbols and thousands separators.
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(t)
		s = strings.TrimLeft(s, "$€£")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// coerceBool interprets a raw value as a flag. String forms accepted:
// "true", "yes", "1" (case-insensitive).
func coerceBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "1":
			return true, true
		case "false", "no", "0":
			return false, true
		}
	case float64:
		return t != 0, true
	}
	return false, false
}

// truthy reports whether a raw value should be treated as set/affirmative.
// Used for soft-delete flags, which arrive as booleans, timestamps, or
// string renderings thereof depending on backend version.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s != "" && s != "false" && s != "0" && s != "null"
	case float64:
		return t != 0
	case int:
		return t != 0
	default:
		return true
	}
}
