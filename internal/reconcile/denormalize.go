package reconcile

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
)

// ValidationError is a local, pre-network validation failure. It blocks the
// write entirely; nothing is sent to the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// MissingRequiredField builds the validation error for a required field
// that is absent or trimmed-empty. Whitespace-only input is never sent to
// the backend as a value.
func MissingRequiredField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "required field is empty"}
}

// Denormalize converts an edited view back into a wire payload.
//
// Only fields present in view are written, and each is written under every
// write key its spec declares: the write-side schema accepted by the
// backend varies by deployment, so camelCase and snake_case aliases are
// populated together. Fields absent from view are omitted entirely, except
// NullToClear fields: clearing one writes an explicit null so the backend
// can tell "cleared" apart from "untouched".
//
// A required field that is present but trimmed-empty fails validation
// before any payload is produced. Display-only fields (no write keys) are
// skipped: their values are normalized renderings, not backend data.
func Denormalize(view Fields, specs []FieldSpec) (RawRecord, error) {
	out := make(RawRecord)
	for _, spec := range specs {
		keys := spec.writeKeys()
		if len(keys) == 0 {
			continue
		}
		v, present := view[spec.LogicalName]
		if !present {
			continue
		}

		if cleared(v) {
			if spec.Required {
				return nil, MissingRequiredField(spec.LogicalName)
			}
			if spec.NullToClear {
				for _, key := range keys {
					out[key] = nil
				}
			}
			continue
		}

		for _, key := range keys {
			out[key] = v
		}
	}
	return out, nil
}

// Diff returns the entries of draft whose values differ from confirmed.
// Entries missing from confirmed count as changed. Saving a diff instead
// of the whole draft keeps untouched fields out of the payload, so values
// that only exist for display (fallback sentinels, masked accounts) are
// never echoed back to the backend.
func Diff(confirmed, draft Fields) Fields {
	out := make(Fields)
	for key, v := range draft {
		if prev, ok := confirmed[key]; ok && reflect.DeepEqual(prev, v) {
			continue
		}
		out[key] = v
	}
	return out
}

// cleared reports whether an edited value represents an intentional clear:
// nil or a whitespace-only string.
func cleared(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// StripDenied removes deny-listed keys from an outgoing payload in place
// and returns it. The deny list covers legacy keys the backend rejects
// with 400s; a denied key surviving into a payload is a bug, so removal is
// logged loudly.
func StripDenied(payload RawRecord, deny []string) RawRecord {
	for _, key := range deny {
		if _, ok := payload[key]; ok {
			slog.Warn("stripped deny-listed key from outgoing payload", "key", key)
			delete(payload, key)
		}
	}
	return payload
}
