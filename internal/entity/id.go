package entity

import (
	"strings"

	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// idAliases are the raw keys a record identifier has been observed under.
var idAliases = []string{"id", "_id", "uuid"}

// RecordID extracts a record's identifier from its raw form. Identifiers
// are outside the FieldSpec tables because they are never edited and never
// written back; they only address the record on the wire.
func RecordID(raw reconcile.RawRecord) string {
	for _, alias := range idAliases {
		if v, ok := raw[alias]; ok {
			if s := strings.TrimSpace(rawString(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

// rawString renders an identifier value, tolerating numeric IDs.
func rawString(v any) string {
	f := reconcile.Fields{"id": v}
	return f.String("id")
}
