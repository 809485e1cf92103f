package reconcile

// softDeleteKeys are the flags backends have used to mark a record as
// soft-deleted. A record is excluded when any of them is truthy; timestamps
// and string renderings count.
var softDeleteKeys = []string{"deleted_at", "deletedAt", "is_deleted", "isDeleted", "deleted"}

// IsSoftDeleted reports whether a raw record carries any soft-delete marker.
func IsSoftDeleted(raw RawRecord) bool {
	for _, key := range softDeleteKeys {
		if v, ok := raw[key]; ok && truthy(v) {
			return true
		}
	}
	return false
}
