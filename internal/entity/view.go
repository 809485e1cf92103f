package entity

import "github.com/thrive-platform/admin-console/internal/reconcile"

// ViewModel returns the typed view-model for a normalized record of the
// given entity. Unknown entities fall back to the raw normalized fields.
func ViewModel(entityKey, id string, f reconcile.Fields) any {
	switch entityKey {
	case VendorKey:
		return VendorFromFields(id, f)
	case BeneficiaryKey:
		return BeneficiaryFromFields(id, f)
	case DiscountKey:
		return DiscountFromFields(id, f)
	default:
		return f
	}
}
