package api

import "net/url"

// resources.go names the backend's resource paths in one place so handlers
// and flows never build URLs inline.

// CollectionPath returns the collection path for an entity path ("/vendors").
func CollectionPath(entityPath string) string { return entityPath }

// RecordPath returns the single-record path for an entity path and id.
func RecordPath(entityPath, id string) string {
	return entityPath + "/" + url.PathEscape(id)
}

// VendorDiscountsPath returns the nested discounts collection of a vendor.
func VendorDiscountsPath(vendorID string) string {
	return "/vendors/" + url.PathEscape(vendorID) + "/discounts"
}
