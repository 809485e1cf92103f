package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/entity"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// PartialFailure reports a multi-step flow where a later step failed after
// earlier steps had already committed. There are no transactions across
// backend calls, so the committed steps stand; the failure is surfaced as
// a warning on top of the overall success, not as a rollback.
type PartialFailure struct {
	Completed []string
	Failed    string
	Err       error
}

func (e *PartialFailure) Error() string {
	return fmt.Sprintf("%s failed after %s completed: %v", e.Failed, strings.Join(e.Completed, ", "), e.Err)
}

func (e *PartialFailure) Unwrap() error { return e.Err }

// VendorBundle is the onboarding flow's input: a vendor plus an optional
// first discount and logo.
type VendorBundle struct {
	Vendor   reconcile.Fields
	Discount reconcile.Fields // nil to skip
	Logo     *LogoUpload      // nil to skip
}

// LogoUpload is an image attached during vendor onboarding.
type LogoUpload struct {
	ObjectPath  string
	ContentType string
	Data        []byte
}

// CreateVendorBundle runs the create-vendor, create-discount, upload-logo
// sequence. Each call is an independent unit; a later step's failure comes
// back as a *PartialFailure naming what did commit, and the new vendor's
// id is returned whenever step one succeeded.
func (s *Service) CreateVendorBundle(ctx context.Context, bundle VendorBundle) (vendorID string, err error) {
	vendorDef, _ := reconcile.Get(entity.VendorKey)
	discountDef, _ := reconcile.Get(entity.DiscountKey)

	payload, err := reconcile.Denormalize(bundle.Vendor, vendorDef.Fields)
	if err != nil {
		return "", err
	}
	payload = reconcile.StripDenied(payload, vendorDef.DenyList)

	created, err := s.api.Create(ctx, api.CollectionPath(vendorDef.Path), payload)
	if err != nil {
		return "", err
	}
	vendorID = entity.RecordID(created)
	completed := []string{"vendor"}

	s.audit.Record(ctx, audit.Entry{
		Action:    audit.ActionCreate,
		EntityKey: entity.VendorKey,
		RecordID:  vendorID,
		After:     reconcile.Normalize(created, vendorDef.Fields),
	})

	if bundle.Discount != nil {
		discount := bundle.Discount.Clone()
		discount["vendorID"] = vendorID
		dPayload, derr := reconcile.Denormalize(discount, discountDef.Fields)
		if derr == nil {
			dPayload = reconcile.StripDenied(dPayload, discountDef.DenyList)
			_, derr = s.api.Create(ctx, api.CollectionPath(discountDef.Path), dPayload)
		}
		if derr != nil {
			return vendorID, &PartialFailure{Completed: completed, Failed: "discount", Err: derr}
		}
		completed = append(completed, "discount")
	}

	if bundle.Logo != nil {
		if s.images == nil {
			return vendorID, &PartialFailure{Completed: completed, Failed: "logo", Err: fmt.Errorf("image storage is not configured")}
		}
		url, uerr := s.images.Upload(ctx, bundle.Logo.ObjectPath, bundle.Logo.ContentType, bundle.Logo.Data)
		if uerr == nil {
			_, uerr = s.api.Update(ctx, api.RecordPath(vendorDef.Path, vendorID), reconcile.RawRecord{
				"logo_url": url,
				"logoUrl":  url,
			})
		}
		if uerr != nil {
			return vendorID, &PartialFailure{Completed: completed, Failed: "logo", Err: uerr}
		}
	}

	return vendorID, nil
}

// AttachVendorLogo writes an uploaded logo's public URL onto a vendor
// record, under both naming conventions like any other write.
func (s *Service) AttachVendorLogo(ctx context.Context, vendorID, url string) error {
	def, _ := reconcile.Get(entity.VendorKey)
	_, err := s.api.Update(ctx, api.RecordPath(def.Path, vendorID), reconcile.RawRecord{
		"logo_url": url,
		"logoUrl":  url,
	})
	return err
}
