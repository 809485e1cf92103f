package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"

	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/logging"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/storage"
)

// vendorBundleRequest is the JSON body for onboarding a vendor together
// with an optional first discount and logo in one request.
type vendorBundleRequest struct {
	Vendor   map[string]any `json:"vendor"`
	Discount map[string]any `json:"discount"`
	Logo     *logoPayload   `json:"logo"`
}

// logoPayload carries an inline image; Data is base64 in the JSON body.
type logoPayload struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	Data        []byte `json:"data"`
}

// handleVendorBundle runs the vendor onboarding flow. The steps are not
// atomic: a failure after the vendor committed is reported as a warning on
// a success response, with the new vendor's id, so the caller can finish
// the remaining steps by hand instead of re-creating the vendor.
func (s *Server) handleVendorBundle(w http.ResponseWriter, r *http.Request) {
	var req vendorBundleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed bundle payload", http.StatusBadRequest)
		return
	}
	if len(req.Vendor) == 0 {
		http.Error(w, "bundle is missing a vendor", http.StatusBadRequest)
		return
	}

	bundle := console.VendorBundle{Vendor: reconcile.Fields(req.Vendor)}
	if len(req.Discount) > 0 {
		bundle.Discount = reconcile.Fields(req.Discount)
	}
	if req.Logo != nil {
		if err := storage.ValidateImage(req.Logo.ContentType, int64(len(req.Logo.Data))); err != nil {
			s.respondError(w, r, err)
			return
		}
		bundle.Logo = &console.LogoUpload{
			ObjectPath:  path.Join("vendors", req.Logo.FileName),
			ContentType: req.Logo.ContentType,
			Data:        req.Logo.Data,
		}
	}

	vendorID, err := s.service.CreateVendorBundle(r.Context(), bundle)

	var pf *console.PartialFailure
	if errors.As(err, &pf) {
		msg := console.MapError(err)
		logging.WithFields(r.Context(),
			"vendor_id", vendorID,
			"failed_step", pf.Failed,
		).Warn("vendor bundle partially created")
		writeJSON(w, map[string]any{
			"success":  true,
			"vendorId": vendorID,
			"warning":  msg.Message,
			"code":     msg.Code,
		})
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "vendorId": vendorID})
}
