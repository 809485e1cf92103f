package web

import (
	"io"
	"net/http"
	"path"

	"github.com/go-chi/chi/v5"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/entity"
	"github.com/thrive-platform/admin-console/internal/storage"
)

// handleVendorLogo uploads a vendor logo and writes its public URL onto
// the vendor record. Upload first, record update second; a failed update
// after a successful upload comes back as a partial-success warning, and
// the uploaded object stays.
func (s *Server) handleVendorLogo(w http.ResponseWriter, r *http.Request) {
	images := s.service.Images()
	if images == nil {
		s.respondError(w, r, &storage.ValidationError{Message: "image storage is not configured"})
		return
	}
	vendorID := chi.URLParam(r, "id")

	file, header, err := r.FormFile("logo")
	if err != nil {
		s.respondError(w, r, &storage.ValidationError{Message: "no image file provided"})
		return
	}
	defer file.Close()

	if err := storage.ValidateImage(header.Header.Get("Content-Type"), header.Size); err != nil {
		s.respondError(w, r, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxImageSize+1))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	objectPath := path.Join("vendors", vendorID, header.Filename)
	url, err := images.Upload(r.Context(), objectPath, header.Header.Get("Content-Type"), data)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	s.trail.Record(r.Context(), audit.Entry{
		Action:    audit.ActionUpload,
		EntityKey: entity.VendorKey,
		RecordID:  vendorID,
		IPAddress: r.RemoteAddr,
	})

	if err := s.service.AttachVendorLogo(r.Context(), vendorID, url); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true, "url": url})
}

// handleImageDelete removes an uploaded image by its public URL.
func (s *Server) handleImageDelete(w http.ResponseWriter, r *http.Request) {
	images := s.service.Images()
	if images == nil {
		s.respondError(w, r, &storage.ValidationError{Message: "image storage is not configured"})
		return
	}

	url := r.URL.Query().Get("url")
	if url == "" {
		s.respondError(w, r, &storage.ValidationError{Message: "missing url parameter"})
		return
	}
	if err := images.Delete(r.Context(), url); err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, map[string]any{"success": true})
}
