package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/entity"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/web/templates"
)

// handleDashboard renders the landing page.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "Dashboard", templates.Dashboard())
}

// entityDef resolves the entityKey URL parameter, writing a 404 when the
// key is unknown.
func (s *Server) entityDef(w http.ResponseWriter, r *http.Request) (reconcile.EntityDef, bool) {
	key := chi.URLParam(r, "entityKey")
	def, ok := reconcile.Get(key)
	if !ok {
		http.NotFound(w, r)
		return reconcile.EntityDef{}, false
	}
	return def, true
}

// handleListPage renders an entity's full list view.
func (s *Server) handleListPage(w http.ResponseWriter, r *http.Request) {
	def, ok := s.entityDef(w, r)
	if !ok {
		return
	}

	page, err := s.service.LoadPage(r.Context(), def.Key,
		parseIntParam(r, "page", 1), parseIntParam(r, "limit", defaultPageSize),
		parseFilters(r), nil)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, def.Label, templates.ListPage(def, page))
}

// handleList returns one table page; HTMX swaps it into the list view.
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	def, ok := s.entityDef(w, r)
	if !ok {
		return
	}

	page, err := s.service.LoadPage(r.Context(), def.Key,
		parseIntParam(r, "page", 1), parseIntParam(r, "limit", defaultPageSize),
		parseFilters(r), nil)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if isHTMX(r) {
		s.render(w, r, def.Label, templates.EntityTable(def, page))
		return
	}
	writeJSON(w, listResponse{
		Success: true,
		Data:    page.Rows,
		Total:   page.Total,
		Page:    page.Number,
		Limit:   page.Limit,
	})
}

// listResponse is the JSON shape of a list page.
type listResponse struct {
	Success bool          `json:"success"`
	Data    []console.Row `json:"data"`
	Total   int           `json:"total"`
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
}

// handleDetailPage renders a record read-only. Clients asking for JSON get
// the typed view-model instead of the page.
func (s *Server) handleDetailPage(w http.ResponseWriter, r *http.Request) {
	def, ok := s.entityDef(w, r)
	if !ok {
		return
	}

	row, err := s.service.Load(r.Context(), def.Key, chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if !isHTMX(r) && wantsJSON(r) {
		writeJSON(w, map[string]any{
			"success": true,
			"data":    entity.ViewModel(def.Key, row.ID, row.Fields),
		})
		return
	}
	s.render(w, r, def.Label, templates.DetailView(def, row))
}

// handleDelete removes a record and re-renders the page from the backend.
// The reload is what reconciles the optimistic removal against
// server-authoritative state on soft-deleting backends.
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	def, ok := s.entityDef(w, r)
	if !ok {
		return
	}

	if err := s.service.Delete(r.Context(), def.Key, chi.URLParam(r, "id")); err != nil {
		s.respondError(w, r, err)
		return
	}

	page, err := s.service.LoadPage(r.Context(), def.Key,
		parseIntParam(r, "page", 1), parseIntParam(r, "limit", defaultPageSize),
		console.Filters{}, nil)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.render(w, r, def.Label, templates.EntityTable(def, page))
}

// handleVendorDiscounts lists a vendor's discounts as typed view-models.
func (s *Server) handleVendorDiscounts(w http.ResponseWriter, r *http.Request) {
	rows, err := s.service.VendorDiscounts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	discounts := make([]entity.Discount, 0, len(rows))
	for _, row := range rows {
		discounts = append(discounts, entity.DiscountFromFields(row.ID, row.Fields))
	}
	writeJSON(w, map[string]any{"success": true, "data": discounts, "total": len(discounts)})
}
