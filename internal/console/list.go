package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thrive-platform/admin-console/internal/api"
	"github.com/thrive-platform/admin-console/internal/audit"
	"github.com/thrive-platform/admin-console/internal/entity"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// Filters are the client-side list controls. They apply to the normalized
// fields of the currently loaded page only; filtering is not pushed to the
// backend, so a match on another page stays invisible until that page is
// loaded. Known limitation, kept deliberately.
type Filters struct {
	Search   string // substring match over every text field
	Category string // exact match on the category field
	Vendor   string // exact match on the vendorID field
	Type     string // exact match on the type/category field
}

func (f Filters) empty() bool {
	return f.Search == "" && f.Category == "" && f.Vendor == "" && f.Type == ""
}

// Row is one normalized list entry.
type Row struct {
	ID     string
	Fields reconcile.Fields
}

// Page is one loaded list page after soft-delete exclusion and filtering.
type Page struct {
	EntityKey string
	Rows      []Row
	Total     int
	Number    int
	Limit     int
}

// LoadPage fetches one page of an entity's collection, drops soft-deleted
// records, normalizes the remainder, and applies the client-side filters.
//
// The reported total comes from the pagination envelope less the records
// excluded here; when the envelope omits pagination it is the kept page
// length. On a timeout or unreachable backend, a previously loaded page is
// returned in place of a failure when the caller still has one.
func (s *Service) LoadPage(ctx context.Context, entityKey string, page, limit int, filters Filters, previous *Page) (*Page, error) {
	def, ok := reconcile.Get(entityKey)
	if !ok {
		return nil, fmt.Errorf("unknown entity: %s", entityKey)
	}

	raws, total, err := s.api.ListPage(ctx, def.Path, page, limit)
	if err != nil {
		if api.IsNetwork(err) && previous != nil {
			slog.Warn("list fetch failed, falling back to previous page",
				"entity", entityKey,
				"page", page,
				"error", err,
			)
			return previous, nil
		}
		return nil, err
	}

	result := &Page{EntityKey: entityKey, Number: page, Limit: limit}
	excluded := 0
	for _, raw := range raws {
		if reconcile.IsSoftDeleted(raw) {
			excluded++
			continue
		}
		result.Rows = append(result.Rows, Row{
			ID:     entity.RecordID(raw),
			Fields: reconcile.Normalize(raw, def.Fields),
		})
	}
	result.Total = total - excluded

	if !filters.empty() {
		result.Rows = applyFilters(result.Rows, filters)
	}
	return result, nil
}

// applyFilters narrows rows by the text controls. All comparisons are
// case-insensitive.
func applyFilters(rows []Row, f Filters) []Row {
	kept := rows[:0]
	for _, row := range rows {
		if matchesFilters(row.Fields, f) {
			kept = append(kept, row)
		}
	}
	return kept
}

func matchesFilters(fields reconcile.Fields, f Filters) bool {
	if f.Search != "" && !matchesSearch(fields, f.Search) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(fields.String("category"), f.Category) {
		return false
	}
	if f.Vendor != "" && !strings.EqualFold(fields.String("vendorID"), f.Vendor) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(fields.String("type"), f.Type) && !strings.EqualFold(fields.String("category"), f.Type) {
		return false
	}
	return true
}

func matchesSearch(fields reconcile.Fields, term string) bool {
	term = strings.ToLower(term)
	for _, v := range fields {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}

// Delete removes a record. Views remove the row locally first and reload
// the page afterward: soft-deleting backends keep returning the record,
// and the reload is what reconciles against server-authoritative state.
func (s *Service) Delete(ctx context.Context, entityKey, id string) error {
	def, ok := reconcile.Get(entityKey)
	if !ok {
		return fmt.Errorf("unknown entity: %s", entityKey)
	}
	if err := s.api.Delete(ctx, api.RecordPath(def.Path, id)); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.Entry{
		Action:    audit.ActionDelete,
		EntityKey: entityKey,
		RecordID:  id,
	})
	return nil
}

// VendorDiscounts loads the nested discounts collection of a vendor,
// normalized with the discount specs.
func (s *Service) VendorDiscounts(ctx context.Context, vendorID string) ([]Row, error) {
	def, ok := reconcile.Get(entity.DiscountKey)
	if !ok {
		return nil, fmt.Errorf("unknown entity: %s", entity.DiscountKey)
	}
	raws, _, err := s.api.ListPage(ctx, api.VendorDiscountsPath(vendorID), 0, 0)
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(raws))
	for _, raw := range raws {
		if reconcile.IsSoftDeleted(raw) {
			continue
		}
		rows = append(rows, Row{ID: entity.RecordID(raw), Fields: reconcile.Normalize(raw, def.Fields)})
	}
	return rows, nil
}
