package web

// handlers_common.go contains shared helpers used across handlers.

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/reconcile"
	"github.com/thrive-platform/admin-console/internal/web/templates"
)

// defaultPageSize is the list page size when the client sends none.
const defaultPageSize = 25

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil || i < 1 {
		return defaultVal
	}
	return i
}

// parseFilters extracts the client-side list controls from the query.
func parseFilters(r *http.Request) console.Filters {
	q := r.URL.Query()
	return console.Filters{
		Search:   strings.TrimSpace(q.Get("search")),
		Category: strings.TrimSpace(q.Get("category")),
		Vendor:   strings.TrimSpace(q.Get("vendor")),
		Type:     strings.TrimSpace(q.Get("type")),
	}
}

// formValues collects the logical-field values a form or JSON body carries.
// Only keys declared by the entity are accepted; unknown inputs are dropped.
func formValues(r *http.Request, def reconcile.EntityDef) (map[string]any, error) {
	values := make(map[string]any)

	if strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, err
		}
		for _, spec := range def.Fields {
			if v, ok := body[spec.LogicalName]; ok {
				values[spec.LogicalName] = v
			}
		}
		return values, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	for _, spec := range def.Fields {
		if _, ok := r.PostForm[spec.LogicalName]; !ok {
			continue
		}
		raw := r.PostForm.Get(spec.LogicalName)
		switch spec.Kind {
		case reconcile.KindNumber:
			if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
				values[spec.LogicalName] = f
			} else {
				values[spec.LogicalName] = raw
			}
		case reconcile.KindFlag:
			values[spec.LogicalName] = raw == "true" || raw == "on" || raw == "1"
		default:
			values[spec.LogicalName] = raw
		}
	}
	return values, nil
}

// render writes a templ component, wrapping it in the page layout for
// non-HTMX navigation requests.
func (s *Server) render(w http.ResponseWriter, r *http.Request, title string, body templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if isHTMX(r) {
		body.Render(r.Context(), w)
		return
	}
	templates.Layout(title, body).Render(r.Context(), w)
}

// rowFromSession views an edit session's confirmed record as a list row.
func rowFromSession(session *console.EditSession) console.Row {
	return console.Row{ID: session.RecordID, Fields: session.Record}
}

// mappedAlert builds the alert component for a mapped error.
func mappedAlert(err error) templ.Component {
	msg := console.MapError(err)
	return templates.Alert(msg.Severity, msg.Message, msg.Action, msg.Code)
}

// writeJSON writes a JSON response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
