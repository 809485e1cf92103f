package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// EntityTable renders one loaded page as a table with per-row view/delete
// controls and pager links. Cell order follows the entity's declared field
// order.
func EntityTable(def reconcile.EntityDef, page *console.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="%s-table"><table class="records"><thead><tr>`, esc(def.Key)); err != nil {
			return err
		}
		for _, spec := range def.Fields {
			if _, err := fmt.Fprintf(w, `<th>%s</th>`, esc(spec.LogicalName)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `<th></th></tr></thead><tbody>`); err != nil {
			return err
		}

		for _, row := range page.Rows {
			if _, err := fmt.Fprintf(w, `<tr id="row-%s">`, esc(row.ID)); err != nil {
				return err
			}
			for _, spec := range def.Fields {
				if _, err := fmt.Fprintf(w, `<td>%s</td>`, esc(row.Fields.String(spec.LogicalName))); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w,
				`<td><a href="/%[1]s/%[2]s">View</a> <button hx-delete="/api/%[1]s/%[2]s" hx-target="#%[1]s-table" hx-confirm="Delete this record?">Delete</button></td></tr>`,
				esc(def.Key), esc(row.ID)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(w, `</tbody></table><p class="pager">%d total`, page.Total); err != nil {
			return err
		}
		if page.Number > 1 {
			if _, err := fmt.Fprintf(w, ` <a hx-get="/api/%s?page=%d&limit=%d" hx-target="#%s-table">Prev</a>`,
				esc(def.Key), page.Number-1, page.Limit, esc(def.Key)); err != nil {
				return err
			}
		}
		if page.Limit > 0 && page.Number*page.Limit < page.Total {
			if _, err := fmt.Fprintf(w, ` <a hx-get="/api/%s?page=%d&limit=%d" hx-target="#%s-table">Next</a>`,
				esc(def.Key), page.Number+1, page.Limit, esc(def.Key)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</p></div>`)
		return err
	})
}

// ListPage renders the full list view: filter controls above the table and
// a button opening the create wizard.
func ListPage(def reconcile.EntityDef, page *console.Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<h1>%s</h1>
<form class="filters" hx-get="/api/%s" hx-target="#%s-table">
<input type="search" name="search" placeholder="Search this page">
<input type="text" name="category" placeholder="Category">
<button type="submit">Filter</button>
<button hx-post="/api/%s/wizard" hx-target="#content">New</button>
</form>`, esc(def.Label), esc(def.Key), esc(def.Key), esc(def.Key)); err != nil {
			return err
		}
		return EntityTable(def, page).Render(ctx, w)
	})
}
