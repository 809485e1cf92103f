package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// DetailView renders a record read-only with an Edit affordance.
func DetailView(def reconcile.EntityDef, row console.Row) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div id="detail"><h1>%s</h1><dl class="record">`,
			esc(row.Fields.String(def.Fields[0].LogicalName))); err != nil {
			return err
		}
		for _, spec := range def.Fields {
			if _, err := fmt.Fprintf(w, `<dt>%s</dt><dd>%s</dd>`,
				esc(spec.LogicalName), esc(row.Fields.String(spec.LogicalName))); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`</dl><button hx-post="/api/%s/%s/edit" hx-target="#detail">Edit</button></div>`,
			esc(def.Key), esc(row.ID))
		return err
	})
}

// EditForm renders an editing session's draft as a form. Save posts the
// form values; Cancel discards the draft without a backend call.
func EditForm(def reconcile.EntityDef, session *console.EditSession) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form id="detail" hx-put="/api/edits/%s" hx-target="#detail">`,
			esc(session.ID)); err != nil {
			return err
		}
		for _, spec := range def.Fields {
			required := ""
			if spec.Required {
				required = " required"
			}
			if _, err := fmt.Fprintf(w,
				`<label>%[1]s<input name="%[1]s" value="%[2]s"%[3]s></label>`,
				esc(spec.LogicalName), esc(session.Draft.String(spec.LogicalName)), required); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<button type="submit">Save</button> <button hx-post="/api/edits/%s/cancel" hx-target="#detail">Cancel</button></form>`,
			esc(session.ID))
		return err
	})
}
