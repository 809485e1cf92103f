package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/thrive-platform/admin-console/internal/console"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// WizardStep renders the current step's fields pre-filled from the
// accumulator. The advance button reads "Submit" on the final step.
func WizardStep(def reconcile.EntityDef, w2 *console.Wizard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<form id="wizard" hx-post="/api/wizards/%s/next" hx-target="#content"><h2>New %s (step %d of %d)</h2>`,
			esc(w2.ID), esc(def.Label), w2.Step+1, w2.StepCount()); err != nil {
			return err
		}

		for _, spec := range def.StepFields(w2.Step) {
			required := ""
			if spec.Required {
				required = " required"
			}
			if _, err := fmt.Fprintf(w,
				`<label>%[1]s<input name="%[1]s" value="%[2]s"%[3]s></label>`,
				esc(spec.LogicalName), esc(w2.Acc.String(spec.LogicalName)), required); err != nil {
				return err
			}
		}

		advance := "Next"
		if w2.OnFinalStep() {
			advance = "Submit"
		}
		if _, err := fmt.Fprintf(w, `<button type="submit">%s</button>`, advance); err != nil {
			return err
		}
		if w2.Step > 0 {
			if _, err := fmt.Fprintf(w,
				` <button hx-post="/api/wizards/%s/prev" hx-target="#content">Prev</button>`, esc(w2.ID)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			` <button hx-post="/api/wizards/%s/cancel" hx-target="#content">Cancel</button></form>`, esc(w2.ID))
		return err
	})
}
