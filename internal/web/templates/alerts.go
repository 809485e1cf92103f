package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Alert renders an error/warning/notice banner. severity selects the CSS
// class: "error", "warning", or "notice".
func Alert(severity, message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if severity == "" {
			severity = "error"
		}
		if _, err := fmt.Fprintf(w, `<div class="alert alert-%s" role="alert"><p>%s</p>`,
			esc(severity), esc(message)); err != nil {
			return err
		}
		if action != "" {
			if _, err := fmt.Fprintf(w, `<p class="alert-action">%s</p>`, esc(action)); err != nil {
				return err
			}
		}
		if code != "" {
			if _, err := fmt.Fprintf(w, `<span class="alert-code">%s</span>`, esc(code)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// Toast renders the non-blocking notification used for warnings that must
// not interrupt the flow, such as a wizard submission failure.
func Toast(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<div class="toast" hx-swap-oob="true" id="toast">%s</div>`, esc(message))
		return err
	})
}
