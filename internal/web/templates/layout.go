// Package templates holds the console's templ components. They are plain
// templ.ComponentFunc components composed by the handlers: full pages for
// navigation requests and bare partials for HTMX swaps.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/thrive-platform/admin-console/internal/reconcile"
)

// esc escapes text for HTML interpolation.
func esc(s string) string { return templ.EscapeString(s) }

// Layout wraps body in the console's page shell with the entity navigation.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s · THRIVE Admin</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/console.css">
</head>
<body>
<header class="topbar"><a href="/" class="brand">THRIVE Admin</a>
<nav>`, esc(title)); err != nil {
			return err
		}
		for _, def := range reconcile.All() {
			if _, err := fmt.Fprintf(w, `<a href="/%s">%s</a>`, esc(def.Key), esc(def.Label)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</nav></header>
<main id="content">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>
<div id="toast"></div>
</body>
</html>`)
		return err
	})
}

// Dashboard lists the registered entities with links to their list views.
func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<h1>Dashboard</h1><ul class="entity-list">`); err != nil {
			return err
		}
		for _, def := range reconcile.All() {
			if _, err := fmt.Fprintf(w,
				`<li><a href="/%s">%s</a> <span class="count">%d fields</span></li>`,
				esc(def.Key), esc(def.Label), len(def.Fields)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul>`)
		return err
	})
}
