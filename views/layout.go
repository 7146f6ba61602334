// Package views renders the techo UI. Components are written directly
// against templ.ComponentFunc: the markup is small and almost entirely
// data-driven (calendar cells, mood table), so plain Go keeps it in one
// place.
package views

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
)

func esc(s string) string {
	return html.EscapeString(s)
}

func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1"/>
<title>%s</title>
<link rel="stylesheet" href="/static/styles.css"/>
<script src="/static/app.js" defer></script>
</head>
<body>
`, esc(title))
		if err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err = io.WriteString(w, "</body>\n</html>\n")
		return err
	})
}
