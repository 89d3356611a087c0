package ui

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// render executes a component template. Component data is built in this
// package, so a failure here is a programming error: it is logged and the
// component renders as nothing rather than breaking the whole page.
func render(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("Component render failed", "component", name, "error", err)
		return ""
	}
	return template.HTML(buf.String())
}
