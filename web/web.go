// Package web embeds the HTML templates and static assets of the intake pages.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

// FS holds the page templates and the stylesheet.
//
//go:embed templates static
var FS embed.FS

// Templates parses every page template. Pages are named after their file
// and share the blocks defined in layout.html.
func Templates() (*template.Template, error) {
	return template.ParseFS(FS, "templates/*.html")
}

// Static returns the asset tree served under /static.
func Static() (fs.FS, error) {
	return fs.Sub(FS, "static")
}
