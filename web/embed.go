// Package web holds the server-rendered HTML templates, embedded so the
// storefront ships as a single binary.
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates parses the embedded template set for installation on the
// router.
func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
