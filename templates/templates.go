// Package templates holds the HTML pages rendered by the controllers.
package templates

import (
	"embed"
	"html/template"
)

//go:embed *.html
var files embed.FS

// Load parses every page. Each page is addressed by its file name, e.g. "index.html".
func Load() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(files, "*.html")
}
