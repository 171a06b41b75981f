package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates
var embeddedFS embed.FS

// catalog maps template identifiers to embedded template paths.
var catalog = map[string]string{
	"env-example":         "env.example.tmpl",
	"gitignore":           "gitignore.tmpl",
	"readme":              "readme.md.tmpl",
	"tsconfig":            "tsconfig.json.tmpl",
	"server":              "server.tmpl",
	"app":                 "app.tmpl",
	"logger":              "logger.tmpl",
	"health-controller":   "health.controller.tmpl",
	"health-route":        "health.route.tmpl",
	"error-middleware":    "error.middleware.tmpl",
	"database":            "db.tmpl",
	"security-middleware": "security.middleware.tmpl",
	"auth-middleware":     "auth.middleware.tmpl",
	"auth-controller":     "auth.controller.tmpl",
	"auth-route":          "auth.route.tmpl",
}

// EmbeddedTemplates returns the embedded template filesystem rooted at
// the templates directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("template: embedded filesystem: %w", err)
	}
	return sub, nil
}

// Lookup resolves a template identifier to its embedded path. The
// second return value reports whether the id is in the catalog.
func Lookup(id string) (string, bool) {
	path, ok := catalog[id]
	return path, ok
}
