// Package template renders the embedded project file templates.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template is not in the FS.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the data was missing a key the
	// template referenced (strict mode).
	ErrMissingTemplateKey = errors.New("template: missing key")
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// titleCase renders a project name as a heading, e.g. "my-api" →
	// "My-Api".
	"titleCase": func(s string) string {
		return cases.Title(language.English).String(s)
	},
}

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the backing FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key
	// referenced by the template is absent from the data.
	Render(templateName string, data any) ([]byte, error)
}

type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
// In production the fs.FS comes from go:embed; in tests use
// testing/fstest.MapFS.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	return buf.Bytes(), nil
}
