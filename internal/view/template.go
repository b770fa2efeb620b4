package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"helloweb/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	indexTemplate = "index.html"
	userTemplate  = "user.html"
	homeTemplate  = "home.html"
)

// templateRenderer executes the embedded HTML templates.
// Templates are parsed once; html/template is safe for concurrent execution.
type templateRenderer struct {
	tmpl *template.Template
}

// NewTemplate parses the embedded templates and returns a Renderer backed by them.
func NewTemplate() (Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &templateRenderer{tmpl: tmpl}, nil
}

func (r *templateRenderer) Index(userAgent string) (string, error) {
	return r.execute(indexTemplate, model.IndexPage{UserAgent: userAgent})
}

func (r *templateRenderer) User(name string) (string, error) {
	return r.execute(userTemplate, model.UserPage{Name: name})
}

func (r *templateRenderer) Home() (string, error) {
	return r.execute(homeTemplate, nil)
}

func (r *templateRenderer) HasHome() bool {
	return r.tmpl.Lookup(homeTemplate) != nil
}

func (r *templateRenderer) Name() string { return EngineTemplate }

func (r *templateRenderer) execute(name string, data any) (string, error) {
	t := r.tmpl.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("%w: %s", ErrNoTemplate, name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return buf.String(), nil
}
