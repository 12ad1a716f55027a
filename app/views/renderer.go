// Package views is the markup boundary: it turns view-models into HTML.
// Nothing here reads the content store or knows about routes.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes the embedded templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Home(v HomeView) (string, error) {
	return r.execute("home", v)
}

func (r *Renderer) Post(v PostView) (string, error) {
	return r.execute("post", v)
}

func (r *Renderer) NotFound(v NotFoundView) (string, error) {
	return r.execute("notfound", v)
}

// Shell renders the complete browser document.
func (r *Renderer) Shell(v ShellView) (string, error) {
	return r.execute("shell", v)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("template %s: %w", name, err)
	}
	return buf.String(), nil
}
