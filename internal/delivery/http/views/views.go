// Package views renders the server-side HTML pages.
package views

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names. Each one is a templates/<name>.html file defining a "content"
// block, rendered as the children of Layout.
const (
	PageLogin          = "login"
	PageAdminDashboard = "admin_dashboard"
	PageCreateInvite   = "create_invite"
	PageInviteCreated  = "invite_created"
	PageInvitee        = "invitee_page"
	PageResponse       = "response"
	PageNotFound       = "not_found"
	PageError          = "error"
)

const contentBlock = "content"

// Page is the data every template receives. Data holds the page-specific value.
type Page struct {
	Title string
	Flash string
	Admin bool
	Data  any
}

// Renderer holds the parsed body template of each page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	names, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	funcs := template.FuncMap{
		"uploadURL": uploadURL,
	}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.New(path.Base(name)).Funcs(funcs).ParseFS(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		body := t.Lookup(contentBlock)
		if body == nil {
			return nil, fmt.Errorf("parse %s: no %q block", name, contentBlock)
		}
		pages[strings.TrimSuffix(path.Base(name), ".html")] = body
	}
	return &Renderer{pages: pages}, nil
}

// Component returns the named page body wrapped in Layout.
func (r *Renderer) Component(name string, page Page) (templ.Component, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("unknown page %q", name)
	}
	body := templ.FromGoHTML(t, page)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Layout(page).Render(templ.WithChildren(ctx, body), w)
	}), nil
}

// Render writes the named page with the given status. The page is rendered to a
// buffer first so a template error never produces a partial response.
func (r *Renderer) Render(ctx context.Context, w http.ResponseWriter, status int, name string, page Page) error {
	component, err := r.Component(name, page)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// uploadURL turns a stored relative image path into a site-absolute URL.
func uploadURL(rel string) string {
	rel = strings.TrimSpace(rel)
	if rel == "" {
		return ""
	}
	return "/" + strings.TrimPrefix(rel, "/")
}
