package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// NavItem is a rendered link to one route of the table.
type NavItem struct {
	Name   string
	Title  string
	URL    string
	Active bool
}

// PageData is passed to every page template. BasePath lets templates build
// portable URLs via {{ .BasePath }}.
type PageData struct {
	Title    string
	Name     string
	Bundle   string
	BasePath string
	Path     string
	Nav      []NavItem
	Data     any
}

// URL joins p onto the base path, e.g. {{ .URL "/dist/app.css" }}.
func (d PageData) URL(p string) string {
	return JoinPath(d.BasePath, p)
}

// TemplateSet holds page templates parsed once at startup, each cloned
// from the shared layouts.
type TemplateSet struct {
	pages    map[string]*template.Template
	table    *RouteTable
	basePath string
}

// NewTemplateSet parses the layouts matched by layoutGlob and clones them
// for every route in table plus any extra pages (error pages have no path
// and stay out of the table). Parsing fails fast on a missing or broken
// template.
func NewTemplateSet(layoutFS, pageFS fs.FS, layoutGlob, pageSubdir, basePath string, table *RouteTable, extra ...RouteDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("parse layouts: %w", err)
	}

	pageSub, err := fs.Sub(pageFS, pageSubdir)
	if err != nil {
		return nil, fmt.Errorf("page subdir %s: %w", pageSubdir, err)
	}

	defs := append(table.Routes(), extra...)
	pages := make(map[string]*template.Template, len(defs))
	for _, d := range defs {
		if _, ok := pages[d.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", d.Template, err)
		}
		if _, err := t.ParseFS(pageSub, d.Template); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", d.Template, err)
		}
		pages[d.Template] = t
	}

	return &TemplateSet{
		pages:    pages,
		table:    table,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path stamped into every PageData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// Data builds the PageData for def with the navigation marked active for
// the current route.
func (ts *TemplateSet) Data(def RouteDef) PageData {
	return PageData{
		Title:    def.Title,
		Name:     def.Name,
		Bundle:   def.Bundle,
		BasePath: ts.basePath,
		Path:     def.Path,
		Nav:      ts.nav(def.Name),
	}
}

// PageHandler returns a handler that renders the page for route.
func (ts *TemplateSet) PageHandler(layout string, route RouteDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ts.Render(w, http.StatusOK, layout, route.Template, ts.Data(route)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// ErrorHandler returns a handler that renders page with the given status.
func (ts *TemplateSet) ErrorHandler(layout string, page RouteDef, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.Data(page)
		data.Path = r.URL.Path
		if err := ts.Render(w, status, layout, page.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// Render executes layout for the page template and writes it with status.
// Output is buffered so a template failure never leaves a partial page.
func (ts *TemplateSet) Render(w http.ResponseWriter, status int, layout, page string, data PageData) error {
	var buf bytes.Buffer
	if err := ts.Execute(&buf, layout, page, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// Execute writes the rendered page to wr.
func (ts *TemplateSet) Execute(wr io.Writer, layout, page string, data PageData) error {
	t, ok := ts.pages[page]
	if !ok {
		return fmt.Errorf("template not found: %s", page)
	}
	return t.ExecuteTemplate(wr, layout, data)
}

func (ts *TemplateSet) nav(active string) []NavItem {
	routes := ts.table.Routes()
	items := make([]NavItem, len(routes))
	for i, r := range routes {
		items[i] = NavItem{
			Name:   r.Name,
			Title:  r.Title,
			URL:    JoinPath(ts.basePath, r.Path),
			Active: r.Name == active,
		}
	}
	return items
}
