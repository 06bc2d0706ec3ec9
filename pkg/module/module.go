// Package module mounts self-contained HTTP handlers under a path prefix.
// A module owns everything below its prefix and sees request paths with
// the prefix removed, so the same module works at "/" or "/some/base".
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is a handler mounted under a prefix with its own middleware chain.
type Module struct {
	prefix     string
	router     http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a module mounted at prefix. The prefix must start with "/";
// a trailing slash is ignored and "/" mounts the module at the root.
// An invalid prefix is a programming error and panics.
func New(prefix string, router http.Handler) *Module {
	p, err := normalizePrefix(prefix)
	if err != nil {
		panic(err)
	}
	return &Module{
		prefix: p,
		router: router,
	}
}

// Prefix returns the normalized mount prefix. The root mount is "/".
func (m *Module) Prefix() string {
	if m.prefix == "" {
		return "/"
	}
	return m.prefix
}

// IsRoot reports whether the module is mounted at "/".
func (m *Module) IsRoot() bool {
	return m.prefix == ""
}

// Use appends middleware. The first registered middleware runs outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module router wrapped in its middleware.
func (m *Module) Handler() http.Handler {
	h := m.router
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the prefix from the request path and dispatches to Handler.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func normalizePrefix(prefix string) (string, error) {
	if !strings.HasPrefix(prefix, "/") {
		return "", fmt.Errorf("module prefix must start with /: %q", prefix)
	}
	p := strings.TrimRight(prefix, "/")
	if strings.Contains(p, "//") {
		return "", fmt.Errorf("module prefix contains empty segment: %q", prefix)
	}
	return p, nil
}
