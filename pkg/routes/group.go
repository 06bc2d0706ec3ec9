// Package routes describes HTTP endpoints as data so handlers can publish
// them to a mux and to a listing endpoint from the same declaration.
package routes

import (
	"net/http"
	"path"
	"strings"
)

// Route is a single method + pattern binding.
type Route struct {
	Method      string
	Pattern     string
	Description string
	Handler     http.HandlerFunc
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
	Children    []Group
}

// Registrar accepts method-qualified ServeMux patterns.
type Registrar interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Entry is a flattened route as it is registered.
type Entry struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description,omitempty"`
}

// Register adds every route of every group to r.
func Register(r Registrar, groups ...Group) {
	for _, g := range groups {
		g.walk("", func(full string, route Route) {
			r.HandleFunc(route.Method+" "+full, route.Handler)
		})
	}
}

// Entries lists the routes of groups in declaration order.
func Entries(groups ...Group) []Entry {
	var out []Entry
	for _, g := range groups {
		g.walk("", func(full string, route Route) {
			out = append(out, Entry{
				Method:      route.Method,
				Path:        full,
				Description: route.Description,
			})
		})
	}
	return out
}

func (g Group) walk(parent string, fn func(string, Route)) {
	prefix := join(parent, g.Prefix)
	for _, route := range g.Routes {
		fn(join(prefix, route.Pattern), route)
	}
	for _, child := range g.Children {
		child.walk(prefix, fn)
	}
}

func join(prefix, pattern string) string {
	if pattern == "" {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	if prefix == "" {
		return pattern
	}
	joined := path.Join(prefix, pattern)
	if strings.HasSuffix(pattern, "/") {
		joined += "/"
	}
	return joined
}
