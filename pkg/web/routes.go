// Package web serves server-rendered pages from a declarative route table.
//
// A RouteTable is built once at startup from RouteDef records and never
// changes afterwards. Each record binds a URL path and a unique route name to
// a page template and its document title. TemplateSet pre-parses the page
// templates against shared layouts, and Router dispatches requests with a
// fallback for anything the table does not declare.
package web

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrInvalidRoute indicates a route record is missing required fields.
	ErrInvalidRoute = errors.New("invalid route")

	// ErrDuplicatePath indicates two routes declare the same path.
	ErrDuplicatePath = errors.New("duplicate route path")

	// ErrDuplicateName indicates two routes declare the same name.
	ErrDuplicateName = errors.New("duplicate route name")

	// ErrRouteNotFound indicates no route carries the requested name.
	ErrRouteNotFound = errors.New("route not found")
)

// RouteDef declares a page: where it lives, what it is called, which
// template renders it, and the document title shown for it.
type RouteDef struct {
	Path     string `json:"path"`
	Name     string `json:"name"`
	Template string `json:"-"`
	Title    string `json:"title"`
	Bundle   string `json:"-"`
}

// Pattern returns the ServeMux pattern for the route. The root path is
// anchored with {$} so it does not capture every unmatched request.
func (r RouteDef) Pattern() string {
	if r.Path == "/" {
		return "GET /{$}"
	}
	return "GET " + r.Path
}

// RouteTable is an immutable, validated set of routes.
type RouteTable struct {
	routes []RouteDef
	paths  map[string]int
	names  map[string]int
}

// NewRouteTable validates defs and builds a table. Paths and names must be
// unique; paths must be absolute.
func NewRouteTable(defs ...RouteDef) (*RouteTable, error) {
	t := &RouteTable{
		routes: make([]RouteDef, 0, len(defs)),
		paths:  make(map[string]int, len(defs)),
		names:  make(map[string]int, len(defs)),
	}

	for _, d := range defs {
		if err := validateRoute(d); err != nil {
			return nil, err
		}

		d.Path = CleanPath(d.Path)
		if _, ok := t.paths[d.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, d.Path)
		}
		if _, ok := t.names[d.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, d.Name)
		}

		t.paths[d.Path] = len(t.routes)
		t.names[d.Name] = len(t.routes)
		t.routes = append(t.routes, d)
	}

	return t, nil
}

// Routes returns a copy of the routes in declaration order.
func (t *RouteTable) Routes() []RouteDef {
	return slices.Clone(t.routes)
}

// Names returns route names in declaration order.
func (t *RouteTable) Names() []string {
	names := make([]string, len(t.routes))
	for i, r := range t.routes {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of routes.
func (t *RouteTable) Len() int {
	return len(t.routes)
}

// Resolve finds the route declared for path. A trailing slash is ignored
// for every path except the root.
func (t *RouteTable) Resolve(path string) (RouteDef, bool) {
	i, ok := t.paths[CleanPath(path)]
	if !ok {
		return RouteDef{}, false
	}
	return t.routes[i], true
}

// Lookup finds a route by name.
func (t *RouteTable) Lookup(name string) (RouteDef, bool) {
	i, ok := t.names[name]
	if !ok {
		return RouteDef{}, false
	}
	return t.routes[i], true
}

// URL returns the public URL of the named route under basePath.
func (t *RouteTable) URL(basePath, name string) (string, error) {
	r, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}
	return JoinPath(basePath, r.Path), nil
}

// CleanPath normalizes a request path for table lookups.
func CleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return "/"
		}
	}
	return p
}

// JoinPath prefixes p with basePath. The root path maps onto the base
// itself so "/app" and "/" join to "/app".
func JoinPath(basePath, p string) string {
	base := strings.TrimRight(basePath, "/")
	p = CleanPath(p)
	if p == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + p
}

func validateRoute(d RouteDef) error {
	switch {
	case d.Path == "":
		return fmt.Errorf("%w: path required", ErrInvalidRoute)
	case !strings.HasPrefix(d.Path, "/"):
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, d.Path)
	case d.Name == "":
		return fmt.Errorf("%w: name required for %s", ErrInvalidRoute, d.Path)
	case d.Template == "":
		return fmt.Errorf("%w: template required for %s", ErrInvalidRoute, d.Name)
	}
	return nil
}
