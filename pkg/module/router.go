package module

import "net/http"

// Router dispatches between native routes and mounted modules.
type Router struct {
	mux  *http.ServeMux
	root *Module
}

func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// HandleNative registers a handler that bypasses every module.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix. A root module receives every request
// that no native route claims.
func (r *Router) Mount(m *Module) {
	if m.IsRoot() {
		r.root = m
		return
	}
	r.mux.HandleFunc(m.prefix, m.Serve)
	r.mux.HandleFunc(m.prefix+"/", m.Serve)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.root != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" {
			r.root.Serve(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}
