package web

import "net/http"

// Router wraps http.ServeMux and routes unmatched requests to a fallback.
type Router struct {
	mux      *http.ServeMux
	fallback http.HandlerFunc
}

// NewRouter creates a Router. Without a fallback, unmatched requests get
// the ServeMux default response.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// SetFallback sets the handler for requests no pattern matches.
func (r *Router) SetFallback(h http.HandlerFunc) {
	r.fallback = h
}

func (r *Router) Handle(pattern string, h http.Handler) {
	r.mux.Handle(pattern, h)
}

func (r *Router) HandleFunc(pattern string, h func(http.ResponseWriter, *http.Request)) {
	r.mux.HandleFunc(pattern, h)
}

// ServeHTTP dispatches to the matching pattern or the fallback. A path
// registered under another method gets the mux's 405 with an Allow header
// instead of the fallback.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.fallback != nil {
		if _, pattern := r.mux.Handler(req); pattern == "" && !r.otherMethod(req) {
			r.fallback(w, req)
			return
		}
	}
	r.mux.ServeHTTP(w, req)
}

var methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

func (r *Router) otherMethod(req *http.Request) bool {
	for _, m := range methods {
		if m == req.Method {
			continue
		}
		alt := *req
		alt.Method = m
		if _, pattern := r.mux.Handler(&alt); pattern != "" {
			return true
		}
	}
	return false
}
