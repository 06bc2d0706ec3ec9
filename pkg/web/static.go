package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// PublicRoute binds a single public file to a GET pattern.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// DistServer serves the files under subdir of fsys at prefix.
func DistServer(fsys fs.FS, subdir, prefix string) http.HandlerFunc {
	sub, err := fs.Sub(fsys, subdir)
	if err != nil {
		return http.NotFound
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub))).ServeHTTP
}

// PublicFile serves a single file from subdir of fsys.
func PublicFile(fsys fs.FS, subdir, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, path.Join(subdir, name))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		ServeEmbeddedFile(data, contentType(name))(w, r)
	}
}

// PublicFileRoutes returns a root-level route for each named file.
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(files))
	for _, f := range files {
		routes = append(routes, PublicRoute{
			Method:  http.MethodGet,
			Pattern: "/" + f,
			Handler: PublicFile(fsys, subdir, f),
		})
	}
	return routes
}

// ServeEmbeddedFile writes data with the given content type.
func ServeEmbeddedFile(data []byte, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		w.Write(data)
	}
}

func contentType(name string) string {
	if ext := path.Ext(name); ext == ".webmanifest" {
		return "application/manifest+json"
	} else if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}
