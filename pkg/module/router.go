package module

import (
	"net/http"
	"strings"
)

// Router dispatches requests to mounted modules by their first path
// segment, falling back to natively registered patterns for everything
// else.
type Router struct {
	modules map[string]*Module
	native  *http.ServeMux
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		modules: make(map[string]*Module),
		native:  http.NewServeMux(),
	}
}

// Mount attaches a module at its prefix. Mounting a second module with the
// same prefix replaces the first.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m
}

// HandleNative registers a pattern directly on the router's fallback mux,
// outside any module. Used for process-level endpoints like health checks.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// ServeHTTP normalizes trailing slashes, then routes to the module owning
// the first path segment or to the native mux when no module matches.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if path := req.URL.Path; len(path) > 1 && strings.HasSuffix(path, "/") {
		req = req.Clone(req.Context())
		req.URL.Path = strings.TrimSuffix(path, "/")
	}

	if prefix := firstSegment(req.URL.Path); prefix != "" {
		if m, ok := r.modules[prefix]; ok {
			m.Serve(w, req)
			return
		}
	}

	r.native.ServeHTTP(w, req)
}

// firstSegment returns the leading path segment with its slash, or ""
// for the root path and non-rooted paths.
func firstSegment(path string) string {
	if !strings.HasPrefix(path, "/") {
		return ""
	}

	rest := path[1:]
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return ""
	}
	return "/" + rest
}
