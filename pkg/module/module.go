// Package module provides self-contained HTTP modules that mount onto a
// shared router under a single-segment path prefix. A module owns its own
// handler and middleware chain; the router dispatches by prefix and strips
// it before delegating, so module handlers are written against their own
// root.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Module is a mountable unit of HTTP functionality identified by its prefix.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware []Middleware
}

// New creates a module at the given prefix. The prefix must be a single
// path segment with a leading slash ("/api"); New panics otherwise since
// an invalid prefix is a programming error, not a runtime condition.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:  prefix,
		handler: handler,
	}
}

// Prefix returns the module's mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware to the module's chain. Middleware executes in
// registration order.
func (m *Module) Use(mw Middleware) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the module's handler wrapped in its middleware chain.
func (m *Module) Handler() http.Handler {
	h := m.handler
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and delegates to
// the wrapped handler. A request for the module root is served as "/".
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module: prefix is required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module: prefix %q must begin with a slash", prefix)
	}
	if prefix == "/" || strings.Count(prefix, "/") > 1 {
		return fmt.Errorf("module: prefix %q must be a single path segment", prefix)
	}
	return nil
}
