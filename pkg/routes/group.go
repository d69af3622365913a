// Package routes defines route groups and the registration helper used to
// build module handlers.
package routes

import "net/http"

// Group represents a collection of routes under a common URL prefix.
type Group struct {
	Prefix string
	Routes []Route
}

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}
