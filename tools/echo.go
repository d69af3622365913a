//go:build ignore

// Echo tool: returns the request body verbatim. Interpreted at runtime by
// the tool server; the build tag keeps it out of the compiled binary.
package main

import (
	"io"
	"net/http"
)

var Router = newRouter()

func newRouter() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		io.Copy(w, r.Body)
	})
	return mux
}
