// Template for a new tool. Copy this file to a name that matches no
// exclusion pattern (names beginning with "_" never register) anywhere
// under the tools root. The server mounts the exported Router under a
// path derived from the file's location: weather/wind.go serves at
// /tools/weather/wind/.
//
// Tool files are evaluated in an isolated interpreter with the full
// standard library available. Declare package main and export a Router
// that satisfies http.Handler; files without a Router export are loaded
// as shared helpers and register nothing.
package main

import (
	"encoding/json"
	"net/http"
)

var Router = newRouter()

func newRouter() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "implement me"})
	})
	return mux
}
