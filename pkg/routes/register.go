package routes

import "net/http"

// Register adds every route in the given groups to the mux, nesting route
// patterns under their group prefix.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		for _, route := range group.Routes {
			mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
		}
	}
}
