//go:build ignore

// Wind tool: reports a deterministic wind estimate for a coordinate.
// Interpreted at runtime by the tool server; the build tag keeps it out
// of the compiled binary.
package main

import (
	"encoding/json"
	"math"
	"net/http"
)

var Router = newRouter()

type windRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type windReport struct {
	SpeedKts  float64 `json:"speed_kts"`
	Direction string  `json:"direction"`
}

func newRouter() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /{$}", func(w http.ResponseWriter, r *http.Request) {
		var req windRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(estimate(req.Latitude, req.Longitude))
	})
	return mux
}

func estimate(lat, lon float64) windReport {
	speed := math.Abs(math.Sin(lat)*8 + math.Cos(lon)*6)
	directions := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	index := int(math.Abs(lat+lon)) % len(directions)

	return windReport{
		SpeedKts:  math.Round(speed*10) / 10,
		Direction: directions[index],
	}
}
