package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/tool-server/internal/tools"
	"github.com/JaimeStill/tool-server/pkg/handlers"
	"github.com/JaimeStill/tool-server/pkg/routes"
)

// Handler serves the outcome of the startup registration pass.
type Handler struct {
	report *tools.Report
	logger *slog.Logger
}

// NewHandler creates a diagnostics handler over the given report.
func NewHandler(report *tools.Report, logger *slog.Logger) *Handler {
	return &Handler{
		report: report,
		logger: logger,
	}
}

// Routes returns the handler's route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/tools",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/registered", Handler: h.Registered},
		},
	}
}

// List returns every candidate's terminal outcome from the startup pass.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.report)
}

// Registered returns the mount paths of every successfully registered tool.
func (h *Handler) Registered(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string][]string{
		"paths": h.report.Registered(),
	})
}
