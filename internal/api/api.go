// Package api provides the diagnostics API module.
package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/tools"
	"github.com/JaimeStill/tool-server/pkg/middleware"
	"github.com/JaimeStill/tool-server/pkg/module"
	"github.com/JaimeStill/tool-server/pkg/routes"
)

// NewModule creates the API module exposing registration diagnostics.
func NewModule(cfg *config.Config, logger *slog.Logger, report *tools.Report) *module.Module {
	handler := NewHandler(report, logger)

	mux := http.NewServeMux()
	routes.Register(mux, handler.Routes())

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(logger))

	return m
}
