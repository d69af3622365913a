package main

import (
	"github.com/JaimeStill/tool-server/internal/api"
	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/tools"
	"github.com/JaimeStill/tool-server/pkg/middleware"
	"github.com/JaimeStill/tool-server/pkg/module"
)

type Modules struct {
	Tools *module.Module
	API   *module.Module
}

// NewModules runs the tool registration pass and assembles the mountable
// modules. A failure here is fatal: it only occurs when the tool root is
// missing or misconfigured.
func NewModules(runtime *Runtime, cfg *config.Config) (*Modules, error) {
	toolsModule, report, err := tools.NewModule(&cfg.Tools, runtime.Logger)
	if err != nil {
		return nil, err
	}
	toolsModule.Use(middleware.RequestID())
	toolsModule.Use(middleware.Logger(runtime.Logger))

	runtime.Logger.Info(
		"tool registration complete",
		"candidates", len(report.Entries),
		"registered", len(report.Registered()),
	)

	return &Modules{
		Tools: toolsModule,
		API:   api.NewModule(cfg, runtime.Logger, report),
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.Tools)
	router.Mount(m.API)
}
