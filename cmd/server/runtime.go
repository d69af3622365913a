package main

import (
	"log/slog"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/lifecycle"
	"github.com/JaimeStill/tool-server/pkg/logging"
)

// Runtime holds the process-wide subsystems shared by every module.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
}

func NewRuntime(cfg *config.Config) *Runtime {
	return &Runtime{
		Lifecycle: lifecycle.New(),
		Logger:    logging.New(&cfg.Logging),
	}
}
