package main

import (
	"time"

	"github.com/JaimeStill/tool-server/internal/config"
	"github.com/JaimeStill/tool-server/internal/server"
)

// Server coordinates the lifecycle of all subsystems. Tool registration
// happens during construction, before the HTTP server accepts requests.
type Server struct {
	runtime *Runtime
	modules *Modules
	http    *server.Server
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime := NewRuntime(cfg)

	modules, err := NewModules(runtime, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(runtime)
	modules.Mount(router)

	runtime.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
	)

	return &Server{
		runtime: runtime,
		modules: modules,
		http:    server.New(&cfg.Server, router, runtime.Logger),
	}, nil
}

// Start begins serving and returns once all subsystems report ready.
func (s *Server) Start() error {
	s.runtime.Logger.Info("starting server")

	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.runtime.Lifecycle.WaitForStartup()
		s.runtime.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within the timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}
