package main

import (
	"time"

	"github.com/JaimeStill/canvas-lab/internal/config"
	"github.com/JaimeStill/canvas-lab/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	runtime *Runtime
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	runtime, err := NewRuntime(cfg)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(runtime, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(runtime)
	modules.Mount(router)

	handler := buildMiddleware(runtime).Apply(router)

	runtime.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"base_path", cfg.App.BasePath,
		"version", cfg.Version,
	)

	return &Server{
		runtime: runtime,
		modules: modules,
		http:    server.New(&cfg.Server, handler, runtime.Logger),
	}, nil
}

// Start begins all subsystems and returns once the listener is bound.
// Readiness flips after the startup hooks finish.
func (s *Server) Start() error {
	s.runtime.Logger.Info("starting service")

	if err := s.runtime.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.runtime.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.runtime.Lifecycle.WaitForStartup()
		s.runtime.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Addr reports the address the HTTP server is bound to.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.runtime.Logger.Info("initiating shutdown")
	return s.runtime.Lifecycle.Shutdown(timeout)
}
