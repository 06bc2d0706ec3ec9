package main

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/canvas-lab/internal/config"
	"github.com/JaimeStill/canvas-lab/internal/render"
	"github.com/JaimeStill/canvas-lab/pkg/lifecycle"
	"github.com/JaimeStill/canvas-lab/pkg/logging"
)

// Runtime holds the process-wide systems shared by every module.
type Runtime struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Render    render.System
}

func NewRuntime(cfg *config.Config) (*Runtime, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	renderSys, err := render.New(&cfg.Render, logger)
	if err != nil {
		return nil, fmt.Errorf("render init failed: %w", err)
	}

	return &Runtime{
		Lifecycle: lc,
		Logger:    logger,
		Render:    renderSys,
	}, nil
}

func (r *Runtime) Start() error {
	if err := r.Render.Start(r.Lifecycle); err != nil {
		return fmt.Errorf("render start failed: %w", err)
	}
	return nil
}
