package main

import (
	"github.com/JaimeStill/canvas-lab/internal/metrics"
	"github.com/JaimeStill/canvas-lab/pkg/middleware"
)

// buildMiddleware creates the root middleware stack. Request ids and
// logging wrap TrimSlash so redirects are logged with an id.
func buildMiddleware(runtime *Runtime) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(metrics.Instrument)
	middlewareSys.Use(middleware.RequestID())
	middlewareSys.Use(middleware.Logger(runtime.Logger))
	middlewareSys.Use(middleware.TrimSlash())
	return middlewareSys
}
