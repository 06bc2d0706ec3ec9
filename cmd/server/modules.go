package main

import (
	"net/http"

	"github.com/JaimeStill/canvas-lab/internal/config"
	"github.com/JaimeStill/canvas-lab/internal/metrics"
	"github.com/JaimeStill/canvas-lab/pkg/module"
	"github.com/JaimeStill/canvas-lab/web/app"
)

type Modules struct {
	App *module.Module
}

func NewModules(runtime *Runtime, cfg *config.Config) (*Modules, error) {
	appModule, err := app.NewModule(cfg.App.BasePath, runtime.Render, runtime.Logger)
	if err != nil {
		return nil, err
	}

	return &Modules{
		App: appModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.App)
}

func buildRouter(runtime *Runtime) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !runtime.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET /metrics", metrics.Handler().ServeHTTP)

	return router
}
