package render

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/canvas-lab/pkg/handlers"
	"github.com/JaimeStill/canvas-lab/pkg/routes"
)

// Handler exposes the render system over HTTP.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a render HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "render"),
	}
}

// Routes returns the image endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Description: "Generated images",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/noise.png", Handler: h.Noise, Description: "Perlin noise field"},
			{Method: "GET", Pattern: "/life.png", Handler: h.Life, Description: "Game of Life board"},
		},
	}
}

// Noise handles GET /noise.png.
func (h *Handler) Noise(w http.ResponseWriter, r *http.Request) {
	req, err := NoiseRequestFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	data, err := h.sys.Noise(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondImage(w, "image/png", data)
}

// Life handles GET /life.png.
func (h *Handler) Life(w http.ResponseWriter, r *http.Request) {
	req, err := LifeRequestFromQuery(r.URL.Query())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	data, err := h.sys.Life(r.Context(), req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondImage(w, "image/png", data)
}
