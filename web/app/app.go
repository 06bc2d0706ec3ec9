// Package app provides the web application module with embedded templates and assets.
package app

import (
	"embed"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/JaimeStill/canvas-lab/internal/metrics"
	"github.com/JaimeStill/canvas-lab/internal/noise"
	"github.com/JaimeStill/canvas-lab/internal/render"
	"github.com/JaimeStill/canvas-lab/pkg/handlers"
	"github.com/JaimeStill/canvas-lab/pkg/module"
	"github.com/JaimeStill/canvas-lab/pkg/routes"
	"github.com/JaimeStill/canvas-lab/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

// Route names.
const (
	PerlinNoise = "PerlinNoise"
	Intro       = "Intro"
)

var publicFiles = []string{
	"favicon.svg",
	"site.webmanifest",
}

var pages = []web.RouteDef{
	{Path: "/", Name: PerlinNoise, Template: "perlin-noise.html", Title: "Perlin Noise", Bundle: "app"},
	{Path: "/intro", Name: Intro, Template: "intro.html", Title: "Game of Life", Bundle: "app"},
}

var notFound = web.RouteDef{Name: "NotFound", Template: "404.html", Title: "Not Found", Bundle: "app"}

// Routes builds the page route table.
func Routes() (*web.RouteTable, error) {
	return web.NewRouteTable(pages...)
}

// RouteInfo is the public description of a page route.
type RouteInfo struct {
	Name  string `json:"name"`
	Path  string `json:"path"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// RouteInfos lists the table with each path resolved against basePath.
func RouteInfos(table *web.RouteTable, basePath string) []RouteInfo {
	defs := table.Routes()
	infos := make([]RouteInfo, len(defs))
	for i, d := range defs {
		infos[i] = RouteInfo{
			Name:  d.Name,
			Path:  d.Path,
			Title: d.Title,
			URL:   web.JoinPath(basePath, d.Path),
		}
	}
	return infos
}

type noiseView struct {
	Seed       int64
	Size       int
	Scale      float64
	Params     noise.Params
	MaxOctaves int
	Palettes   []string
}

type lifeView struct {
	Seed    int64
	Size    int
	Density float64
}

type app struct {
	table  *web.RouteTable
	ts     *web.TemplateSet
	render *render.Handler
	logger *slog.Logger
}

// NewModule creates the app module configured for the given base path.
func NewModule(basePath string, sys render.System, logger *slog.Logger) (*module.Module, error) {
	if !strings.HasPrefix(basePath, "/") || strings.Contains(basePath, "//") {
		return nil, fmt.Errorf("invalid base path %q", basePath)
	}

	table, err := Routes()
	if err != nil {
		return nil, err
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		basePath,
		table,
		notFound,
	)
	if err != nil {
		return nil, err
	}

	a := &app{
		table:  table,
		ts:     ts,
		render: render.NewHandler(sys, logger),
		logger: logger.With("module", "app"),
	}
	return module.New(basePath, a.router()), nil
}

func (a *app) router() http.Handler {
	r := web.NewRouter()
	r.SetFallback(a.ts.ErrorHandler(layout, notFound, http.StatusNotFound))

	for _, route := range a.table.Routes() {
		r.HandleFunc(route.Pattern(), a.page(route))
	}

	routes.Register(r, a.render.Routes(), a.Routes())

	r.Handle("GET /dist/", web.DistServer(distFS, "dist", "/dist/"))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}

// Routes returns the app's JSON endpoints.
func (a *app) Routes() routes.Group {
	return routes.Group{
		Description: "Page route table",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/routes", Handler: a.listRoutes, Description: "List page routes"},
		},
	}
}

func (a *app) listRoutes(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, RouteInfos(a.table, a.ts.BasePath()))
}

func (a *app) page(route web.RouteDef) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := a.ts.Data(route)
		data.Data = viewData(route.Name, seedParam(r))

		metrics.ObservePageView(route.Name)

		if err := a.ts.Render(w, http.StatusOK, layout, route.Template, data); err != nil {
			a.logger.Error("render page", "route", route.Name, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

func viewData(name string, seed int64) any {
	switch name {
	case PerlinNoise:
		return noiseView{
			Seed:       seed,
			Size:       render.DefaultNoiseSize,
			Scale:      render.DefaultNoiseScale,
			Params:     noise.DefaultParams(),
			MaxOctaves: noise.MaxOctaves,
			Palettes:   noise.Palettes(),
		}
	case Intro:
		return lifeView{
			Seed:    seed,
			Size:    render.DefaultLifeSize * render.DefaultLifeCellSize,
			Density: render.DefaultLifeDensity,
		}
	}
	return nil
}

func seedParam(r *http.Request) int64 {
	seed, _ := strconv.ParseInt(r.URL.Query().Get("seed"), 10, 64)
	return seed
}
