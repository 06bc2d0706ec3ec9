// Package metrics declares the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// PageViews counts rendered pages by route name.
	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canvas_page_views_total",
		Help: "Pages rendered by route name",
	}, []string{"route"})

	// RenderDuration tracks how long image renders take when they miss the cache.
	RenderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "canvas_render_duration_seconds",
		Help:    "Time spent generating and encoding images",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"kind"})

	// RenderCache counts cache lookups by image kind and result.
	RenderCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canvas_render_cache_total",
		Help: "Render cache lookups by kind and result (hit or miss)",
	}, []string{"kind", "result"})

	// HTTPRequests counts served requests by method and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "canvas_http_requests_total",
		Help: "HTTP requests by method and status code",
	}, []string{"method", "code"})
)

// ObservePageView records one render of the named route.
func ObservePageView(route string) {
	PageViews.WithLabelValues(route).Inc()
}

// ObserveRender records the duration of a render of kind.
func ObserveRender(kind string, d time.Duration) {
	RenderDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveCache records a cache hit or miss for kind.
func ObserveCache(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	RenderCache.WithLabelValues(kind, result).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Instrument counts every request passing through next.
func Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(HTTPRequests, next)
}
