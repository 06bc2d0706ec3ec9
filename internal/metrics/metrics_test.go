package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/JaimeStill/canvas-lab/internal/metrics"
)

func TestObservePageView(t *testing.T) {
	before := testutil.ToFloat64(metrics.PageViews.WithLabelValues("Intro"))
	metrics.ObservePageView("Intro")
	after := testutil.ToFloat64(metrics.PageViews.WithLabelValues("Intro"))

	if after-before != 1 {
		t.Errorf("page views delta = %v, want 1", after-before)
	}
}

func TestObserveCache(t *testing.T) {
	hits := metrics.RenderCache.WithLabelValues("life", "hit")
	misses := metrics.RenderCache.WithLabelValues("life", "miss")
	h0, m0 := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	metrics.ObserveCache("life", true)
	metrics.ObserveCache("life", false)
	metrics.ObserveCache("life", false)

	if d := testutil.ToFloat64(hits) - h0; d != 1 {
		t.Errorf("hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(misses) - m0; d != 2 {
		t.Errorf("misses delta = %v, want 2", d)
	}
}

func TestInstrumentAndHandler(t *testing.T) {
	handler := metrics.Instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	if !strings.Contains(body, `canvas_http_requests_total{code="404",method="get"}`) {
		t.Errorf("metrics output missing request counter:\n%s", body)
	}
}
