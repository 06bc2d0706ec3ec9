package render_test

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/JaimeStill/canvas-lab/internal/metrics"
	"github.com/JaimeStill/canvas-lab/internal/noise"
	"github.com/JaimeStill/canvas-lab/internal/render"
	"github.com/JaimeStill/canvas-lab/pkg/lifecycle"
	"github.com/JaimeStill/canvas-lab/pkg/logging"
)

func newSystem(t *testing.T, mutate func(*render.Config)) render.System {
	t.Helper()

	cfg := &render.Config{MaxWidth: 256, MaxHeight: 256, MaxGenerations: 50}
	if mutate != nil {
		mutate(cfg)
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	sys, err := render.New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return sys
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestSystem_Noise(t *testing.T) {
	sys := newSystem(t, nil)

	data, err := sys.Noise(context.Background(), render.NoiseRequest{Seed: 3, Width: 64, Height: 32})
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	if w, h := decodeSize(t, data); w != 64 || h != 32 {
		t.Errorf("image size = %dx%d, want 64x32", w, h)
	}
}

func TestSystem_NoiseCached(t *testing.T) {
	sys := newSystem(t, nil)
	hits := metrics.RenderCache.WithLabelValues("noise", "hit")
	before := testutil.ToFloat64(hits)

	req := render.NoiseRequest{Seed: 12, Width: 40, Height: 40, Palette: "heat"}
	first, err := sys.Noise(context.Background(), req)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	// Explicit defaults normalize to the same key as omitted ones.
	req.Scale = render.DefaultNoiseScale
	second, err := sys.Noise(context.Background(), req)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("identical requests produced different images")
	}
	if d := testutil.ToFloat64(hits) - before; d != 1 {
		t.Errorf("cache hits delta = %v, want 1", d)
	}
}

func TestSystem_CacheDisabled(t *testing.T) {
	sys := newSystem(t, func(c *render.Config) { c.Cache.Entries = -1 })

	req := render.LifeRequest{Seed: 1, Width: 8, Height: 8, Density: 0.5, CellSize: 2}
	a, err := sys.Life(context.Background(), req)
	if err != nil {
		t.Fatalf("Life() error = %v", err)
	}
	b, err := sys.Life(context.Background(), req)
	if err != nil {
		t.Fatalf("Life() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("renders are not deterministic")
	}
}

func TestSystem_Life(t *testing.T) {
	sys := newSystem(t, nil)

	data, err := sys.Life(context.Background(), render.LifeRequest{
		Seed: 5, Width: 16, Height: 12, Density: 0.4, Generations: 10, CellSize: 4,
	})
	if err != nil {
		t.Fatalf("Life() error = %v", err)
	}
	if w, h := decodeSize(t, data); w != 64 || h != 48 {
		t.Errorf("image size = %dx%d, want 64x48", w, h)
	}
}

func TestSystem_InvalidRequests(t *testing.T) {
	sys := newSystem(t, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{"noise too wide", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Width: 257})
			return err
		}},
		{"noise negative height", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Height: -4})
			return err
		}},
		{"noise scale", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Scale: render.MaxNoiseScale + 1})
			return err
		}},
		{"noise octaves", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Params: noise.Params{Octaves: noise.MaxOctaves + 1}})
			return err
		}},
		{"noise palette", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Palette: "neon"})
			return err
		}},
		{"life pixels", func() error {
			_, err := sys.Life(ctx, render.LifeRequest{Width: 100, CellSize: 4})
			return err
		}},
		{"life density", func() error {
			_, err := sys.Life(ctx, render.LifeRequest{Width: 8, Height: 8, Density: 2})
			return err
		}},
		{"life generations", func() error {
			_, err := sys.Life(ctx, render.LifeRequest{Generations: 51, Width: 8, Height: 8})
			return err
		}},
		{"life overflowing board", func() error {
			_, err := sys.Life(ctx, render.LifeRequest{Width: 1<<58 + 1, Height: 1, CellSize: 64})
			return err
		}},
		{"noise NaN scale", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Width: 8, Height: 8, Scale: math.NaN()})
			return err
		}},
		{"noise infinite z", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Width: 8, Height: 8, Z: math.Inf(1)})
			return err
		}},
		{"noise NaN persistence", func() error {
			_, err := sys.Noise(ctx, render.NoiseRequest{Width: 8, Height: 8, Params: noise.Params{Persistence: math.NaN()}})
			return err
		}},
		{"life NaN density", func() error {
			_, err := sys.Life(ctx, render.LifeRequest{Width: 8, Height: 8, Density: math.NaN()})
			return err
		}},
		{"life cell size", func() error {
			_, err := sys.Life(ctx, render.LifeRequest{CellSize: render.MaxLifeCellSize + 1})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !errors.Is(err, render.ErrInvalidRequest) {
				t.Fatalf("error = %v, want %v", err, render.ErrInvalidRequest)
			}
			if got := render.MapHTTPStatus(err); got != http.StatusBadRequest {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, http.StatusBadRequest)
			}
		})
	}
}

func TestSystem_Cancelled(t *testing.T) {
	sys := newSystem(t, func(c *render.Config) { c.Cache.Entries = -1 })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sys.Life(ctx, render.LifeRequest{Width: 8, Height: 8, Generations: 5})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Life() error = %v, want %v", err, context.Canceled)
	}
	if got := render.MapHTTPStatus(err); got != http.StatusServiceUnavailable {
		t.Errorf("MapHTTPStatus() = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestSystem_Start(t *testing.T) {
	sys := newSystem(t, nil)
	lc := lifecycle.New()

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	lc.WaitForStartup()
	if !lc.Ready() {
		t.Fatal("coordinator not ready after warm-up")
	}

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
}
