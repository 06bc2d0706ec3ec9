// Package render turns validated image requests into PNG bytes and keeps
// recently rendered images in a bounded LRU cache. Requests are normalized
// before they are keyed, so equivalent queries share one cache entry.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/JaimeStill/canvas-lab/internal/life"
	"github.com/JaimeStill/canvas-lab/internal/metrics"
	"github.com/JaimeStill/canvas-lab/internal/noise"
	"github.com/JaimeStill/canvas-lab/pkg/lifecycle"
)

// System renders the images behind the PerlinNoise and Intro pages.
type System interface {
	// Noise renders a Perlin noise field as PNG.
	Noise(ctx context.Context, req NoiseRequest) ([]byte, error)

	// Life renders a Game of Life board after req.Generations steps as PNG.
	Life(ctx context.Context, req LifeRequest) ([]byte, error)

	// Start registers a startup hook that pre-renders the default images
	// and a shutdown hook that drops the cache.
	Start(lc *lifecycle.Coordinator) error
}

type system struct {
	cfg    *Config
	cache  *lru.Cache
	logger *slog.Logger
}

// New creates a render system. cfg must already be finalized.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	s := &system{
		cfg:    cfg,
		logger: logger.With("system", "render"),
	}

	if cfg.Cache.Entries > 0 {
		cache, err := lru.New(cfg.Cache.Entries)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

func (s *system) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting render system",
		"cache_entries", s.cfg.Cache.Entries,
		"max_image_size", s.cfg.Cache.MaxImageSize,
	)

	lc.OnStartup(func() {
		ctx := lc.Context()
		if _, err := s.Noise(ctx, NoiseRequest{}); err != nil {
			s.logger.Warn("noise warm-up failed", "error", err)
		}
		if _, err := s.Life(ctx, LifeRequest{Density: DefaultLifeDensity}); err != nil {
			s.logger.Warn("life warm-up failed", "error", err)
		}
		s.logger.Info("render cache warmed")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if s.cache != nil {
			s.cache.Purge()
		}
		s.logger.Info("render cache purged")
	})

	return nil
}

func (s *system) Noise(ctx context.Context, req NoiseRequest) ([]byte, error) {
	req.Normalize()
	if err := req.Validate(s.cfg); err != nil {
		return nil, err
	}

	return s.cached(ctx, "noise", req.key(), func(ctx context.Context) ([]byte, error) {
		field, err := noise.Generate(ctx, noise.New(req.Seed), noise.FieldOptions{
			Width:  req.Width,
			Height: req.Height,
			Scale:  req.Scale,
			Z:      req.Z,
			Params: req.Params,
		})
		if err != nil {
			return nil, fmt.Errorf("generate field: %w", err)
		}

		palette, err := noise.LookupPalette(req.Palette)
		if err != nil {
			return nil, err
		}
		return noise.Render(field, palette)
	})
}

func (s *system) Life(ctx context.Context, req LifeRequest) ([]byte, error) {
	req.Normalize()
	if err := req.Validate(s.cfg); err != nil {
		return nil, err
	}

	return s.cached(ctx, "life", req.key(), func(ctx context.Context) ([]byte, error) {
		board, err := life.Random(req.Width, req.Height, req.Density, req.Seed)
		if err != nil {
			return nil, err
		}

		board, err = board.Advance(ctx, req.Generations)
		if err != nil {
			return nil, fmt.Errorf("advance board: %w", err)
		}
		return life.Render(board, req.CellSize)
	})
}

func (s *system) cached(ctx context.Context, kind, key string, render func(context.Context) ([]byte, error)) ([]byte, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			metrics.ObserveCache(kind, true)
			return v.([]byte), nil
		}
		metrics.ObserveCache(kind, false)
	}

	start := time.Now()
	data, err := render(ctx)
	if err != nil {
		return nil, err
	}
	elapsed := time.Since(start)
	metrics.ObserveRender(kind, elapsed)

	s.logger.Debug("image rendered", "kind", kind, "bytes", len(data), "duration", elapsed)

	if s.cache != nil && int64(len(data)) <= s.cfg.Cache.MaxImageSizeBytes() {
		s.cache.Add(key, data)
	}
	return data, nil
}
