package render

import (
	"fmt"
	"math"

	"github.com/JaimeStill/canvas-lab/internal/life"
	"github.com/JaimeStill/canvas-lab/internal/noise"
)

// Defaults applied to zero-valued request fields.
const (
	DefaultNoiseSize  = 256
	DefaultNoiseScale = 4.0
	MaxNoiseScale     = 256.0

	DefaultLifeSize     = 64
	DefaultLifeDensity  = 0.3
	DefaultLifeCellSize = 8
	MaxLifeCellSize     = 64
)

// NoiseRequest describes a Perlin noise image.
type NoiseRequest struct {
	Seed    int64        `json:"seed"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Scale   float64      `json:"scale"`
	Z       float64      `json:"z"`
	Params  noise.Params `json:"params"`
	Palette string       `json:"palette"`
}

// Normalize fills zero-valued fields with defaults.
func (r *NoiseRequest) Normalize() {
	if r.Width == 0 {
		r.Width = DefaultNoiseSize
	}
	if r.Height == 0 {
		r.Height = DefaultNoiseSize
	}
	if r.Scale == 0 {
		r.Scale = DefaultNoiseScale
	}

	def := noise.DefaultParams()
	if r.Params.Octaves == 0 {
		r.Params.Octaves = def.Octaves
	}
	if r.Params.Frequency == 0 {
		r.Params.Frequency = def.Frequency
	}
	if r.Params.Amplitude == 0 {
		r.Params.Amplitude = def.Amplitude
	}
	if r.Params.Persistence == 0 {
		r.Params.Persistence = def.Persistence
	}
	if r.Params.Lacunarity == 0 {
		r.Params.Lacunarity = def.Lacunarity
	}
	if r.Palette == "" {
		r.Palette = noise.DefaultPalette
	}
}

// Validate checks a normalized request against the configured limits.
func (r *NoiseRequest) Validate(cfg *Config) error {
	if err := checkSize(r.Width, r.Height, cfg); err != nil {
		return err
	}
	if !(r.Scale > 0 && r.Scale <= MaxNoiseScale) {
		return fmt.Errorf("%w: scale must be in (0, %v]", ErrInvalidRequest, MaxNoiseScale)
	}
	if math.IsNaN(r.Z) || math.IsInf(r.Z, 0) {
		return fmt.Errorf("%w: z must be finite", ErrInvalidRequest)
	}
	if err := r.Params.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if _, err := noise.LookupPalette(r.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

func (r NoiseRequest) key() string {
	return fmt.Sprintf("noise:%+v", r)
}

// LifeRequest describes a Game of Life board rendered after a number of
// generations. Width and Height count cells, not pixels.
type LifeRequest struct {
	Seed        int64   `json:"seed"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Density     float64 `json:"density"`
	Generations int     `json:"generations"`
	CellSize    int     `json:"cell_size"`
}

// Normalize fills zero-valued fields with defaults. Density and
// Generations keep their zero values.
func (r *LifeRequest) Normalize() {
	if r.Width == 0 {
		r.Width = DefaultLifeSize
	}
	if r.Height == 0 {
		r.Height = DefaultLifeSize
	}
	if r.CellSize == 0 {
		r.CellSize = DefaultLifeCellSize
	}
}

// Validate checks a normalized request against the configured limits.
func (r *LifeRequest) Validate(cfg *Config) error {
	if r.CellSize < 1 || r.CellSize > MaxLifeCellSize {
		return fmt.Errorf("%w: cell_size must be between 1 and %d", ErrInvalidRequest, MaxLifeCellSize)
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1", ErrInvalidRequest)
	}
	if r.Width > cfg.MaxWidth/r.CellSize || r.Height > cfg.MaxHeight/r.CellSize {
		return fmt.Errorf("%w: board %dx%d at cell_size %d exceeds %dx%d", ErrInvalidRequest,
			r.Width, r.Height, r.CellSize, cfg.MaxWidth, cfg.MaxHeight)
	}
	if !(r.Density >= 0 && r.Density <= 1) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, life.ErrInvalidDensity)
	}
	if r.Generations < 0 || r.Generations > cfg.MaxGenerations {
		return fmt.Errorf("%w: generations must be between 0 and %d", ErrInvalidRequest, cfg.MaxGenerations)
	}
	return nil
}

func (r LifeRequest) key() string {
	return fmt.Sprintf("life:%+v", r)
}

func checkSize(w, h int, cfg *Config) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: image must be at least 1x1", ErrInvalidRequest)
	}
	if w > cfg.MaxWidth || h > cfg.MaxHeight {
		return fmt.Errorf("%w: image %dx%d exceeds %dx%d", ErrInvalidRequest, w, h, cfg.MaxWidth, cfg.MaxHeight)
	}
	return nil
}
