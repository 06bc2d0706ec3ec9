package render

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

// Env names the environment variables that override render settings.
type Env struct {
	MaxWidth       string
	MaxHeight      string
	MaxGenerations string
	CacheEntries   string
	MaxImageSize   string
}

// Config bounds the work a single render request may ask for and sizes
// the cache of encoded images.
type Config struct {
	MaxWidth       int         `toml:"max_width"`
	MaxHeight      int         `toml:"max_height"`
	MaxGenerations int         `toml:"max_generations"`
	Cache          CacheConfig `toml:"cache"`
}

// CacheConfig sizes the rendered image cache. Negative Entries disables it.
// Images larger than MaxImageSize are served but never cached.
type CacheConfig struct {
	Entries         int    `toml:"entries"`
	MaxImageSize    string `toml:"max_image_size"`
	maxImageSizeVal int64
}

// MaxImageSizeBytes returns the parsed MaxImageSize. Valid after Finalize.
func (c *CacheConfig) MaxImageSizeBytes() int64 {
	return c.maxImageSizeVal
}

// Finalize applies defaults, environment overrides and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		if err := c.loadEnv(env); err != nil {
			return err
		}
	}
	return c.validate()
}

// Merge copies non-zero overlay values onto c.
func (c *Config) Merge(overlay *Config) {
	if overlay.MaxWidth != 0 {
		c.MaxWidth = overlay.MaxWidth
	}
	if overlay.MaxHeight != 0 {
		c.MaxHeight = overlay.MaxHeight
	}
	if overlay.MaxGenerations != 0 {
		c.MaxGenerations = overlay.MaxGenerations
	}
	if overlay.Cache.Entries != 0 {
		c.Cache.Entries = overlay.Cache.Entries
	}
	if overlay.Cache.MaxImageSize != "" {
		c.Cache.MaxImageSize = overlay.Cache.MaxImageSize
	}
}

func (c *Config) loadDefaults() {
	if c.MaxWidth == 0 {
		c.MaxWidth = 1024
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = 1024
	}
	if c.MaxGenerations == 0 {
		c.MaxGenerations = 1000
	}
	if c.Cache.Entries == 0 {
		c.Cache.Entries = 128
	}
	if c.Cache.MaxImageSize == "" {
		c.Cache.MaxImageSize = "2MB"
	}
}

func (c *Config) loadEnv(env *Env) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{env.MaxWidth, &c.MaxWidth},
		{env.MaxHeight, &c.MaxHeight},
		{env.MaxGenerations, &c.MaxGenerations},
		{env.CacheEntries, &c.Cache.Entries},
	}
	for _, e := range ints {
		if e.name == "" {
			continue
		}
		if v := os.Getenv(e.name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", e.name, err)
			}
			*e.dst = n
		}
	}

	if env.MaxImageSize != "" {
		if v := os.Getenv(env.MaxImageSize); v != "" {
			c.Cache.MaxImageSize = v
		}
	}
	return nil
}

func (c *Config) validate() error {
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("max_width and max_height must be positive")
	}
	if c.MaxGenerations < 0 {
		return fmt.Errorf("max_generations must not be negative")
	}
	size, err := units.FromHumanSize(c.Cache.MaxImageSize)
	if err != nil {
		return fmt.Errorf("invalid cache.max_image_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("cache.max_image_size must be positive")
	}
	c.Cache.maxImageSizeVal = size

	return nil
}
