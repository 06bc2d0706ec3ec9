package config

import (
	"fmt"
	"os"
	"strings"
)

// EnvBaseURL sets the path prefix the application pages are served under.
const EnvBaseURL = "BASE_URL"

// AppConfig controls where the page module is mounted.
type AppConfig struct {
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults, environment overrides and validation.
// A trailing slash on BasePath is dropped, except for the root.
func (c *AppConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/"
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		c.BasePath = v
	}

	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("invalid base_path %q: must start with /", c.BasePath)
	}
	if strings.Contains(c.BasePath, "//") {
		return fmt.Errorf("invalid base_path %q: empty segment", c.BasePath)
	}
	if c.BasePath != "/" {
		c.BasePath = strings.TrimRight(c.BasePath, "/")
	}
	return nil
}

// Merge copies non-zero overlay values onto c.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}
