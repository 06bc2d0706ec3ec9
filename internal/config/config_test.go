package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/canvas-lab/internal/config"
	"github.com/JaimeStill/canvas-lab/pkg/logging"
)

const baseConfig = `shutdown_timeout = "20s"

[server]
port = 8080

[logging]
level = "info"
format = "text"

[app]
base_path = "/"

[render]
max_width = 512

[render.cache]
entries = 64
max_image_size = "1MB"
`

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		config.EnvServiceEnv,
		config.EnvServiceShutdownTimeout,
		config.EnvServiceVersion,
		config.EnvBaseURL,
		"SERVER_PORT",
		"LOGGING_LEVEL",
		"RENDER_MAX_WIDTH",
	} {
		t.Setenv(key, "")
	}

	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_BaseConfig(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 20*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 20s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.App.BasePath != "/" {
		t.Errorf("App.BasePath = %q, want /", cfg.App.BasePath)
	}
	if cfg.Render.MaxWidth != 512 {
		t.Errorf("Render.MaxWidth = %d, want 512", cfg.Render.MaxWidth)
	}
	if cfg.Render.MaxHeight != 1024 {
		t.Errorf("Render.MaxHeight = %d, want default 1024", cfg.Render.MaxHeight)
	}
	if cfg.Render.Cache.MaxImageSizeBytes() != 1_000_000 {
		t.Errorf("MaxImageSizeBytes() = %d, want 1000000", cfg.Render.Cache.MaxImageSizeBytes())
	}
	if cfg.Version != "dev" {
		t.Errorf("Version = %q, want dev", cfg.Version)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	isolate(t)

	if _, err := config.Load(); err == nil {
		t.Error("Load() should fail without config.toml")
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	writeConfig(t, dir, "config.test.toml", `shutdown_timeout = "60s"

[server]
port = 9090

[app]
base_path = "/canvas"
`)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.App.BasePath != "/canvas" {
		t.Errorf("App.BasePath = %q, want /canvas", cfg.App.BasePath)
	}
	if cfg.Render.MaxWidth != 512 {
		t.Errorf("Render.MaxWidth = %d, want 512 from base", cfg.Render.MaxWidth)
	}
}

func TestLoad_MissingOverlayIgnored(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Setenv(config.EnvServiceEnv, "nowhere")

	if _, err := config.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, config.BaseConfigFile, baseConfig)
	t.Setenv(config.EnvBaseURL, "/lab/")
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv("RENDER_MAX_WIDTH", "128")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.BasePath != "/lab" {
		t.Errorf("App.BasePath = %q, want /lab", cfg.App.BasePath)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Render.MaxWidth != 128 {
		t.Errorf("Render.MaxWidth = %d, want 128", cfg.Render.MaxWidth)
	}
}

func TestLoad_EnvNotNumeric(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "RENDER_MAX_WIDTH"} {
		t.Run(key, func(t *testing.T) {
			dir := isolate(t)
			writeConfig(t, dir, config.BaseConfigFile, baseConfig)
			t.Setenv(key, "eighty")

			if _, err := config.Load(); err == nil {
				t.Errorf("Load() should fail for %s=eighty", key)
			}
		})
	}
}

func TestConfig_FinalizeInvalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"server port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"logging level", config.Config{Logging: logging.Config{Level: "loud"}}},
		{"base path", config.Config{App: config.AppConfig{BasePath: "canvas"}}},
		{"base path segment", config.Config{App: config.AppConfig{BasePath: "/a//b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() should fail")
			}
		})
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{
		Host:            "localhost",
		Port:            8080,
		ReadTimeout:     "30s",
		WriteTimeout:    "30s",
		ShutdownTimeout: "30s",
	}

	base.Merge(&config.ServerConfig{
		Port:         9090,
		WriteTimeout: "60s",
	})

	if base.Host != "localhost" {
		t.Errorf("Host = %q, want %q (should not change)", base.Host, "localhost")
	}
	if base.Port != 9090 {
		t.Errorf("Port = %d, want %d (should merge)", base.Port, 9090)
	}
	if base.ReadTimeout != "30s" {
		t.Errorf("ReadTimeout = %q, want %q (should not change)", base.ReadTimeout, "30s")
	}
	if base.WriteTimeout != "60s" {
		t.Errorf("WriteTimeout = %q, want %q (should merge)", base.WriteTimeout, "60s")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		port     int
		expected string
	}{
		{"default", "0.0.0.0", 8080, "0.0.0.0:8080"},
		{"localhost", "localhost", 3000, "localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.ServerConfig{Host: tt.host, Port: tt.port}
			if addr := cfg.Addr(); addr != tt.expected {
				t.Errorf("Addr() = %q, want %q", addr, tt.expected)
			}
		})
	}
}

func TestServerConfig_DurationGetters(t *testing.T) {
	cfg := &config.ServerConfig{
		ReadTimeout:     "30s",
		WriteTimeout:    "60s",
		ShutdownTimeout: "90s",
	}

	tests := []struct {
		name     string
		got      time.Duration
		expected time.Duration
	}{
		{"read", cfg.ReadTimeoutDuration(), 30 * time.Second},
		{"write", cfg.WriteTimeoutDuration(), 60 * time.Second},
		{"shutdown", cfg.ShutdownTimeoutDuration(), 90 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}
}
