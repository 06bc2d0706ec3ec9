// Command render writes generated images to disk without running the
// server, and prints the page route table.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/canvas-lab/internal/render"
	"github.com/JaimeStill/canvas-lab/pkg/logging"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		maxSize  int
		logLevel string
	)

	root := &cobra.Command{
		Use:           "render",
		Short:         "Render Perlin noise and Game of Life images",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().IntVar(&maxSize, "max-size", 4096, "largest accepted image edge in pixels")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	system := func() (render.System, error) {
		cfg := &render.Config{
			MaxWidth:  maxSize,
			MaxHeight: maxSize,
			Cache:     render.CacheConfig{Entries: -1},
		}
		if err := cfg.Finalize(nil); err != nil {
			return nil, err
		}

		logCfg := &logging.Config{Level: logging.Level(logLevel)}
		if err := logCfg.Finalize(nil); err != nil {
			return nil, err
		}
		return render.New(cfg, logging.NewWithWriter(logCfg, os.Stderr))
	}

	root.AddCommand(
		newNoiseCmd(system),
		newLifeCmd(system),
		newRoutesCmd(),
	)
	return root
}

// writeImage writes data to path, or to out when path is "-".
func writeImage(out io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
