package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/canvas-lab/internal/render"
)

func newLifeCmd(system func() (render.System, error)) *cobra.Command {
	var (
		req render.LifeRequest
		out string
	)

	cmd := &cobra.Command{
		Use:   "life",
		Short: "Render a Game of Life board after a number of generations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := system()
			if err != nil {
				return err
			}

			data, err := sys.Life(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := writeImage(cmd.OutOrStdout(), out, data); err != nil {
				return err
			}
			if out != "-" {
				fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d bytes)\n", out, len(data))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.Int64Var(&req.Seed, "seed", 0, "board seed")
	f.IntVar(&req.Width, "width", render.DefaultLifeSize, "board width in cells")
	f.IntVar(&req.Height, "height", render.DefaultLifeSize, "board height in cells")
	f.Float64Var(&req.Density, "density", render.DefaultLifeDensity, "fraction of cells alive at generation 0")
	f.IntVar(&req.Generations, "generations", 0, "generations to advance")
	f.IntVar(&req.CellSize, "cell", render.DefaultLifeCellSize, "cell edge in pixels")
	f.StringVarP(&out, "out", "o", "life.png", `output file, "-" for stdout`)

	return cmd
}
