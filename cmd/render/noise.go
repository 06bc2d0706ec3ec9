package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/canvas-lab/internal/noise"
	"github.com/JaimeStill/canvas-lab/internal/render"
)

func newNoiseCmd(system func() (render.System, error)) *cobra.Command {
	var (
		req render.NoiseRequest
		out string
	)
	def := noise.DefaultParams()

	cmd := &cobra.Command{
		Use:   "noise",
		Short: "Render a Perlin noise field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := system()
			if err != nil {
				return err
			}

			data, err := sys.Noise(cmd.Context(), req)
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
	f.Int64Var(&req.Seed, "seed", 0, "permutation seed")
	f.IntVar(&req.Width, "width", render.DefaultNoiseSize, "image width in pixels")
	f.IntVar(&req.Height, "height", render.DefaultNoiseSize, "image height in pixels")
	f.Float64Var(&req.Scale, "scale", render.DefaultNoiseScale, "noise units spanned by the image width")
	f.Float64Var(&req.Z, "z", 0, "time slice")
	f.IntVar(&req.Params.Octaves, "octaves", def.Octaves, "fractal octaves")
	f.Float64Var(&req.Params.Frequency, "frequency", def.Frequency, "base frequency")
	f.Float64Var(&req.Params.Amplitude, "amplitude", def.Amplitude, "output amplitude")
	f.Float64Var(&req.Params.Persistence, "persistence", def.Persistence, "amplitude falloff per octave")
	f.Float64Var(&req.Params.Lacunarity, "lacunarity", def.Lacunarity, "frequency growth per octave")
	f.StringVar(&req.Palette, "palette", noise.DefaultPalette, fmt.Sprintf("color palette %v", noise.Palettes()))
	f.StringVarP(&out, "out", "o", "noise.png", `output file, "-" for stdout`)

	return cmd
}
