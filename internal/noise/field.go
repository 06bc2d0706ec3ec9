package noise

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// FieldOptions describes the grid to sample. Scale is the number of noise
// units spanned by the grid's width; Z selects the slice through the
// third dimension, which animates the field as it advances.
type FieldOptions struct {
	Width  int
	Height int
	Scale  float64
	Z      float64
	Params Params
}

// Field is a row-major grid of noise values in [-1, 1].
type Field struct {
	Width  int
	Height int
	Values []float64
}

// At returns the value at column x, row y.
func (f *Field) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Generate samples the grid described by opts. Rows are split into bands
// computed concurrently; the first error or context cancellation stops the
// remaining bands.
func Generate(ctx context.Context, n *Perlin, opts FieldOptions) (*Field, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidField, opts.Width, opts.Height)
	}
	if !finite(opts.Scale) || !(opts.Scale > 0) {
		return nil, fmt.Errorf("%w: scale must be positive", ErrInvalidField)
	}
	if !finite(opts.Z) {
		return nil, fmt.Errorf("%w: z must be finite", ErrInvalidField)
	}
	if err := opts.Params.Validate(); err != nil {
		return nil, err
	}

	field := &Field{
		Width:  opts.Width,
		Height: opts.Height,
		Values: make([]float64, opts.Width*opts.Height),
	}

	step := opts.Scale / float64(opts.Width)
	workers := min(runtime.GOMAXPROCS(0), opts.Height)
	band := (opts.Height + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < opts.Height; start += band {
		end := min(start+band, opts.Height)
		g.Go(func() error {
			for y := start; y < end; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				row := field.Values[y*opts.Width : (y+1)*opts.Width]
				ny := float64(y) * step
				for x := range row {
					row[x] = n.Fractal(float64(x)*step, ny, opts.Z, opts.Params)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return field, nil
}
