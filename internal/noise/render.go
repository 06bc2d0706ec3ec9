package noise

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/gogpu/gg"
)

// Palette maps a noise value in [-1, 1] to a color.
type Palette func(v float64) gg.RGBA

type stop struct {
	at  float64
	col gg.RGBA
}

var palettes = map[string]Palette{
	"grayscale": func(v float64) gg.RGBA {
		t := (v + 1) / 2
		return gg.RGB(t, t, t)
	},
	"terrain": bands([]stop{
		{-0.25, gg.Hex("#1d3f6e")},
		{0.00, gg.Hex("#3a7bbf")},
		{0.05, gg.Hex("#e3d59b")},
		{0.30, gg.Hex("#4f8a3c")},
		{0.55, gg.Hex("#6b6b5f")},
		{1.00, gg.Hex("#f4f4f4")},
	}),
	"heat": gradient([]stop{
		{-1, gg.RGB(0, 0, 0)},
		{-0.2, gg.RGB(0.8, 0.1, 0)},
		{0.4, gg.RGB(1, 0.8, 0)},
		{1, gg.RGB(1, 1, 1)},
	}),
}

// DefaultPalette is used when a request names none.
const DefaultPalette = "grayscale"

// Palettes lists the registered palette names.
func Palettes() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupPalette resolves a palette by name.
func LookupPalette(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	return p, nil
}

// Render rasterizes field to a PNG, one pixel per sample.
func Render(field *Field, palette Palette) ([]byte, error) {
	dc := gg.NewContext(field.Width, field.Height)
	defer dc.Close()

	for y := range field.Height {
		for x := range field.Width {
			dc.SetPixel(x, y, palette(field.At(x, y)))
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// bands picks the first stop whose threshold is at or above v.
func bands(stops []stop) Palette {
	return func(v float64) gg.RGBA {
		for _, s := range stops {
			if v <= s.at {
				return s.col
			}
		}
		return stops[len(stops)-1].col
	}
}

// gradient interpolates linearly between neighboring stops.
func gradient(stops []stop) Palette {
	return func(v float64) gg.RGBA {
		if v <= stops[0].at {
			return stops[0].col
		}
		for i := 1; i < len(stops); i++ {
			lo, hi := stops[i-1], stops[i]
			if v <= hi.at {
				t := (v - lo.at) / (hi.at - lo.at)
				return gg.RGB(
					lerp(t, lo.col.R, hi.col.R),
					lerp(t, lo.col.G, hi.col.G),
					lerp(t, lo.col.B, hi.col.B),
				)
			}
		}
		return stops[len(stops)-1].col
	}
}
