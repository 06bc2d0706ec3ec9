package render

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
)

// NoiseRequestFromQuery parses a noise request from URL query values.
// Supported parameters: seed, width, height, scale, z, octaves, frequency,
// amplitude, persistence, lacunarity, palette. Missing values stay zero and
// are filled in by Normalize.
func NoiseRequestFromQuery(values url.Values) (NoiseRequest, error) {
	var (
		req NoiseRequest
		p   = queryParser{values: values}
	)

	p.int64("seed", &req.Seed)
	p.int("width", &req.Width)
	p.int("height", &req.Height)
	p.float("scale", &req.Scale)
	p.float("z", &req.Z)
	p.int("octaves", &req.Params.Octaves)
	p.float("frequency", &req.Params.Frequency)
	p.float("amplitude", &req.Params.Amplitude)
	p.float("persistence", &req.Params.Persistence)
	p.float("lacunarity", &req.Params.Lacunarity)
	req.Palette = values.Get("palette")

	return req, p.err
}

// LifeRequestFromQuery parses a life request from URL query values.
// Supported parameters: seed, width, height, density, generations, cell.
// A missing density defaults to DefaultLifeDensity.
func LifeRequestFromQuery(values url.Values) (LifeRequest, error) {
	var (
		req = LifeRequest{Density: DefaultLifeDensity}
		p   = queryParser{values: values}
	)

	p.int64("seed", &req.Seed)
	p.int("width", &req.Width)
	p.int("height", &req.Height)
	p.float("density", &req.Density)
	p.int("generations", &req.Generations)
	p.int("cell", &req.CellSize)

	return req, p.err
}

// queryParser keeps the first parse failure so callers check once.
type queryParser struct {
	values url.Values
	err    error
}

func (p *queryParser) raw(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v := p.values.Get(name)
	return v, v != ""
}

func (p *queryParser) fail(name, v string) {
	p.err = fmt.Errorf("%w: %s=%q is not a number", ErrInvalidRequest, name, v)
}

func (p *queryParser) int(name string, dst *int) {
	if v, ok := p.raw(name); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			p.fail(name, v)
			return
		}
		*dst = n
	}
}

func (p *queryParser) int64(name string, dst *int64) {
	if v, ok := p.raw(name); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			p.fail(name, v)
			return
		}
		*dst = n
	}
}

func (p *queryParser) float(name string, dst *float64) {
	if v, ok := p.raw(name); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			p.err = fmt.Errorf("%w: %s=%q is not a finite number", ErrInvalidRequest, name, v)
			return
		}
		*dst = f
	}
}
