// Package noise generates seeded Perlin noise fields.
//
// Perlin implements Ken Perlin's improved noise over a permutation table
// derived from a seed, so the same seed always yields the same field.
// Fractal layers octaves of it, and Generate samples a width×height grid in
// parallel for rendering.
package noise

import (
	"math"
	"math/rand/v2"
)

// Perlin is a seeded improved-noise generator. It is safe for concurrent use.
type Perlin struct {
	seed int64
	perm [512]int
}

// New builds the permutation table for seed.
func New(seed int64) *Perlin {
	p := &Perlin{seed: seed}

	var base [256]int
	for i := range base {
		base[i] = i
	}

	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	rng.Shuffle(len(base), func(i, j int) {
		base[i], base[j] = base[j], base[i]
	})

	for i := range p.perm {
		p.perm[i] = base[i&255]
	}
	return p
}

func (p *Perlin) Seed() int64 {
	return p.seed
}

// Noise2D samples the z=0 plane.
func (p *Perlin) Noise2D(x, y float64) float64 {
	return p.Noise3D(x, y, 0)
}

// Noise3D returns noise in [-1, 1]. Values at integer lattice points are 0.
func (p *Perlin) Noise3D(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)

	X := int(fx) & 255
	Y := int(fy) & 255
	Z := int(fz) & 255

	x -= fx
	y -= fy
	z -= fz

	u, v, w := fade(x), fade(y), fade(z)

	perm := &p.perm
	A := perm[X] + Y
	AA := perm[A] + Z
	AB := perm[A+1] + Z
	B := perm[X+1] + Y
	BA := perm[B] + Z
	BB := perm[B+1] + Z

	n := lerp(w,
		lerp(v,
			lerp(u, grad(perm[AA], x, y, z), grad(perm[BA], x-1, y, z)),
			lerp(u, grad(perm[AB], x, y-1, z), grad(perm[BB], x-1, y-1, z)),
		),
		lerp(v,
			lerp(u, grad(perm[AA+1], x, y, z-1), grad(perm[BA+1], x-1, y, z-1)),
			lerp(u, grad(perm[AB+1], x, y-1, z-1), grad(perm[BB+1], x-1, y-1, z-1)),
		),
	)
	return clamp(n, -1, 1)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad picks one of twelve edge gradients from the low four hash bits and
// returns its dot product with (x, y, z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15

	u := y
	if h < 8 {
		u = x
	}

	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}

	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
