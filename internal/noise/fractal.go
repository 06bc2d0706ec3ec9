package noise

import (
	"fmt"
	"math"
)

// Params shapes fractal noise. Each octave multiplies frequency by
// Lacunarity and amplitude by Persistence. Amplitude scales the normalized
// sum as a contrast control; the result is clamped to [-1, 1].
type Params struct {
	Octaves     int     `json:"octaves" toml:"octaves"`
	Frequency   float64 `json:"frequency" toml:"frequency"`
	Amplitude   float64 `json:"amplitude" toml:"amplitude"`
	Persistence float64 `json:"persistence" toml:"persistence"`
	Lacunarity  float64 `json:"lacunarity" toml:"lacunarity"`
}

// MaxOctaves bounds the per-sample cost.
const MaxOctaves = 12

func DefaultParams() Params {
	return Params{
		Octaves:     4,
		Frequency:   1,
		Amplitude:   1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

func (p Params) Validate() error {
	switch {
	case p.Octaves < 1 || p.Octaves > MaxOctaves:
		return fmt.Errorf("%w: octaves must be between 1 and %d", ErrInvalidParams, MaxOctaves)
	case !finite(p.Frequency) || !(p.Frequency > 0):
		return fmt.Errorf("%w: frequency must be positive", ErrInvalidParams)
	case !finite(p.Amplitude) || !(p.Amplitude > 0):
		return fmt.Errorf("%w: amplitude must be positive", ErrInvalidParams)
	case !(p.Persistence > 0 && p.Persistence <= 1):
		return fmt.Errorf("%w: persistence must be in (0, 1]", ErrInvalidParams)
	case !finite(p.Lacunarity) || !(p.Lacunarity >= 1):
		return fmt.Errorf("%w: lacunarity must be at least 1", ErrInvalidParams)
	}
	return nil
}

// Fractal sums p.Octaves layers of Noise3D and normalizes the result into
// [-1, 1].
func (n *Perlin) Fractal(x, y, z float64, p Params) float64 {
	var sum, norm float64
	freq, amp := p.Frequency, 1.0

	for range p.Octaves {
		sum += amp * n.Noise3D(x*freq, y*freq, z*freq)
		norm += amp
		amp *= p.Persistence
		freq *= p.Lacunarity
	}

	if norm == 0 {
		return 0
	}
	return clamp(p.Amplitude*sum/norm, -1, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
