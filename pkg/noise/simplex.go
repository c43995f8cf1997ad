// Package noise provides seeded 2D gradient noise for procedural generation.
//
// The generator is deterministic: the same seed and coordinates always produce
// the same value, and output is continuous in both coordinates. Values are
// normalized to [0, 1] so callers can combine samples with plain weighted sums.
package noise

import (
	"math"
	"math/rand/v2"
)

// Simplex generates 2D simplex noise from a seed-shuffled permutation table.
type Simplex struct {
	perm [512]int
}

// New creates a noise generator for the given seed.
func New(seed int64) *Simplex {
	sn := &Simplex{}
	rng := rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9E3779B97F4A7C15))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	rng.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := 0; i < 512; i++ {
		sn.perm[i] = p[i&255]
	}
	return sn
}

// Skew factors for 2D simplex space.
const (
	f2 = 0.3660254037844386  // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// grad2 computes the dot product of a pseudo-random gradient vector and (x, y).
func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// At returns noise at (x, y) normalized to [0, 1].
func (sn *Simplex) At(x, y float64) float64 {
	v := (sn.raw(x, y) + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Fractal sums octaves of noise at increasing frequency and decreasing
// amplitude, normalized to [0, 1].
func (sn *Simplex) Fractal(x, y, freq float64, octaves int, lacunarity, persistence float64) float64 {
	var total, maxAmp float64
	amp := 1.0

	for i := 0; i < octaves; i++ {
		total += sn.raw(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= lacunarity
		amp *= persistence
	}

	v := (total/maxAmp + 1) / 2
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// raw returns unnormalized 2D simplex noise in [-1, 1].
func (sn *Simplex) raw(x, y float64) float64 {
	// Skew input space to determine the containing simplex cell.
	s := (x + y) * f2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := int(i) & 255
	jj := int(j) & 255

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * grad2(sn.perm[ii+sn.perm[jj]], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * grad2(sn.perm[ii+i1+sn.perm[jj+j1]], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * grad2(sn.perm[ii+1+sn.perm[jj+1]], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}
