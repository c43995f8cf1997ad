package weave

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/circuitweave/pkg/noise"
)

// Noise frequencies for island warping and edge softening. The warp is low
// frequency so hole outlines bow organically; softening is high frequency so
// the fringe breaks up cell by cell.
const (
	voidWarpFreq   = 0.13
	voidSoftenFreq = 0.9
)

// island is one circular region of negative space.
type island struct {
	cx, cy float64
	radius float64
}

// buildVoidMask marks the cells excluded from structural content. Style
// picks the island count and size range: simple carves fewer but larger
// holes; dense may carve none at all. The decision is a pure function of
// (seed, style, position) with no dependency on later stages.
func buildVoidMask(rng *rand.Rand, ns *noise.Simplex, style Style, rows, cols int) *BoolGrid {
	mask := NewBoolGrid(rows, cols)

	var count int
	var baseLo, baseHi, warpAmp, soften float64
	switch style {
	case StyleSimple:
		count = 2 + rng.IntN(4)
		baseLo, baseHi = 0.10, 0.22
		warpAmp = 0.45
		soften = 0.92
	case StyleDense:
		count = rng.IntN(3)
		baseLo, baseHi = 0.06, 0.14
		warpAmp = 0.25
		soften = 0.96
	}

	minDim := float64(min(rows, cols))
	islands := make([]island, count)
	for i := range islands {
		base := minDim * (baseLo + (baseHi-baseLo)*rng.Float64())
		islands[i] = island{
			// Centers stay within the inner 70% of the grid.
			cx:     float64(cols) * (0.15 + 0.7*rng.Float64()),
			cy:     float64(rows) * (0.15 + 0.7*rng.Float64()),
			radius: base * (0.8 + 0.45*rng.Float64()),
		}
	}

	warpOffX := rng.Float64() * 512
	warpOffY := rng.Float64() * 512
	softOffX := rng.Float64() * 512
	softOffY := rng.Float64() * 512

	if count == 0 {
		return mask
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			w := (ns.At(float64(c)*voidWarpFreq+warpOffX, float64(r)*voidWarpFreq+warpOffY) - 0.5) * 2 * warpAmp
			inside := false
			for _, isl := range islands {
				dx := float64(c) - isl.cx
				dy := float64(r) - isl.cy
				if math.Hypot(dx, dy) <= isl.radius*(1+w) {
					inside = true
					break
				}
			}
			if !inside {
				continue
			}
			// An independent softening sample above the style threshold
			// re-solidifies the cell, leaving a speckled organic fringe
			// instead of a clean circle.
			s := ns.At(float64(c)*voidSoftenFreq+softOffX, float64(r)*voidSoftenFreq+softOffY)
			if s <= soften {
				mask.Set(r, c, true)
			}
		}
	}

	return mask
}
