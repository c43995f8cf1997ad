package weave

import (
	"math/rand/v2"
)

// Per-cell edge bits. A cell's mask is the sum of the directions whose shared
// edge is on.
const (
	bitNorth uint8 = 1
	bitEast  uint8 = 2
	bitSouth uint8 = 4
	bitWest  uint8 = 8
)

// EdgeSet holds one boolean per shared adjacency. V has (rows-1)×cols
// entries: V[r][c] is the edge between (r,c) and (r+1,c). H has rows×(cols-1)
// entries: H[r][c] is the edge between (r,c) and (r,c+1). An edge touching a
// void endpoint is always false.
type EdgeSet struct {
	V *BoolGrid
	H *BoolGrid
}

// resolveEdges converts the scalar fields and void mask into shared edge
// booleans. Thresholds are drawn per generation and biased by style: simple
// uses higher cutoffs for cleaner, sparser line work.
func resolveEdges(rng *rand.Rand, style Style, f *Fields, voids *BoolGrid) *EdgeSet {
	rows, cols := voids.Rows, voids.Cols

	var vThresh, hThresh float64
	switch style {
	case StyleSimple:
		vThresh = 0.58 + 0.10*rng.Float64()
		hThresh = 0.56 + 0.10*rng.Float64()
	case StyleDense:
		vThresh = 0.46 + 0.10*rng.Float64()
		hThresh = 0.46 + 0.10*rng.Float64()
	}

	es := &EdgeSet{
		V: NewBoolGrid(rows-1, cols),
		H: NewBoolGrid(rows, cols-1),
	}

	for r := 0; r < rows-1; r++ {
		for c := 0; c < cols; c++ {
			if voids.At(r, c) || voids.At(r+1, c) {
				continue
			}
			blendAvg := (f.Blend.At(r, c) + f.Blend.At(r+1, c)) / 2
			glitchAvg := (f.Glitch.At(r, c) + f.Glitch.At(r+1, c)) / 2
			p := 0.6*f.VerticalGate.At(r, c) + 0.4*f.VerticalGate.At(r+1, c) +
				(blendAvg-0.5)*0.18 + glitchAvg*0.12
			p = smoothstep(0.15, 0.85, p)
			es.V.Set(r, c, p > vThresh)
		}
	}

	// Horizontal edges use the symmetric formula with the blend correction
	// sign inverted.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			if voids.At(r, c) || voids.At(r, c+1) {
				continue
			}
			blendAvg := (f.Blend.At(r, c) + f.Blend.At(r, c+1)) / 2
			glitchAvg := (f.Glitch.At(r, c) + f.Glitch.At(r, c+1)) / 2
			p := 0.6*f.HorizontalGate.At(r, c) + 0.4*f.HorizontalGate.At(r, c+1) -
				(blendAvg-0.5)*0.18 + glitchAvg*0.12
			p = smoothstep(0.15, 0.85, p)
			es.H.Set(r, c, p > hThresh)
		}
	}

	addRungs(rng, style, f, voids, es)

	return es
}

// rungGateMin is the vertical-gate level both endpoints must exceed before a
// rung may bridge them. Rungs connect live vertical structure, not arbitrary
// cells.
const rungGateMin = 0.55

// addRungs inserts extra horizontal edges in a loose periodic pattern,
// independent of the standard horizontal probability test. The phase of the
// period is re-derived per cell from floor(blend*10), which jitters the
// pattern non-monotonically across rows. That jitter is deliberate texture;
// do not regularize it.
func addRungs(rng *rand.Rand, style Style, f *Fields, voids *BoolGrid, es *EdgeSet) {
	var period int
	var cutoff float64
	switch style {
	case StyleSimple:
		period = 5 + rng.IntN(5) // 5-9 rows
		cutoff = 0.65
	case StyleDense:
		period = 3 + rng.IntN(4) // 3-6 rows
		cutoff = 0.50
	}

	rows, cols := voids.Rows, voids.Cols
	for r := 0; r < rows; r++ {
		for c := 0; c < cols-1; c++ {
			if voids.At(r, c) || voids.At(r, c+1) {
				continue
			}
			phase := int(f.Blend.At(r, c) * 10)
			if (r+phase)%period != 0 {
				continue
			}
			if f.Rung.At(r, c) <= cutoff {
				continue
			}
			if f.VerticalGate.At(r, c) <= rungGateMin || f.VerticalGate.At(r, c+1) <= rungGateMin {
				continue
			}
			es.H.Set(r, c, true)
		}
	}
}

// distributeEdges copies shared edge state into per-cell 4-direction masks.
// Grid-border directions are false, and void cells get an all-false record
// regardless of computed shared edges.
func distributeEdges(es *EdgeSet, voids *BoolGrid) *MaskGrid {
	rows, cols := voids.Rows, voids.Cols
	masks := NewMaskGrid(rows, cols)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if voids.At(r, c) {
				continue
			}
			var m uint8
			if r > 0 && es.V.At(r-1, c) {
				m |= bitNorth
			}
			if r < rows-1 && es.V.At(r, c) {
				m |= bitSouth
			}
			if c > 0 && es.H.At(r, c-1) {
				m |= bitWest
			}
			if c < cols-1 && es.H.At(r, c) {
				m |= bitEast
			}
			masks.Set(r, c, m)
		}
	}

	return masks
}
