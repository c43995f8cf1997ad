package weave

import (
	"math"
	"math/rand/v2"
	"sort"
)

// minBandRows is the minimum height of a band in rows.
const minBandRows = 6

// Band is a contiguous horizontal row range [RowStart, RowEnd) carrying the
// randomized parameters that vary texture top-to-bottom. Bands partition the
// full row range exactly, with no gaps or overlaps.
type Band struct {
	RowStart, RowEnd int

	// SecondaryWeight biases the blend field toward the secondary tone.
	SecondaryWeight float64 // [0, 1]

	// Drift skews gate fields, tilting structure left/right per band.
	Drift float64 // [-1.5, 1.5]

	// GlitchBias raises the glitch field baseline. Drawn from a mixture so
	// occasional bands run "hot" with glitch activity.
	GlitchBias float64 // [0, 1]
}

// partitionBands splits [0, rows) into 3-5 bands with jittered cut points.
// Cuts start at ideal even spacing, are perturbed by up to ±6% of the row
// count, then clamped so every band keeps at least minBandRows rows.
func partitionBands(rng *rand.Rand, rows int) []Band {
	count := 3 + rng.IntN(3)
	if maxCount := rows / minBandRows; count > maxCount {
		count = maxCount
	}
	if count < 1 {
		count = 1
	}

	cuts := make([]int, count+1)
	cuts[0], cuts[count] = 0, rows
	jitter := 0.06 * float64(rows)
	for i := 1; i < count; i++ {
		ideal := float64(i) * float64(rows) / float64(count)
		cuts[i] = int(math.Round(ideal + (rng.Float64()*2-1)*jitter))
	}
	sort.Ints(cuts[1:count])

	// Enforce monotone cuts with minimum band height. The upper clamp leaves
	// room for every band still to come.
	for i := 1; i < count; i++ {
		lo := cuts[i-1] + minBandRows
		hi := rows - (count-i)*minBandRows
		if cuts[i] < lo {
			cuts[i] = lo
		}
		if cuts[i] > hi {
			cuts[i] = hi
		}
	}

	bands := make([]Band, count)
	for i := range bands {
		bands[i] = Band{
			RowStart:        cuts[i],
			RowEnd:          cuts[i+1],
			SecondaryWeight: rng.Float64(),
			Drift:           -1.5 + 3*rng.Float64(),
			GlitchBias:      drawGlitchBias(rng),
		}
	}
	return bands
}

// drawGlitchBias draws from the hot/cold mixture: 65% of bands land in the
// high range [0.35, 0.8], the rest in the low range [0.05, 0.25].
func drawGlitchBias(rng *rand.Rand) float64 {
	if rng.Float64() < 0.65 {
		return 0.35 + 0.45*rng.Float64()
	}
	return 0.05 + 0.2*rng.Float64()
}

// bandForRow returns the band containing row. Rows outside the partition
// fall back to the last band rather than failing.
func bandForRow(bands []Band, row int) Band {
	for _, b := range bands {
		if row >= b.RowStart && row < b.RowEnd {
			return b
		}
	}
	return bands[len(bands)-1]
}
