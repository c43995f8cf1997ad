package weave

import (
	"math/rand/v2"

	"github.com/matzehuels/circuitweave/pkg/noise"
)

// Fields holds the five scalar grids driving edge resolution. All values are
// in [0, 1]. A Fields value is immutable once built and replaced wholesale on
// regeneration.
type Fields struct {
	Blend          *FloatGrid
	Glitch         *FloatGrid
	VerticalGate   *FloatGrid
	HorizontalGate *FloatGrid
	Rung           *FloatGrid
}

// sampler reads the shared noise source at a per-field offset and frequency.
// Offsets and frequencies are drawn once per generation, which is what keeps
// a single composition coherent while differing from the next.
type sampler struct {
	offX, offY, freq float64
}

// newSampler draws a sampler with a frequency in [freqLo, freqHi).
func newSampler(rng *rand.Rand, freqLo, freqHi float64) sampler {
	return sampler{
		offX: rng.Float64() * 512,
		offY: rng.Float64() * 512,
		freq: freqLo + rng.Float64()*(freqHi-freqLo),
	}
}

// at samples the field noise at a grid cell.
func (s sampler) at(ns *noise.Simplex, r, c int) float64 {
	return ns.At(float64(c)*s.freq+s.offX, float64(r)*s.freq+s.offY)
}

// gateOctaveRatio is the frequency multiplier for the second gate octave.
const gateOctaveRatio = 2.3

// buildFields computes all five scalar fields in dependency order: blend and
// glitch first, then the gates (which read blend and glitch), then rung
// (which reads the vertical gate and glitch).
func buildFields(rng *rand.Rand, ns *noise.Simplex, bands []Band, rows, cols int) *Fields {
	blendS := newSampler(rng, 0.055, 0.085)
	glitchS := newSampler(rng, 0.09, 0.14)
	vGate1 := newSampler(rng, 0.06, 0.10)
	vGate2 := newSampler(rng, 0.06, 0.10)
	vGate2.freq = vGate1.freq * gateOctaveRatio
	hGate1 := newSampler(rng, 0.06, 0.10)
	hGate2 := newSampler(rng, 0.06, 0.10)
	hGate2.freq = hGate1.freq * gateOctaveRatio
	rungS := newSampler(rng, 0.08, 0.12)
	glitchLo := 0.52 + rng.Float64()*0.14

	f := &Fields{
		Blend:          NewFloatGrid(rows, cols),
		Glitch:         NewFloatGrid(rows, cols),
		VerticalGate:   NewFloatGrid(rows, cols),
		HorizontalGate: NewFloatGrid(rows, cols),
		Rung:           NewFloatGrid(rows, cols),
	}

	minDim := min(rows, cols)
	falloffRange := 0.12 * float64(minDim)

	for r := 0; r < rows; r++ {
		band := bandForRow(bands, r)
		for c := 0; c < cols; c++ {
			colFrac := 0.5
			if cols > 1 {
				colFrac = float64(c) / float64(cols-1)
			}

			v := blendS.at(ns, r, c)*0.35 + band.SecondaryWeight*0.75 +
				(colFrac-0.5)*0.18 + band.Drift*0.12
			f.Blend.Set(r, c, smoothstep(0.08, 0.92, v))

			g := glitchS.at(ns, r, c)*0.9 + band.GlitchBias*0.25 - 0.1
			g = smoothstep(glitchLo, 0.95, g)
			// Suppress glitch near the border: falloff ramps from 0 at the
			// edge to 1 within 12% of the minor grid dimension.
			d := min(r, c, rows-1-r, cols-1-c)
			g *= clamp01(float64(d) / falloffRange)
			f.Glitch.Set(r, c, g)
		}
	}

	for r := 0; r < rows; r++ {
		band := bandForRow(bands, r)
		for c := 0; c < cols; c++ {
			blend := f.Blend.At(r, c)
			glitch := f.Glitch.At(r, c)

			vn := 0.65*vGate1.at(ns, r, c) + 0.35*vGate2.at(ns, r, c)
			vv := vn + band.Drift*0.10 - blend*0.20 - glitch*0.25
			f.VerticalGate.Set(r, c, smoothstep(0.15, 0.85, vv))

			hn := 0.65*hGate1.at(ns, r, c) + 0.35*hGate2.at(ns, r, c)
			hv := hn - band.Drift*0.10 + blend*0.20 - glitch*0.25
			f.HorizontalGate.Set(r, c, smoothstep(0.15, 0.85, hv))
		}
	}

	for r := 0; r < rows; r++ {
		band := bandForRow(bands, r)
		for c := 0; c < cols; c++ {
			v := rungS.at(ns, r, c)*0.85 + band.SecondaryWeight*0.25
			v *= 0.65 + 0.7*f.VerticalGate.At(r, c)
			v += f.Glitch.At(r, c) * 0.15
			f.Rung.Set(r, c, smoothstep(0.2, 0.9, v))
		}
	}

	return f
}
