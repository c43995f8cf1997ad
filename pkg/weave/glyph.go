package weave

import (
	"math"
	"math/rand/v2"
)

// dustChar is the rare speckle dropped on otherwise-blank simple-style cells.
const dustChar = '·'

// Texture ramps for dense-style blank cells, darkest last. One of the two is
// chosen per generation.
var (
	textureRamp7 = []rune(" ·∙:∴▒▓")
	textureRamp9 = []rune(" ·∙:∴▪▒▓█")
)

// glyphForMask maps a 4-bit edge mask to its box-drawing character. The match
// is exhaustive over all 16 values; anything outside that range renders blank.
func glyphForMask(mask uint8) rune {
	switch mask {
	case 0:
		return ' '
	case bitNorth:
		return '╵'
	case bitEast:
		return '╶'
	case bitNorth | bitEast:
		return '╰'
	case bitSouth:
		return '╷'
	case bitNorth | bitSouth:
		return '│'
	case bitEast | bitSouth:
		return '╭'
	case bitNorth | bitEast | bitSouth:
		return '├'
	case bitWest:
		return '╴'
	case bitNorth | bitWest:
		return '╯'
	case bitEast | bitWest:
		return '─'
	case bitNorth | bitEast | bitWest:
		return '┴'
	case bitSouth | bitWest:
		return '╮'
	case bitNorth | bitSouth | bitWest:
		return '┤'
	case bitEast | bitSouth | bitWest:
		return '┬'
	case bitNorth | bitEast | bitSouth | bitWest:
		return '┼'
	default:
		return ' '
	}
}

// isStub reports whether the mask is a single dangling direction.
func isStub(mask uint8) bool {
	return mask == bitNorth || mask == bitEast || mask == bitSouth || mask == bitWest
}

// buildGlyphs maps every cell's edge mask to a display character. Structural
// glyphs come straight from the lookup table; the styles differ in how they
// treat blanks and straight runs. Per-generation constants come from rng;
// per-cell cosmetic choices come from the dedicated cosmetic stream, consumed
// in row-major order so output stays reproducible.
func buildGlyphs(rng, cosmetic *rand.Rand, style Style, f *Fields, voids *BoolGrid, masks *MaskGrid) *RuneGrid {
	switch style {
	case StyleSimple:
		dust := 0.001 + 0.009*rng.Float64()
		return buildSimpleGlyphs(cosmetic, dust, voids, masks)
	default:
		gain := 1.0 + 0.35*rng.Float64()
		ramp := textureRamp7
		if rng.Float64() < 0.5 {
			ramp = textureRamp9
		}
		return buildDenseGlyphs(cosmetic, gain, ramp, f, voids, masks)
	}
}

// buildSimpleGlyphs renders the sparse style: dangling stubs are suppressed
// to blank, and blank cells get a very low dust probability (doubled on void
// cells, the only mark a void ever shows).
func buildSimpleGlyphs(cosmetic *rand.Rand, dust float64, voids *BoolGrid, masks *MaskGrid) *RuneGrid {
	out := NewRuneGrid(voids.Rows, voids.Cols)
	for r := 0; r < voids.Rows; r++ {
		for c := 0; c < voids.Cols; c++ {
			if voids.At(r, c) {
				if cosmetic.Float64() < dust*2 {
					out.Set(r, c, dustChar)
				}
				continue
			}
			m := masks.At(r, c)
			switch {
			case m == 0:
				if cosmetic.Float64() < dust {
					out.Set(r, c, dustChar)
				}
			case isStub(m):
				// No loose ends in simple style.
			default:
				out.Set(r, c, glyphForMask(m))
			}
		}
	}
	return out
}

// buildDenseGlyphs renders the textured style. Every cell gets a tone from
// the blend and glitch fields; blanks become ramp texture, straight runs may
// be re-rendered as tone-banded block variants, and voids stay blank.
func buildDenseGlyphs(cosmetic *rand.Rand, gain float64, ramp []rune, f *Fields, voids *BoolGrid, masks *MaskGrid) *RuneGrid {
	out := NewRuneGrid(voids.Rows, voids.Cols)
	for r := 0; r < voids.Rows; r++ {
		for c := 0; c < voids.Cols; c++ {
			if voids.At(r, c) {
				continue
			}
			tone := clamp01((f.Blend.At(r, c)*0.75 + (1-f.Glitch.At(r, c))*0.25) * gain)

			switch m := masks.At(r, c); m {
			case 0:
				idx := int(math.Round(tone*float64(len(ramp)-1))) + cosmetic.IntN(3) - 1
				if idx < 0 {
					idx = 0
				}
				if idx > len(ramp)-1 {
					idx = len(ramp) - 1
				}
				out.Set(r, c, ramp[idx])
			case bitNorth | bitSouth:
				out.Set(r, c, denseVertical(cosmetic, tone))
			case bitEast | bitWest:
				out.Set(r, c, denseHorizontal(cosmetic, tone))
			default:
				out.Set(r, c, glyphForMask(m))
			}
		}
	}
	return out
}

// denseVertical keeps 75% of vertical runs as plain lines and re-renders the
// rest as one of five tone bands. The fat solid column in the top band is
// gated by an extra coin flip.
func denseVertical(cosmetic *rand.Rand, tone float64) rune {
	if cosmetic.Float64() < 0.75 {
		return '│'
	}
	switch {
	case tone < 0.2:
		return '╎'
	case tone < 0.4:
		return '┆'
	case tone < 0.6:
		return '┃'
	case tone < 0.8:
		return '║'
	default:
		if cosmetic.Float64() < 0.5 {
			return '█'
		}
		return '┃'
	}
}

// denseHorizontal keeps 60% of horizontal runs plain, the rest dashed with
// the weight picked by tone.
func denseHorizontal(cosmetic *rand.Rand, tone float64) rune {
	if cosmetic.Float64() < 0.60 {
		return '─'
	}
	if tone < 0.5 {
		return '┄'
	}
	return '╍'
}
