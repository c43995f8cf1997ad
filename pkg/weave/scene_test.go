package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/circuitweave/pkg/errors"
)

func TestSceneDeterministic(t *testing.T) {
	for _, style := range []Style{StyleSimple, StyleDense} {
		a := buildTestScene(t, 42, style, 18, 18)
		b := buildTestScene(t, 42, style, 18, 18)

		require.Equal(t, a.Lines(), b.Lines(), "glyph grids must match for identical inputs")
		for r := 0; r < 18; r++ {
			for c := 0; c < 18; c++ {
				require.Equal(t, a.Voids.At(r, c), b.Voids.At(r, c), "void mask (%d,%d)", r, c)
				require.Equal(t, a.Cells.At(r, c), b.Cells.At(r, c), "cell mask (%d,%d)", r, c)
			}
		}
	}
}

func TestSceneSeedsDiffer(t *testing.T) {
	a := buildTestScene(t, 1, StyleDense, 30, 30)
	b := buildTestScene(t, 2, StyleDense, 30, 30)
	assert.NotEqual(t, a.Lines(), b.Lines(), "different seeds should produce different output")
}

func TestToggleModeIsolation(t *testing.T) {
	s := buildTestScene(t, 42, StyleSimple, 24, 24)

	seed, style, id := s.Seed, s.Style, s.ID
	lines := s.Lines()
	voids, cells, glyphs := s.Voids, s.Cells, s.glyphs

	s.ToggleMode()

	assert.Equal(t, ModeLight, s.Mode, "default dark mode should flip to light")
	assert.Equal(t, seed, s.Seed)
	assert.Equal(t, style, s.Style)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, lines, s.Lines())
	// Mode toggle must not rebuild anything.
	assert.Same(t, voids, s.Voids)
	assert.Same(t, cells, s.Cells)
	assert.Same(t, glyphs, s.glyphs)
}

func TestToggleStyleRebuilds(t *testing.T) {
	s := buildTestScene(t, 42, StyleSimple, 24, 24)
	seed, id := s.Seed, s.ID

	s.ToggleStyle()

	assert.Equal(t, StyleDense, s.Style)
	assert.Equal(t, seed, s.Seed, "style toggle keeps the seed")
	assert.Equal(t, id, s.ID, "style toggle keeps the composition id")

	s.ToggleStyle()
	assert.Equal(t, StyleSimple, s.Style)
}

func TestRegeneratePreservesStyleAndMode(t *testing.T) {
	s := buildTestScene(t, 42, StyleSimple, 24, 24)
	s.Mode = ModeLight
	id := s.ID

	s.Regenerate(false)

	assert.Equal(t, StyleSimple, s.Style, "structure-only regenerate keeps style")
	assert.Equal(t, ModeLight, s.Mode, "structure-only regenerate keeps mode")
	assert.NotEqual(t, int64(42), s.Seed, "regenerate draws a new seed")
	assert.NotEqual(t, id, s.ID, "regenerate mints a new composition id")
}

func TestGridMinimums(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
	}{
		{"tiny", 1, 1},
		{"thin", 2000, 1},
		{"short", 1, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(Options{Seed: 1, Width: tt.width, Height: tt.height})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, s.Cols, MinGridDim)
			assert.GreaterOrEqual(t, s.Rows, MinGridDim)
		})
	}
}

func TestResize(t *testing.T) {
	s := buildTestScene(t, 42, StyleDense, 20, 20)
	seed := s.Seed

	s.Resize(60*s.CellSize, 40*s.CellSize)
	assert.Equal(t, 60, s.Cols)
	assert.Equal(t, 40, s.Rows)
	assert.Equal(t, seed, s.Seed, "resize keeps the seed")
	assert.Len(t, s.Lines(), 40)

	// Resizing to tiny dimensions still enforces the minimum grid.
	s.Resize(1, 1)
	assert.Equal(t, MinGridDim, s.Cols)
	assert.Equal(t, MinGridDim, s.Rows)
}

func TestLinesShape(t *testing.T) {
	s := buildTestScene(t, 9, StyleDense, 33, 21)
	lines := s.Lines()
	require.Len(t, lines, 21)
	for i, line := range lines {
		assert.Len(t, []rune(line), 33, "row %d", i)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		wantCode apperrors.Code
	}{
		{"bad style", Options{Style: "fancy"}, apperrors.ErrCodeInvalidStyle},
		{"bad mode", Options{Mode: "sepia"}, apperrors.ErrCodeInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
		})
	}

	var opts Options
	require.NoError(t, opts.ValidateAndSetDefaults())
	assert.Equal(t, DefaultStyle, opts.Style)
	assert.Equal(t, DefaultMode, opts.Mode)
	assert.NotZero(t, opts.Seed)
}
