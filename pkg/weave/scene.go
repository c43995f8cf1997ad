package weave

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/matzehuels/circuitweave/pkg/errors"
	"github.com/matzehuels/circuitweave/pkg/noise"
	"github.com/matzehuels/circuitweave/pkg/observability"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultWidth is the default viewport width in abstract units.
	DefaultWidth = 800.0

	// DefaultHeight is the default viewport height in abstract units.
	DefaultHeight = 600.0

	// DefaultCellSize is the default size of one grid cell in abstract units.
	DefaultCellSize = 14.0

	// MinGridDim is the minimum column and row count. Dimension computation
	// never produces a degenerate grid below this.
	MinGridDim = 18
)

// DefaultStyle is the style used when none is configured.
const DefaultStyle = StyleDense

// DefaultMode is the mode used when none is configured.
const DefaultMode = ModeDark

// Salts separating the per-generation PCG streams: stage parameters and the
// glyphizer's per-cell cosmetic draws must not share a stream, or a style
// branch could shift every later draw.
const (
	stageSalt    = 0x9E3779B97F4A7C15
	cosmeticSalt = 0xC2B2AE3D27D4EB4F
)

// =============================================================================
// Options
// =============================================================================

// Options configures scene construction. Zero values fall back to defaults.
type Options struct {
	// Width and Height are the viewport dimensions in abstract units; the
	// grid is derived by dividing by CellSize.
	Width, Height float64

	// CellSize is the edge length of one cell in abstract units.
	CellSize float64

	// Cols and Rows, when both positive, override the derived dimensions.
	Cols, Rows int

	// Seed drives all generation. Zero means "draw one from entropy".
	Seed int64

	Style Style
	Mode  Mode
}

// ValidateAndSetDefaults checks enum fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	switch o.Style {
	case StyleSimple, StyleDense:
	case "":
		o.Style = DefaultStyle
	default:
		return apperrors.New(apperrors.ErrCodeInvalidStyle, "invalid style: %q", o.Style)
	}

	switch o.Mode {
	case ModeLight, ModeDark:
	case "":
		o.Mode = DefaultMode
	default:
		return apperrors.New(apperrors.ErrCodeInvalidMode, "invalid mode: %q", o.Mode)
	}

	if o.CellSize <= 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	if o.Seed == 0 {
		o.Seed = rand.Int64()
	}
	return nil
}

// =============================================================================
// Scene
// =============================================================================

// Scene is the single mutable root of one weave composition. It owns every
// derived grid exclusively; rebuild triggers replace them wholesale, so no
// partially regenerated state is ever observable and no locking is needed for
// the single-goroutine lifecycle it is designed for.
type Scene struct {
	// ID identifies the current composition. A new one is minted on every
	// regeneration.
	ID uuid.UUID

	Seed  int64
	Style Style
	Mode  Mode

	Cols, Rows int
	CellSize   float64

	Bands  []Band
	Fields *Fields
	Voids  *BoolGrid
	Edges  *EdgeSet
	Cells  *MaskGrid

	glyphs *RuneGrid
}

// New builds a scene and runs the full generation pipeline once.
func New(opts Options) (*Scene, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	s := &Scene{
		ID:       uuid.New(),
		Seed:     opts.Seed,
		Style:    opts.Style,
		Mode:     opts.Mode,
		CellSize: opts.CellSize,
	}
	if opts.Cols > 0 && opts.Rows > 0 {
		s.Cols = max(opts.Cols, MinGridDim)
		s.Rows = max(opts.Rows, MinGridDim)
	} else {
		s.Cols, s.Rows = gridDims(opts.Width, opts.Height, opts.CellSize)
	}

	s.rebuild()
	return s, nil
}

// Regenerate reseeds and rebuilds. With newComposition true it also rolls a
// random style and mode ("roulette"); false keeps both and only changes the
// structure. Either way the scene gets a fresh composition ID.
func (s *Scene) Regenerate(newComposition bool) {
	s.Seed = rand.Int64()
	if newComposition {
		if rand.IntN(2) == 0 {
			s.Style = StyleSimple
		} else {
			s.Style = StyleDense
		}
		if rand.IntN(2) == 0 {
			s.Mode = ModeLight
		} else {
			s.Mode = ModeDark
		}
	}
	s.ID = uuid.New()
	s.rebuild()
}

// ToggleMode flips light/dark. Cosmetic only: no field is rebuilt and
// nothing besides Mode changes.
func (s *Scene) ToggleMode() {
	s.Mode = s.Mode.Other()
}

// ToggleStyle flips simple/dense and rebuilds with the same seed.
func (s *Scene) ToggleStyle() {
	s.Style = s.Style.Other()
	s.rebuild()
}

// Resize recomputes the grid dimensions from new viewport dimensions and
// rebuilds with the same seed. A resize that lands on the same grid is a
// no-op.
func (s *Scene) Resize(width, height float64) {
	cols, rows := gridDims(width, height, s.CellSize)
	if cols == s.Cols && rows == s.Rows {
		return
	}
	s.Cols, s.Rows = cols, rows
	s.rebuild()
}

// Glyphs returns the finished glyph grid. The grid is read-only from the
// caller's perspective and valid until the next rebuild.
func (s *Scene) Glyphs() *RuneGrid {
	return s.glyphs
}

// Lines returns the glyph grid as one string per row.
func (s *Scene) Lines() []string {
	lines := make([]string, s.Rows)
	for r := 0; r < s.Rows; r++ {
		lines[r] = s.glyphs.Row(r)
	}
	return lines
}

// rebuild runs the full pipeline: bands → fields → voids → edges → glyphs.
// All randomized per-generation constants are drawn from one PCG stream in
// this fixed order; the glyphizer's per-cell choices use a separate salted
// stream consumed in row-major order.
func (s *Scene) rebuild() {
	rng := rand.New(rand.NewPCG(uint64(s.Seed), uint64(s.Seed)^stageSalt))
	cosmetic := rand.New(rand.NewPCG(uint64(s.Seed)^cosmeticSalt, uint64(s.Seed)))
	ns := noise.New(s.Seed)

	var (
		bands  []Band
		fields *Fields
		voids  *BoolGrid
		edges  *EdgeSet
		cells  *MaskGrid
		glyphs *RuneGrid
	)

	runStage(observability.StageBands, func() {
		bands = partitionBands(rng, s.Rows)
	})
	runStage(observability.StageFields, func() {
		fields = buildFields(rng, ns, bands, s.Rows, s.Cols)
	})
	runStage(observability.StageVoids, func() {
		voids = buildVoidMask(rng, ns, s.Style, s.Rows, s.Cols)
	})
	runStage(observability.StageEdges, func() {
		edges = resolveEdges(rng, s.Style, fields, voids)
		cells = distributeEdges(edges, voids)
	})
	runStage(observability.StageGlyphs, func() {
		glyphs = buildGlyphs(rng, cosmetic, s.Style, fields, voids, cells)
	})

	// Replace everything in one shot.
	s.Bands, s.Fields, s.Voids, s.Edges, s.Cells, s.glyphs = bands, fields, voids, edges, cells, glyphs
}

// runStage wraps one pipeline stage with observability events.
func runStage(stage observability.Stage, fn func()) {
	hooks := observability.Generator()
	hooks.OnStageStart(stage)
	start := time.Now()
	fn()
	hooks.OnStageComplete(stage, time.Since(start))
}

// gridDims converts viewport dimensions to a grid size, enforcing the
// minimum in both directions.
func gridDims(width, height, cellSize float64) (cols, rows int) {
	cols = int(width / cellSize)
	rows = int(height / cellSize)
	return max(cols, MinGridDim), max(rows, MinGridDim)
}
