package weave

// FloatGrid stores a 2D grid of float64 values in row-major order.
type FloatGrid struct {
	Rows, Cols int
	data       []float64
}

// NewFloatGrid allocates a zeroed grid with the given dimensions.
func NewFloatGrid(rows, cols int) *FloatGrid {
	return &FloatGrid{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

// At returns the value at (row, col).
func (g *FloatGrid) At(r, c int) float64 { return g.data[r*g.Cols+c] }

// Set stores v at (row, col).
func (g *FloatGrid) Set(r, c int, v float64) { g.data[r*g.Cols+c] = v }

// BoolGrid stores a 2D grid of booleans in row-major order.
type BoolGrid struct {
	Rows, Cols int
	data       []bool
}

// NewBoolGrid allocates a zeroed grid with the given dimensions.
func NewBoolGrid(rows, cols int) *BoolGrid {
	return &BoolGrid{Rows: rows, Cols: cols, data: make([]bool, rows*cols)}
}

// At returns the value at (row, col).
func (g *BoolGrid) At(r, c int) bool { return g.data[r*g.Cols+c] }

// Set stores v at (row, col).
func (g *BoolGrid) Set(r, c int, v bool) { g.data[r*g.Cols+c] = v }

// Count returns the number of true cells.
func (g *BoolGrid) Count() int {
	n := 0
	for _, v := range g.data {
		if v {
			n++
		}
	}
	return n
}

// MaskGrid stores a 2D grid of per-cell edge bitmasks in row-major order.
// Bits are north=1, east=2, south=4, west=8.
type MaskGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewMaskGrid allocates a zeroed grid with the given dimensions.
func NewMaskGrid(rows, cols int) *MaskGrid {
	return &MaskGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// At returns the mask at (row, col).
func (g *MaskGrid) At(r, c int) uint8 { return g.data[r*g.Cols+c] }

// Set stores m at (row, col).
func (g *MaskGrid) Set(r, c int, m uint8) { g.data[r*g.Cols+c] = m }

// RuneGrid stores a 2D grid of display characters in row-major order.
type RuneGrid struct {
	Rows, Cols int
	data       []rune
}

// NewRuneGrid allocates a grid filled with spaces.
func NewRuneGrid(rows, cols int) *RuneGrid {
	g := &RuneGrid{Rows: rows, Cols: cols, data: make([]rune, rows*cols)}
	for i := range g.data {
		g.data[i] = ' '
	}
	return g
}

// At returns the rune at (row, col).
func (g *RuneGrid) At(r, c int) rune { return g.data[r*g.Cols+c] }

// Set stores ch at (row, col).
func (g *RuneGrid) Set(r, c int, ch rune) { g.data[r*g.Cols+c] = ch }

// Row returns row r as a string.
func (g *RuneGrid) Row(r int) string {
	return string(g.data[r*g.Cols : (r+1)*g.Cols])
}
