package weave

import "testing"

func TestFloatGridRoundTrip(t *testing.T) {
	g := NewFloatGrid(3, 5)
	g.Set(2, 4, 0.75)
	g.Set(0, 0, 0.25)

	if got := g.At(2, 4); got != 0.75 {
		t.Errorf("At(2,4) = %v, want 0.75", got)
	}
	if got := g.At(0, 0); got != 0.25 {
		t.Errorf("At(0,0) = %v, want 0.25", got)
	}
	if got := g.At(1, 2); got != 0 {
		t.Errorf("At(1,2) = %v, want zero value", got)
	}
}

func TestBoolGridCount(t *testing.T) {
	g := NewBoolGrid(4, 4)
	if got := g.Count(); got != 0 {
		t.Fatalf("empty grid Count() = %d, want 0", got)
	}
	g.Set(0, 0, true)
	g.Set(3, 3, true)
	g.Set(3, 3, true) // idempotent
	if got := g.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestRuneGridRow(t *testing.T) {
	g := NewRuneGrid(2, 3)
	if got := g.Row(0); got != "   " {
		t.Fatalf("fresh Row(0) = %q, want three spaces", got)
	}
	g.Set(1, 0, '│')
	g.Set(1, 2, '─')
	if got := g.Row(1); got != "│ ─" {
		t.Errorf("Row(1) = %q, want %q", got, "│ ─")
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name         string
		edge0, edge1 float64
		v            float64
		want         float64
	}{
		{"below range clamps", 0.2, 0.8, -5, 0},
		{"above range clamps", 0.2, 0.8, 5, 1},
		{"at lower edge", 0.2, 0.8, 0.2, 0},
		{"at upper edge", 0.2, 0.8, 0.8, 1},
		{"midpoint", 0.25, 0.75, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := smoothstep(tt.edge0, tt.edge1, tt.v); got != tt.want {
				t.Errorf("smoothstep(%v, %v, %v) = %v, want %v", tt.edge0, tt.edge1, tt.v, got, tt.want)
			}
		})
	}
}
