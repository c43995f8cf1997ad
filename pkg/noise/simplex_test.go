package noise

import (
	"math"
	"testing"
)

func TestAtDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 500; i++ {
		x := float64(i) * 0.173
		y := float64(i) * 0.091
		if got, want := a.At(x, y), b.At(x, y); got != want {
			t.Fatalf("At(%v, %v) = %v, want %v (same seed must reproduce)", x, y, got, want)
		}
	}
}

func TestAtRange(t *testing.T) {
	sn := New(7)
	for i := 0; i < 2000; i++ {
		x := float64(i%50) * 0.37
		y := float64(i/50) * 0.29
		v := sn.At(x, y)
		if v < 0 || v > 1 {
			t.Fatalf("At(%v, %v) = %v, want value in [0, 1]", x, y, v)
		}
	}
}

func TestAtContinuity(t *testing.T) {
	sn := New(99)
	const step = 0.01

	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.111
		y := float64(i) * 0.077
		d := math.Abs(sn.At(x+step, y) - sn.At(x, y))
		if d > 0.1 {
			t.Fatalf("At jumped by %v over step %v at (%v, %v); noise must be smooth", d, step, x, y)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := true
	for i := 0; i < 100 && same; i++ {
		x := float64(i) * 0.41
		if a.At(x, x) != b.At(x, x) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical noise over 100 samples")
	}
}

func TestFractalRange(t *testing.T) {
	sn := New(3)
	for i := 0; i < 500; i++ {
		x := float64(i % 25)
		y := float64(i / 25)
		v := sn.Fractal(x, y, 0.08, 2, 2.3, 0.5)
		if v < 0 || v > 1 {
			t.Fatalf("Fractal(%v, %v) = %v, want value in [0, 1]", x, y, v)
		}
	}
}
