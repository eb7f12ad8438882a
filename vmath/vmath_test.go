package vmath

import (
	"math"
	"testing"
)

const bhaskaraTolerance = 0.002

// TestSinAccuracy verifies the Bhaskara approximation stays within its error bound over several turns
func TestSinAccuracy(t *testing.T) {
	for i := -2000; i <= 2000; i++ {
		x := float32(i) * 0.005
		got := Sin(x)
		want := math.Sin(float64(x))
		if diff := math.Abs(float64(got) - want); diff > bhaskaraTolerance {
			t.Fatalf("Sin(%v) = %v, want %v (diff %v)", x, got, want, diff)
		}
	}
}

// TestSinExactPoints verifies values at the nodes where the rational formula is exact
func TestSinExactPoints(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{name: "Zero", x: 0, want: 0},
		{name: "Quarter turn", x: HalfPi, want: 1},
		{name: "Three quarter turn", x: 3 * HalfPi, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sin(tt.x)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Sin(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

// TestSinPeriodic verifies range reduction makes x and x+2pi equivalent
func TestSinPeriodic(t *testing.T) {
	for i := -50; i <= 50; i++ {
		x := float32(i) * 0.13
		a := Sin(x)
		b := Sin(x + Tau)
		c := Sin(x - 3*Tau)
		if math.Abs(float64(a-b)) > 1e-3 || math.Abs(float64(a-c)) > 1e-3 {
			t.Errorf("Sin not periodic at %v: %v, %v, %v", x, a, b, c)
		}
	}
}

// TestSinOddSymmetry verifies the mirrored upper half period
func TestSinOddSymmetry(t *testing.T) {
	for i := 1; i < 100; i++ {
		x := float32(i) * 0.03
		if math.Abs(float64(Sin(x)+Sin(-x))) > 1e-4 {
			t.Errorf("Sin(%v) + Sin(-%v) = %v, want 0", x, x, Sin(x)+Sin(-x))
		}
	}
}

// TestSinMonotonicFirstQuadrant verifies the approximation never wobbles on [0, pi/2]
func TestSinMonotonicFirstQuadrant(t *testing.T) {
	prev := Sin(0)
	for i := 1; i <= 200; i++ {
		x := HalfPi * float32(i) / 200
		cur := Sin(x)
		if cur < prev {
			t.Fatalf("Sin decreased at %v: %v < %v", x, cur, prev)
		}
		prev = cur
	}
}

// TestCosTan verifies the derived functions
func TestCosTan(t *testing.T) {
	for i := -100; i <= 100; i++ {
		x := float32(i) * 0.05
		if diff := math.Abs(float64(Cos(x)) - math.Cos(float64(x))); diff > bhaskaraTolerance {
			t.Errorf("Cos(%v) diff %v", x, diff)
		}
	}

	// Away from the poles tan tracks the exact value closely
	for _, x := range []float32{-1.2, -0.7, -0.1, 0.3, 0.9, 1.2} {
		want := math.Tan(float64(x))
		got := float64(Tan(x))
		if math.Abs(got-want) > 0.02*math.Max(1, math.Abs(want)) {
			t.Errorf("Tan(%v) = %v, want ~%v", x, got, want)
		}
	}
}

// TestTanAtPole verifies the unguarded quotient degenerates instead of panicking
func TestTanAtPole(t *testing.T) {
	got := Tan(HalfPi)
	if IsFinite(got) && math.Abs(float64(got)) < 1e3 {
		t.Errorf("Expected Tan(pi/2) to degenerate, got %v", got)
	}
}

// TestExactPrimitives verifies floor/ceil/abs/sqrt match IEEE results
func TestExactPrimitives(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"Floor positive", Floor(1.5), 1},
		{"Floor negative", Floor(-0.5), -1},
		{"Floor integer", Floor(-2), -2},
		{"Ceil positive", Ceil(1.5), 2},
		{"Ceil negative", Ceil(-0.5), 0},
		{"Ceil integer", Ceil(3), 3},
		{"Abs negative", Abs(-2.25), 2.25},
		{"Abs positive", Abs(2.25), 2.25},
		{"Sqrt", Sqrt(2.25), 1.5},
		{"Distance", Distance(3, 4), 5},
		{"Distance negative", Distance(-6, 8), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if math.Signbit(float64(Abs(float32(math.Copysign(0, -1))))) {
		t.Error("Abs(-0) should clear the sign bit")
	}
}

// TestIsFinite verifies the non-finite classifier
func TestIsFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	if !IsFinite(1) || !IsFinite(0) || IsFinite(inf) || IsFinite(-inf) || IsFinite(nan) {
		t.Error("IsFinite misclassified a value")
	}
}

// TestTableAccuracy verifies the LUT implementation against the exact functions
func TestTableAccuracy(t *testing.T) {
	tbl := NewTable()
	for i := -1000; i <= 1000; i++ {
		x := float32(i) * 0.011
		if diff := math.Abs(float64(tbl.Sin(x)) - math.Sin(float64(x))); diff > 1e-4 {
			t.Fatalf("Table.Sin(%v) diff %v", x, diff)
		}
		if diff := math.Abs(float64(tbl.Cos(x)) - math.Cos(float64(x))); diff > 1e-4 {
			t.Fatalf("Table.Cos(%v) diff %v", x, diff)
		}
	}
}

// TestTrigImplementations verifies both implementations satisfy the interface and agree
func TestTrigImplementations(t *testing.T) {
	impls := map[string]Trig{
		"bhaskara": Bhaskara{},
		"table":    NewTable(),
	}

	for name, trig := range impls {
		t.Run(name, func(t *testing.T) {
			x := float32(0.6)
			if diff := math.Abs(float64(trig.Sin(x)) - math.Sin(0.6)); diff > bhaskaraTolerance {
				t.Errorf("Sin diff %v", diff)
			}
			tan := trig.Tan(x)
			if diff := math.Abs(float64(tan) - math.Tan(0.6)); diff > 0.01 {
				t.Errorf("Tan diff %v", diff)
			}
		})
	}
}

// TestTableNonFinite verifies NaN input propagates instead of indexing out of range
func TestTableNonFinite(t *testing.T) {
	tbl := NewTable()
	if IsFinite(tbl.Sin(float32(math.Inf(1)))) {
		t.Error("Expected non-finite result for infinite input")
	}
}
