package vmath

import (
	"math"
)

// LUT dimensions, power of two so the index wraps with a mask
const (
	LUTSize = 1024
	LUTMask = LUTSize - 1
)

// Table is a lookup-table Trig with linear interpolation between entries
// Interpolation error is below 5e-6, far tighter than Bhaskara, at the cost of a 4 KiB table
type Table struct {
	sin [LUTSize]float32
}

// NewTable builds the sine table over one full turn
func NewTable() *Table {
	t := &Table{}
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		t.sin[i] = float32(math.Sin(rad))
	}
	return t
}

// Sin reduces x into one turn and interpolates between neighbouring entries
func (t *Table) Sin(x float32) float32 {
	turns := x / Tau
	frac := turns - Floor(turns)
	if !IsFinite(frac) {
		return frac
	}

	pos := frac * LUTSize
	idx := int(pos)
	w := pos - float32(idx)

	s0 := t.sin[idx&LUTMask]
	s1 := t.sin[(idx+1)&LUTMask]
	return s0 + (s1-s0)*w
}

// Cos is Sin shifted by a quarter turn
func (t *Table) Cos(x float32) float32 {
	return t.Sin(x + HalfPi)
}

// Tan has the same unguarded quotient as the package level Tan
func (t *Table) Tan(x float32) float32 {
	return t.Sin(x) / t.Cos(x)
}
