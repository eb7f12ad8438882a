package vmath

import "math"

// Single precision angle constants
const (
	Pi     = float32(math.Pi)
	Tau    = float32(2 * math.Pi)
	HalfPi = float32(math.Pi / 2)

	fivePiSquared = 5 * Pi * Pi
)

// --- Exact Primitives ---

// Floor rounds toward negative infinity
func Floor(x float32) float32 { return float32(math.Floor(float64(x))) }

// Ceil rounds toward positive infinity
func Ceil(x float32) float32 { return float32(math.Ceil(float64(x))) }

// Abs clears the sign bit, so Abs(-0) is +0
func Abs(x float32) float32 {
	return math.Float32frombits(math.Float32bits(x) &^ (1 << 31))
}

// Sqrt is correctly rounded: the float64 root of a float32 input rounds to the float32 root
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }

// Distance returns the length of the offset (a, b)
func Distance(a, b float32) float32 {
	return Sqrt(a*a + b*b)
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float32) bool {
	return x-x == 0
}

// --- Trigonometry ---

// Sin approximates sine with Bhaskara I's rational formula
// The argument is reduced into [0, 2pi) first, so any heading is accepted
// Absolute error stays below ~0.0017 across the period
func Sin(x float32) float32 {
	turns := x / Tau
	x = (turns - Floor(turns)) * Tau

	if x > Pi {
		return -bhaskara(x - Pi)
	}
	return bhaskara(x)
}

// Cos is Sin shifted by a quarter turn
func Cos(x float32) float32 {
	return Sin(x + HalfPi)
}

// Tan divides Sin by Cos without guarding the quotient
// Callers must handle the ±Inf or NaN produced where Cos is zero
func Tan(x float32) float32 {
	return Sin(x) / Cos(x)
}

// bhaskara is valid on [0, pi]
func bhaskara(x float32) float32 {
	p := x * (Pi - x)
	return (16 * p) / (fivePiSquared - 4*p)
}
