package vmath

// Trig is the approximation surface the ray caster and player depend on
// Swapping the implementation changes visuals without touching the caster
type Trig interface {
	Sin(x float32) float32
	Cos(x float32) float32
	Tan(x float32) float32
}

// Bhaskara is the default Trig, backed by the package level rational approximation
type Bhaskara struct{}

func (Bhaskara) Sin(x float32) float32 { return Sin(x) }
func (Bhaskara) Cos(x float32) float32 { return Cos(x) }
func (Bhaskara) Tan(x float32) float32 { return Tan(x) }
