package constants

import (
	"math"
	"testing"
)

// TestProjectionConstants verifies the ray fan spans exactly the field of view
func TestProjectionConstants(t *testing.T) {
	tests := []struct {
		name     string
		actual   float64
		expected float64
	}{
		{name: "Columns span FOV", actual: AngleStep * ScreenColumns, expected: FOV},
		{name: "Half FOV", actual: HalfFOV * 2, expected: FOV},
		{name: "Center row", actual: ScreenCenterY, expected: ScreenHeight / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.actual-tt.expected) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.actual)
			}
		})
	}
}

// TestFOVBelowRightAngle verifies fisheye correction never divides by a non-positive cosine
func TestFOVBelowRightAngle(t *testing.T) {
	if HalfFOV >= math.Pi/2 {
		t.Fatalf("HalfFOV %v must stay below pi/2", HalfFOV)
	}
}

// TestDefaultPoseCentered verifies the default pose sits in the middle of a cell
func TestDefaultPoseCentered(t *testing.T) {
	if DefaultPlayerX-math.Floor(DefaultPlayerX) != 0.5 || DefaultPlayerY-math.Floor(DefaultPlayerY) != 0.5 {
		t.Errorf("Expected default pose at a cell center, got (%v, %v)", DefaultPlayerX, DefaultPlayerY)
	}
}
