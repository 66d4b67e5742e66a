package d3

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// R3 vector helpers shared by the screw solver and its tests.

// EqualWithin returns true if every component of a and b differs by at most tol.
// NaN components are never equal.
func EqualWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// IsFinite returns true if no component of a is NaN or ±Inf.
func IsFinite(a r3.Vec) bool {
	return !math.IsNaN(a.X) && !math.IsInf(a.X, 0) &&
		!math.IsNaN(a.Y) && !math.IsInf(a.Y, 0) &&
		!math.IsNaN(a.Z) && !math.IsInf(a.Z, 0)
}

// HasNaN returns true if any vector component is NaN.
func HasNaN(a r3.Vec) bool {
	return math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(a.Z)
}

// ZeroSmall zeroes out components whose magnitude is below tol.
// Used to clean up round-off noise such as -0.0000 in printed results.
func ZeroSmall(a r3.Vec, tol float64) r3.Vec {
	if math.Abs(a.X) < tol {
		a.X = 0
	}
	if math.Abs(a.Y) < tol {
		a.Y = 0
	}
	if math.Abs(a.Z) < tol {
		a.Z = 0
	}
	return a
}
