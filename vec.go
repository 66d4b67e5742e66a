package screw

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// minNormal is the smallest positive normal float64.
const minNormal = 0x1p-1022

// Magnitude returns the Euclidean norm of a.
func Magnitude(a r3.Vec) float64 {
	return r3.Norm(a)
}

// Skew returns the skew-symmetric cross product matrix of a
// such that Skew(a)·x == a × x for any vector x.
//  [ 0   -az   ay ]
//  [ az   0   -ax ]
//  [-ay   ax   0  ]
func Skew(a r3.Vec) *r3.Mat {
	return r3.Skew(a)
}

// unit returns a/|a| for non-zero finite a. Subnormal vectors are scaled up
// by a power of two first; their magnitude has too few significant bits.
func unit(a r3.Vec) r3.Vec {
	if Magnitude(a) < minNormal {
		a = r3.Scale(0x1p600, a)
	}
	m := Magnitude(a)
	return r3.Vec{X: a.X / m, Y: a.Y / m, Z: a.Z / m}
}
