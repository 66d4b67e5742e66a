package screw

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// SweepSample is the screw of the twist (ε·â, v) for one ε of a sweep.
type SweepSample struct {
	Eps      float64
	ThetaDot float64
	H        float64
	// QNorm is the distance from the origin to the screw axis.
	QNorm float64
}

// Sweep solves the twists (ε·â, v) for every ε in eps, where â is the unit
// vector along axis. It exposes how the rotational case degrades as the
// angular speed approaches zero: θ̇ tends to zero while the pitch and the
// axis distance grow like 1/ε, which is where the pseudo-inverse becomes
// ill-conditioned and a RotationTol may be preferred.
func (s Solver) Sweep(v, axis r3.Vec, eps []float64) ([]SweepSample, error) {
	if Magnitude(axis) == 0 {
		return nil, errors.New("sweep axis must be non-zero")
	}
	a := r3.Unit(axis)
	samples := make([]SweepSample, 0, len(eps))
	for _, e := range eps {
		sc, err := s.FromTwist(r3.Scale(e, a), v)
		if err != nil {
			return samples, fmt.Errorf("sweep eps=%g: %w", e, err)
		}
		samples = append(samples, SweepSample{
			Eps:      e,
			ThetaDot: sc.ThetaDot,
			H:        sc.H,
			QNorm:    Magnitude(sc.Q),
		})
	}
	return samples, nil
}

// LogSweep returns n values logarithmically spaced from hi down to lo.
// Both bounds must be positive and n at least 2.
func LogSweep(hi, lo float64, n int) ([]float64, error) {
	if !(hi > 0 && lo > 0) || n < 2 {
		return nil, fmt.Errorf("bad sweep range [%g, %g] with %d samples", lo, hi, n)
	}
	return floats.LogSpan(make([]float64, n), hi, lo), nil
}
