// Package screw converts rigid body twists into their screw motion
// parameters: a unit axis direction, a point on the axis, a pitch and a rate.
//
// A twist (w, v) holds the spatial angular velocity w and spatial linear
// velocity v of a body. Every twist other than the zero twist is a rotation
// at rate θ̇ about a line through q with direction ŝ combined with a
// translation along that line of h·θ̇ per unit time:
//  w = ŝ·θ̇
//  v = (-ŝ × q + h·ŝ)·θ̇
// When w = 0 the motion is a pure translation with infinite pitch.
package screw

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/soypat/screw/internal/d3"
	"github.com/soypat/screw/internal/pinv"
	"gonum.org/v1/gonum/spatial/r3"
)

// Twist is a rigid body spatial velocity expressed in a fixed frame.
// W need not be a unit vector.
type Twist struct {
	// W is the angular velocity.
	W r3.Vec
	// V is the linear velocity of the body point at the frame origin.
	V r3.Vec
}

// Screw is the screw motion equivalent of a Twist.
type Screw struct {
	// Q is the point on the axis closest to the origin.
	Q r3.Vec
	// S is the unit axis direction.
	S r3.Vec
	// H is the pitch, the distance travelled along S per radian of rotation.
	// It is NaN for pure translation (infinite pitch).
	H float64
	// ThetaDot is the rate of motion about (or along) the axis. Never negative.
	ThetaDot float64
}

// IsTranslation reports whether s describes a pure translation,
// that is, a screw of infinite pitch.
func (s Screw) IsTranslation() bool { return math.IsNaN(s.H) }

// Twist reconstructs the twist described by s.
// For pure translations the angular part is zero and the
// linear part is S·ThetaDot.
func (s Screw) Twist() Twist {
	if s.IsTranslation() {
		return Twist{V: r3.Scale(s.ThetaDot, s.S)}
	}
	v := r3.Add(r3.Cross(r3.Scale(-1, s.S), s.Q), r3.Scale(s.H, s.S))
	return Twist{
		W: r3.Scale(s.ThetaDot, s.S),
		V: r3.Scale(s.ThetaDot, v),
	}
}

// AxisLine returns the screw axis of t in Murray's closed form: the line
// through p with direction dir. For w != 0, p = (w × v)/|w|² and dir = w.
// For pure translation the line passes through the origin with dir = v.
// The zero twist returns zero vectors.
func (t Twist) AxisLine() (p, dir r3.Vec) {
	w2 := r3.Dot(t.W, t.W)
	if w2 == 0 {
		return r3.Vec{}, t.V
	}
	return r3.Scale(1/w2, r3.Cross(t.W, t.V)), t.W
}

// Solver computes screws from twists. The zero value is ready to use and
// splits the two cases on the exact condition |w| != 0.
type Solver struct {
	// RotationTol is the angular speed at or below which a twist is treated
	// as a pure translation. Zero keeps the exact split. A positive value
	// trades the ill-conditioned axis point of very slow rotations for a
	// translation result; the discarded rotation is then lost from Screw.Twist.
	RotationTol float64
	// Log receives per-call diagnostics at debug level. May be nil.
	Log logrus.FieldLogger
}

// FromTwist returns the screw equivalent to the twist (w, v) using the
// exact zero-rotation split. See Solver.FromTwist.
func FromTwist(w, v r3.Vec) (Screw, error) {
	return Solver{}.FromTwist(w, v)
}

// FromTwist returns the screw equivalent to the twist (w, v).
//
// For rotational twists ŝ = w/|w|, θ̇ = |w|, h = ŝ·v/θ̇ and q is the minimum
// norm solution of -θ̇·ŝ × q = v - h·θ̇·ŝ, found with a pseudo-inverse since
// the skew matrix has ŝ as its null space.
//
// For w = 0 the screw is a pure translation: ŝ = v/|v|, θ̇ = |v|, h = NaN
// and q is the origin. A positive RotationTol moves small non-zero w to
// this case as well.
//
// An error wrapping ErrInvalidTwist is returned for non-finite input, the
// zero twist, a twist with no motion left after the rotation tolerance,
// and twists whose pitch or axis point overflows.
func (s Solver) FromTwist(w, v r3.Vec) (Screw, error) {
	if !(s.RotationTol >= 0) {
		return Screw{}, errNegativeTol
	}
	if !d3.IsFinite(w) || !d3.IsFinite(v) {
		return Screw{}, fmt.Errorf("w=%v v=%v: %w", w, v, ErrNonFinite)
	}
	var (
		sc     Screw
		err    error
		branch string
	)
	wMag := Magnitude(w)
	if wMag > s.RotationTol {
		branch = "rotation"
		sc, err = rotationScrew(w, v, wMag)
	} else {
		branch = "translation"
		sc, err = translationScrew(w, v)
	}
	if err != nil {
		return Screw{}, err
	}
	if s.Log != nil {
		s.Log.WithFields(logrus.Fields{
			"branch":    branch,
			"q":         sc.Q,
			"s_hat":     sc.S,
			"h":         sc.H,
			"theta_dot": sc.ThetaDot,
			"v_twist":   sc.Twist().V,
		}).Debug("screw from twist")
	}
	return sc, nil
}

func rotationScrew(w, v r3.Vec, wMag float64) (Screw, error) {
	if math.IsInf(wMag, 0) {
		return Screw{}, fmt.Errorf("w=%v: %w", w, ErrOutOfRange)
	}
	sHat := unit(w)
	thetaDot := wMag
	vAxial := r3.Dot(sHat, v)
	h := vAxial / thetaDot
	if math.IsInf(h, 0) {
		return Screw{}, fmt.Errorf("w=%v v=%v: %w", w, v, ErrOutOfRange)
	}
	// Remove translation along the axis; what remains is -w × q.
	vRot := r3.Sub(v, r3.Scale(vAxial, sHat))
	q, err := axisPoint(sHat, thetaDot, r3.Scale(-1, vRot))
	if err != nil {
		return Screw{}, fmt.Errorf("w=%v v=%v: %w", w, v, err)
	}
	return Screw{Q: q, S: sHat, H: h, ThetaDot: thetaDot}, nil
}

func translationScrew(w, v r3.Vec) (Screw, error) {
	vMag := Magnitude(v)
	if vMag == 0 {
		if w != (r3.Vec{}) {
			return Screw{}, fmt.Errorf("w=%v: %w", w, ErrNegligibleMotion)
		}
		return Screw{}, ErrNoMotion
	}
	if math.IsInf(vMag, 0) {
		return Screw{}, fmt.Errorf("v=%v: %w", v, ErrOutOfRange)
	}
	sHat := unit(v)
	thetaDot := vMag
	// Pitch is infinite. The axis point equation is solved with h = 1 so that
	// the aligned translation cancels and the axis passes through the origin.
	q, err := axisPoint(sHat, thetaDot, r3.Sub(r3.Scale(thetaDot, sHat), v))
	if err != nil {
		return Screw{}, fmt.Errorf("v=%v: %w", v, err)
	}
	return Screw{Q: q, S: sHat, H: math.NaN(), ThetaDot: thetaDot}, nil
}

// axisPoint solves (θ̇·Skew(ŝ))·q = b in the least squares sense.
// θ̇ is divided out of b instead of scaling the matrix: a subnormal
// θ̇·Skew(ŝ) does not factorize.
func axisPoint(sHat r3.Vec, thetaDot float64, b r3.Vec) (r3.Vec, error) {
	b = r3.Vec{X: b.X / thetaDot, Y: b.Y / thetaDot, Z: b.Z / thetaDot}
	if !d3.IsFinite(b) {
		return r3.Vec{}, ErrOutOfRange
	}
	q, err := pinv.Solve(Skew(sHat), b)
	if err != nil {
		return r3.Vec{}, fmt.Errorf("axis point: %w", err)
	}
	if !d3.IsFinite(q) {
		return r3.Vec{}, ErrOutOfRange
	}
	return q, nil
}
