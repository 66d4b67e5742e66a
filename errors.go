package screw

import (
	"errors"
	"fmt"
)

// ErrInvalidTwist is the root of all input validation errors returned by
// the solver. Use errors.Is to test for it.
var ErrInvalidTwist = errors.New("invalid twist")

var (
	// ErrNoMotion is returned for w = v = 0, which has no screw axis.
	ErrNoMotion = fmt.Errorf("%w: zero angular and linear velocity", ErrInvalidTwist)
	// ErrNegligibleMotion is returned when a positive rotation tolerance
	// discards a non-zero w and v = 0, leaving nothing to translate along.
	ErrNegligibleMotion = fmt.Errorf("%w: angular velocity within rotation tolerance and zero linear velocity", ErrInvalidTwist)
	// ErrNonFinite is returned when an input component is NaN or ±Inf.
	ErrNonFinite = fmt.Errorf("%w: non-finite component", ErrInvalidTwist)
	// ErrOutOfRange is returned when the rate, pitch or axis point of a
	// finite twist overflows float64, as for a tiny w with a huge v.
	ErrOutOfRange = fmt.Errorf("%w: screw parameters overflow", ErrInvalidTwist)
)

var errNegativeTol = errors.New("rotation tolerance must be a non-negative number")
