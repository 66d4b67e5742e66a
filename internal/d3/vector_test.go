package d3

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestIsFinite(t *testing.T) {
	for _, test := range []struct {
		a    r3.Vec
		want bool
	}{
		{a: r3.Vec{}, want: true},
		{a: r3.Vec{X: 1e300, Y: -1e300, Z: 5}, want: true},
		{a: r3.Vec{X: math.NaN()}, want: false},
		{a: r3.Vec{Y: math.Inf(1)}, want: false},
		{a: r3.Vec{Z: math.Inf(-1)}, want: false},
	} {
		if got := IsFinite(test.a); got != test.want {
			t.Errorf("IsFinite(%v) got %v. want %v", test.a, got, test.want)
		}
	}
}

func TestEqualWithinNaN(t *testing.T) {
	a := r3.Vec{X: math.NaN()}
	if EqualWithin(a, a, 1) {
		t.Error("NaN vectors compared equal")
	}
	if !EqualWithin(r3.Vec{X: 1}, r3.Vec{X: 1 + 1e-10}, 1e-9) {
		t.Error("close vectors compared unequal")
	}
}

func TestZeroSmall(t *testing.T) {
	got := ZeroSmall(r3.Vec{X: -1e-17, Y: 0.5, Z: 3e-13}, 1e-12)
	want := r3.Vec{Y: 0.5}
	if got != want {
		t.Errorf("got %v. want %v", got, want)
	}
	if math.Signbit(got.X) {
		t.Error("negative zero kept")
	}
}
