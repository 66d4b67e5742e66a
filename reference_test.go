package screw

import (
	"testing"

	"github.com/soypat/screw/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestReferences(t *testing.T) {
	for _, ref := range References() {
		s, err := FromTwist(ref.Twist.W, ref.Twist.V)
		if err != nil {
			t.Fatalf("%s: %v", ref.Name, err)
		}
		tw := s.Twist()
		if !d3.EqualWithin(tw.V, ref.Twist.V, tol) {
			t.Errorf("%s: reconstructed linear velocity got %v. want %v", ref.Name, tw.V, ref.Twist.V)
		}
		if !ref.Confirmed {
			continue
		}
		if !d3.EqualWithin(s.Q, ref.Q, tol) {
			t.Errorf("%s: axis point got %v. want %v", ref.Name, s.Q, ref.Q)
		}
	}
}

// The Kajita annotations are unconfirmed. Solving -w × q = v - h·w by hand
// gives the points below; the value annotated for fig. 6.8 is the one for 6.9.
func TestReferencesUnconfirmed(t *testing.T) {
	for _, test := range []struct {
		name  string
		wantQ r3.Vec
		wantH float64
	}{
		{name: "kajita-6.8", wantQ: r3.Vec{Y: -1}, wantH: 0.3},
		{name: "kajita-6.9", wantQ: r3.Vec{X: -0.05, Y: 0.25, Z: 0.05}, wantH: 0.25},
	} {
		ref, ok := ReferenceByName(test.name)
		if !ok {
			t.Fatalf("reference %q not found", test.name)
		}
		if ref.Confirmed {
			t.Errorf("%s: expected unconfirmed reference", test.name)
		}
		s, err := FromTwist(ref.Twist.W, ref.Twist.V)
		if err != nil {
			t.Fatal(err)
		}
		if !d3.EqualWithin(s.Q, test.wantQ, tol) {
			t.Errorf("%s: axis point got %v. want %v", test.name, s.Q, test.wantQ)
		}
		if d := s.H - test.wantH; d > tol || d < -tol {
			t.Errorf("%s: pitch got %v. want %v", test.name, s.H, test.wantH)
		}
	}
}

func TestReferenceByNameMissing(t *testing.T) {
	if _, ok := ReferenceByName("no-such-twist"); ok {
		t.Error("found nonexistent reference")
	}
}

func TestReferencesCopy(t *testing.T) {
	refs := References()
	refs[0].Name = "mutated"
	if _, ok := ReferenceByName("mutated"); ok {
		t.Error("References exposes internal storage")
	}
}
