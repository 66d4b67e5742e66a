package screw

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Reference is a textbook twist with the axis point given by its source.
type Reference struct {
	Name   string
	Source string
	Twist  Twist
	// Q is the axis point stated by the source.
	Q r3.Vec
	// Confirmed is false when Q was not verified against the source and
	// should not be treated as ground truth.
	Confirmed bool
}

var references = []Reference{
	{
		Name:      "mr-3.3.2-1",
		Source:    "Lynch & Park, Modern Robotics, ch. 3.3.2 example 1",
		Twist:     Twist{W: r3.Vec{Z: 1}, V: r3.Vec{Y: -2}},
		Q:         r3.Vec{X: 2},
		Confirmed: true,
	},
	{
		Name:   "mr-3.3.2-2",
		Source: "Lynch & Park, Modern Robotics, ch. 3.3.2 example 2",
		Twist: Twist{
			W: r3.Vec{Z: 1},
			V: r3.Vec{X: -2 / math.Sqrt2, Y: 2 / math.Sqrt2},
		},
		Q:         r3.Vec{X: -2 / math.Sqrt2, Y: -2 / math.Sqrt2},
		Confirmed: true,
	},
	{
		Name:      "mr-3.3.2-3",
		Source:    "Lynch & Park, Modern Robotics, ch. 3.3.2 example 3",
		Twist:     Twist{W: r3.Vec{Y: -1}},
		Q:         r3.Vec{},
		Confirmed: true,
	},
	{
		Name:      "mr-3.23",
		Source:    "Lynch & Park, Modern Robotics, example 3.23",
		Twist:     Twist{W: r3.Vec{Z: 2}, V: r3.Vec{X: -2, Y: -4}},
		Q:         r3.Vec{X: 2, Y: -1},
		Confirmed: true,
	},
	{
		Name:      "kajita-6.8",
		Source:    "Kajita et al., Introduction to Humanoid Robotics, fig. 6.8",
		Twist:     Twist{W: r3.Vec{X: 1}, V: r3.Vec{X: 0.3, Z: 1}},
		Q:         r3.Vec{X: -0.05, Y: 0.25, Z: 0.05},
		Confirmed: false,
	},
	{
		Name:      "kajita-6.9",
		Source:    "Kajita et al., Introduction to Humanoid Robotics, fig. 6.9",
		Twist:     Twist{W: r3.Vec{X: 1, Z: 1}, V: r3.Vec{X: 0.5, Y: 0.1}},
		Q:         r3.Vec{},
		Confirmed: false,
	},
}

// References returns the built-in textbook twists.
func References() []Reference {
	out := make([]Reference, len(references))
	copy(out, references)
	return out
}

// ReferenceByName returns the built-in twist with the given name.
func ReferenceByName(name string) (Reference, bool) {
	for _, ref := range references {
		if ref.Name == name {
			return ref, true
		}
	}
	return Reference{}, false
}
