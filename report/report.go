// Package report renders screw results as text, YAML or plots.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/soypat/screw"
	"github.com/soypat/screw/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding for a Report.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want %q or %q)", s, FormatText, FormatYAML)
}

// Report pairs a twist with its screw for presentation.
type Report struct {
	Name  string
	Twist screw.Twist
	Screw screw.Screw
}

// Write encodes r to w in the given format. prec is the number
// of decimals in text output and the round-off cleanup threshold
// (10^-prec-2) for both formats.
func Write(w io.Writer, r Report, f Format, prec int) error {
	switch f {
	case FormatText:
		return r.WriteText(w, prec)
	case FormatYAML:
		return r.WriteYAML(w, prec)
	}
	return fmt.Errorf("unknown output format %q", f)
}

func cleanTol(prec int) float64 {
	tol := 1.0
	for i := 0; i < prec+2; i++ {
		tol /= 10
	}
	return tol
}

// WriteText writes r in the layout
//  screw S {q,s_hat,h}:
//     - q: [2.0000,0.0000,0.0000]^T
//  ...
func (r Report) WriteText(w io.Writer, prec int) error {
	if prec < 0 {
		prec = 0
	}
	tol := cleanTol(prec)
	num := func(x float64) string {
		if x < tol && x > -tol {
			x = 0
		}
		return strconv.FormatFloat(x, 'f', prec, 64)
	}
	col := func(vs ...r3.Vec) string {
		parts := make([]string, 0, 3*len(vs))
		for _, v := range vs {
			parts = append(parts, num(v.X), num(v.Y), num(v.Z))
		}
		return "[" + strings.Join(parts, ",") + "]^T"
	}
	s := r.Screw
	rec := s.Twist()
	p, dir := rec.AxisLine()
	var b strings.Builder
	if r.Name != "" {
		fmt.Fprintf(&b, "%s:\n", r.Name)
	}
	fmt.Fprintf(&b, "screw S {q,s_hat,h}:\n")
	fmt.Fprintf(&b, "   - q: %s\n", col(s.Q))
	fmt.Fprintf(&b, "   - s_hat: %s\n", col(s.S))
	fmt.Fprintf(&b, "   - h: %s\n", num(s.H))
	fmt.Fprintf(&b, "   where theta_dot: %s\n", num(s.ThetaDot))
	fmt.Fprintf(&b, "   Murray axis \"l\" (a line): %s\n", col(r3.Add(p, dir)))
	fmt.Fprintf(&b, "twist V = [w,v]^T:\n")
	fmt.Fprintf(&b, "   - %s\n", col(r.Twist.W, rec.V))
	_, err := io.WriteString(w, b.String())
	return err
}

type vecDoc [3]float64

func newVecDoc(v r3.Vec, tol float64) vecDoc {
	v = d3.ZeroSmall(v, tol)
	return vecDoc{v.X, v.Y, v.Z}
}

type twistDoc struct {
	W vecDoc `yaml:"w,flow"`
	V vecDoc `yaml:"v,flow"`
}

type screwDoc struct {
	Q           vecDoc  `yaml:"q,flow"`
	S           vecDoc  `yaml:"s_hat,flow"`
	H           float64 `yaml:"h"`
	ThetaDot    float64 `yaml:"theta_dot"`
	Translation bool    `yaml:"pure_translation"`
}

type lineDoc struct {
	Point     vecDoc `yaml:"point,flow"`
	Direction vecDoc `yaml:"direction,flow"`
}

type reportDoc struct {
	Name          string   `yaml:"name,omitempty"`
	Twist         twistDoc `yaml:"twist"`
	Screw         screwDoc `yaml:"screw"`
	Axis          lineDoc  `yaml:"murray_axis"`
	Reconstructed twistDoc `yaml:"reconstructed"`
}

// WriteYAML writes r as a YAML document. Infinite pitch is encoded as .nan.
func (r Report) WriteYAML(w io.Writer, prec int) error {
	tol := cleanTol(prec)
	s := r.Screw
	rec := s.Twist()
	p, dir := rec.AxisLine()
	doc := reportDoc{
		Name: r.Name,
		Twist: twistDoc{
			W: newVecDoc(r.Twist.W, tol),
			V: newVecDoc(r.Twist.V, tol),
		},
		Screw: screwDoc{
			Q:           newVecDoc(s.Q, tol),
			S:           newVecDoc(s.S, tol),
			H:           s.H,
			ThetaDot:    s.ThetaDot,
			Translation: s.IsTranslation(),
		},
		Axis: lineDoc{
			Point:     newVecDoc(p, tol),
			Direction: newVecDoc(dir, tol),
		},
		Reconstructed: twistDoc{
			W: newVecDoc(rec.W, tol),
			V: newVecDoc(rec.V, tol),
		},
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
