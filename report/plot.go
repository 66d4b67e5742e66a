package report

import (
	"errors"
	"io"
	"math"

	"github.com/soypat/screw"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotConfig sizes a sweep plot.
type PlotConfig struct {
	Width, Height vg.Length
	// Format is the image format: png, svg, pdf, ...
	Format string
}

// DefaultPlotConfig is a 6x4 inch PNG.
var DefaultPlotConfig = PlotConfig{Width: 6 * vg.Inch, Height: 4 * vg.Inch, Format: "png"}

// WriteSweepPlot draws θ̇, |h| and |q| against ε on log-log axes.
// Non-positive and non-finite values cannot be drawn on a log axis and are skipped.
func WriteSweepPlot(w io.Writer, samples []screw.SweepSample, cfg PlotConfig) error {
	if len(samples) == 0 {
		return errors.New("no sweep samples to plot")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = DefaultPlotConfig.Width, DefaultPlotConfig.Height
	}
	if cfg.Format == "" {
		cfg.Format = DefaultPlotConfig.Format
	}
	p := plot.New()
	p.Title.Text = "Screw parameters as angular speed -> 0"
	p.X.Label.Text = "eps"
	p.Y.Label.Text = "value"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{}
	p.Y.Tick.Marker = plot.LogTicks{}
	p.Add(plotter.NewGrid())

	series := []struct {
		name string
		val  func(screw.SweepSample) float64
	}{
		{name: "rate", val: func(s screw.SweepSample) float64 { return s.ThetaDot }},
		{name: "|h|", val: func(s screw.SweepSample) float64 { return math.Abs(s.H) }},
		{name: "|q|", val: func(s screw.SweepSample) float64 { return s.QNorm }},
	}
	drawn := 0
	for i, ser := range series {
		xys := make(plotter.XYs, 0, len(samples))
		for _, smp := range samples {
			y := ser.val(smp)
			if !drawable(smp.Eps) || !drawable(y) {
				continue
			}
			xys = append(xys, plotter.XY{X: smp.Eps, Y: y})
		}
		if len(xys) == 0 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		p.Legend.Add(ser.name, line)
		drawn++
	}
	if drawn == 0 {
		return errors.New("sweep has no positive finite values to plot")
	}
	wt, err := p.WriterTo(cfg.Width, cfg.Height, cfg.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

func drawable(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
