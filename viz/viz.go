// Package viz renders chain output as plots: histograms with an optional
// target-density overlay, and trace plots of the raw draws. It is a thin
// presentation layer over gonum/plot consuming slices produced by the
// chain driver; nothing here feeds back into sampling.
package viz

import (
	"image/color"

	"github.com/thanhuwe8/mcgo/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram writes a normalized histogram of the samples to path. The
// output format follows the file extension (png, svg, pdf). When pdf is
// non-nil the normalized target density is drawn over the bars, which is
// the usual visual check that a chain has found its target.
func Histogram(samples []float64, bins int, pdf func(float64) float64, path string) error {
	const op = "viz.Histogram"

	if len(samples) == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}
	if bins <= 0 {
		return errors.NewValidationError("bins", "must be positive", bins)
	}
	if path == "" {
		return errors.NewValueError(op, "output path must not be empty")
	}

	p := plot.New()
	p.Title.Text = "Sample histogram"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "density"

	h, err := plotter.NewHist(plotter.Values(samples), bins)
	if err != nil {
		return errors.Wrap(err, op)
	}
	h.Normalize(1)
	p.Add(h)

	if pdf != nil {
		f := plotter.NewFunction(pdf)
		f.Color = color.RGBA{R: 196, A: 255}
		f.Samples = 200
		p.Add(f)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}

// Trace writes a trace plot (draw index against value) of the samples to
// path. Flat stretches or slow drifts in the trace are the quickest way
// to spot a poorly mixing chain.
func Trace(samples []float64, path string) error {
	const op = "viz.Trace"

	if len(samples) == 0 {
		return errors.Wrap(errors.ErrEmptyData, op)
	}
	if path == "" {
		return errors.NewValueError(op, "output path must not be empty")
	}

	p := plot.New()
	p.Title.Text = "Trace"
	p.X.Label.Text = "iteration"
	p.Y.Label.Text = "x"

	pts := make(plotter.XYs, len(samples))
	for i, x := range samples {
		pts[i].X = float64(i)
		pts[i].Y = x
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return errors.Wrap(err, op)
	}
	line.Color = color.RGBA{B: 196, A: 255}
	p.Add(line)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrap(err, op)
	}
	return nil
}
