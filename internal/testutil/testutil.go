// Package testutil provides shared test helpers and figure fixtures.
//
// The fixtures build small gonum plots through figure.Axes so checker
// tests across packages start from the same drawings.
package testutil

import (
	"image/color"
	"math"
	"testing"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotcheck/figure"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// XYs converts coordinate pairs into plotter.XYs.
func XYs(pairs ...[2]float64) plotter.XYs {
	out := make(plotter.XYs, len(pairs))
	for i, p := range pairs {
		out[i] = plotter.XY{X: p[0], Y: p[1]}
	}
	return out
}

// Scatter returns a scatter of pts drawn in c.
func Scatter(t *testing.T, pts plotter.XYs, c color.Color) *plotter.Scatter {
	t.Helper()
	s, err := plotter.NewScatter(pts)
	AssertNoError(t, err)
	s.GlyphStyle.Color = c
	return s
}

// Line returns a solid line through pts drawn in c.
func Line(t *testing.T, pts plotter.XYs, c color.Color) *plotter.Line {
	t.Helper()
	l, err := plotter.NewLine(pts)
	AssertNoError(t, err)
	l.Color = c
	l.Width = vg.Points(1)
	return l
}

// ExpValues returns exp(x) for x = 0, 0.01, ..., 4.99.
func ExpValues() plotter.Values {
	vs := make(plotter.Values, 500)
	for i := range vs {
		vs[i] = math.Exp(float64(i) * 0.01)
	}
	return vs
}

// ExpHeights are the bin heights of ExpValues split into five bins.
var ExpHeights = []float64{341, 68, 40, 28, 23}

// HistogramAxes returns an Axes holding a histogram of vs with n bins.
func HistogramAxes(t *testing.T, vs plotter.Values, n int) *figure.Axes {
	t.Helper()
	h, err := plotter.NewHist(vs, n)
	AssertNoError(t, err)
	_, axes := figure.Subplots(1, 1)
	axes[0].Add(h)
	return axes[0]
}

// RegressionData returns 20 points that follow y = 2x with a small
// sinusoidal wobble.
func RegressionData() plotter.XYs {
	pts := make(plotter.XYs, 20)
	for i := range pts {
		x := float64(i)
		pts[i] = plotter.XY{X: x, Y: 2*x + 0.5*math.Sin(x)}
	}
	return pts
}

// RegressionSlope and RegressionIntercept are the least-squares fit of
// RegressionData.
const (
	RegressionSlope     = 1.9876567757947399
	RegressionIntercept = 0.1193925457922731
)

// LineAxes returns an Axes with a titled scatter of pts and a line from
// (x0, slope*x0+intercept) to (x1, slope*x1+intercept).
func LineAxes(t *testing.T, pts plotter.XYs, slope, intercept, x0, x1 float64) *figure.Axes {
	t.Helper()
	fig, axes := figure.Subplots(1, 1)
	fig.Title = "Figure Title"
	ax := axes[0]
	ax.Plot.Title.Text = "My Plot Title"
	ax.Plot.X.Label.Text = "x label"
	ax.Plot.Y.Label.Text = "y label"
	ax.Add(Scatter(t, pts, color.RGBA{B: 255, A: 255}))
	ax.Add(Line(t, XYs([2]float64{x0, slope*x0 + intercept}, [2]float64{x1, slope*x1 + intercept}), color.Black))
	return ax
}

// Glyph returns a glyph style of the given colour, radius and shape.
func Glyph(c color.Color, r float64, shape draw.GlyphDrawer) draw.GlyphStyle {
	return draw.GlyphStyle{Color: c, Radius: vg.Points(r), Shape: shape}
}
