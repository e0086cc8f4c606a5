package check

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/internal/compare"
	"github.com/banshee-data/plotcheck/internal/extract"
)

// SlopeIntercept returns the mean slope between consecutive vertices of
// path and the y intercept implied by its first vertex.
func (pt *Tester) SlopeIntercept(path []plotter.XY) (slope, intercept float64, err error) {
	s, b, ok := compare.SlopeIntercept(path)
	if !ok {
		return 0, 0, Usagef("a line needs at least 2 vertices, got %d", len(path))
	}
	return s, b, nil
}

// AssertLine checks that some visible line has the given slope and
// intercept to within the configured line tolerance. Unless NoCoverage is
// set, the matching line must also span the x range of the scatter
// points; a plot without scatter points skips that part.
//
// MessageMissing defaults to "Expected line not displayed" and Message to
// "Line does not cover data set".
func (pt *Tester) AssertLine(slope, intercept float64, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	var cover *compare.Extent
	if !o.NoCoverage {
		pts := pt.XY(true)
		if e, ok := compare.XExtent(pts.Points()); ok {
			cover = &e
		}
	}
	found, covers := compare.MatchLine(extract.Lines(pt.ax), slope, intercept, pt.cfg.GetLineTolerance(), cover)
	if !found {
		return Missing(o.MsgMissing("Expected line not displayed"))
	}
	if !covers {
		return Mismatch(o.Msg("Line does not cover data set"))
	}
	return nil
}

// AssertLinesOfType checks that a line of each named type is drawn.
// "regression" (or "linear-regression") is the least-squares fit of the
// scatter points; "onetoone" (or "one-to-one") is y = x. Coverage is
// checked as in AssertLine unless NoCoverage is set.
func (pt *Tester) AssertLinesOfType(types []string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	for _, lt := range types {
		var slope, intercept float64
		switch lt {
		case "regression", "linear-regression":
			pts := pt.XY(true)
			if pts.Len() == 0 {
				return Missing(Format("{0} line not displayed properly", lt))
			}
			intercept, slope = stat.LinearRegression(pts.X, pts.Y, nil, false)
		case "onetoone", "one-to-one":
			slope, intercept = 1, 0
		default:
			return Usagef("line type must be one of [regression onetoone], got %q", lt)
		}
		lo := o
		lo.MessageMissing = Format("{0} line not displayed properly", lt)
		lo.Message = Format("{0} line does not cover dataset", lt)
		if err := pt.AssertLine(slope, intercept, lo); err != nil {
			return err
		}
	}
	return nil
}
