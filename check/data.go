package check

import (
	"errors"

	"github.com/banshee-data/plotcheck/internal/compare"
	"github.com/banshee-data/plotcheck/internal/extract"
)

// XY returns the point data drawn on the Axes, cropped to the visible x
// range. With pointsOnly set only scatter markers are returned.
func (pt *Tester) XY(pointsOnly bool) extract.Table {
	return extract.XY(pt.ax, pointsOnly)
}

// AssertXYData checks that the plotted points equal the XCol and YCol
// columns of want, regardless of plotting order. Both sides are sorted by
// x, then y, before comparing. With XLabels set the check is delegated to
// AssertXLabelYData. Time columns are compared as Unix seconds and do not
// accept a tolerance. Message defaults to "Incorrect data values".
func (pt *Tester) AssertXYData(want Table, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 {
		return nil
	}
	if o.XLabels {
		return pt.AssertXLabelYData(want, o)
	}
	if (o.Tolerance > 0 || o.RelTolerance > 0) && (want.IsTime(o.XCol) || want.IsTime(o.YCol)) {
		return Usagef("tolerance must be 0 when comparing time columns")
	}

	wx, err := want.Numeric(o.XCol)
	if err != nil {
		return err
	}
	wy, err := want.Numeric(o.YCol)
	if err != nil {
		return err
	}
	if len(wx) != len(wy) {
		return Usagef("columns %q and %q differ in length", o.XCol, o.YCol)
	}
	exp := extract.Table{X: wx, Y: wy}.Sorted()
	got := pt.XY(o.PointsOnly).Sorted()
	if got.Len() != exp.Len() {
		return Usagef("plot has %d points but expected data has %d rows", got.Len(), exp.Len())
	}

	msg := o.Msg("Incorrect data values")
	policy := pt.Policy(o)
	if err := policy.Apply(got.X, exp.X); err != nil {
		return Mismatch(msg, "x: "+err.Error())
	}
	if err := policy.Apply(got.Y, exp.Y); err != nil {
		return Mismatch(msg, "y: "+err.Error())
	}
	return nil
}

// AssertXLabelYData checks the major x tick labels against the XCol column
// of want and the plotted y values against YCol. Numeric columns coerce
// the labels to numbers; a label that does not parse fails the check.
// Digit-only string columns are compared numerically when the labels
// parse, and other string columns must match exactly. Message defaults to
// "Incorrect Data".
func (pt *Tester) AssertXLabelYData(want Table, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 {
		return nil
	}
	msg := o.Msg("Incorrect Data")
	ulp := pt.cfg.GetMaxULP()
	labels := extract.TickLabels(pt.ax)

	if sx, ok := want.Strings[o.XCol]; ok {
		err = compare.LabelsText(labels, sx, ulp)
	} else {
		var wx []float64
		wx, err = want.Numeric(o.XCol)
		if err != nil {
			return err
		}
		err = compare.LabelsNumeric(labels, wx, ulp)
	}
	if err != nil {
		return Mismatch(msg, "x labels: "+err.Error())
	}

	wy, err := want.Numeric(o.YCol)
	if err != nil {
		return err
	}
	if err := compare.ULP(pt.XY(false).Y, wy, ulp); err != nil {
		return Mismatch(msg, "y: "+err.Error())
	}
	return nil
}

// shapeAsUsage turns a length mismatch from compare into ErrUsage and any
// other difference into a Failure with msg.
func shapeAsUsage(err error, msg, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, compare.ErrShape) {
		return Usagef("%s: %v", what, err)
	}
	return Mismatch(msg, err.Error())
}
