package check

import "math"

func (pt *Tester) lims(axis string) (lo, hi float64) {
	if axis == "y" {
		return pt.ax.YLim()
	}
	return pt.ax.XLim()
}

// AssertLims checks that the limits of Axis, truncated toward zero, equal
// want exactly. want must hold two values. Message ({0}: axis) defaults to
// "Incorrect limits on the {0} axis".
func (pt *Tester) AssertLims(want []float64, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if want == nil {
		return nil
	}
	if len(want) != 2 {
		return Usagef("expected limits must hold 2 values, got %d", len(want))
	}
	lo, hi := pt.lims(o.Axis)
	if math.Trunc(lo) != want[0] || math.Trunc(hi) != want[1] {
		return Mismatch(Format(o.Msg("Incorrect limits on the {0} axis"), o.Axis))
	}
	return nil
}

// AssertLimsRange checks that the lower limit of Axis lies within
// ranges[0] and the upper limit within ranges[1], bounds included.
// Message ({0}: axis) defaults to "Incorrect min limit on the {0} axis"
// and MessageAlt to "Incorrect max limit on the {0} axis".
func (pt *Tester) AssertLimsRange(ranges [][2]float64, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if ranges == nil {
		return nil
	}
	if len(ranges) != 2 {
		return Usagef("expected limit ranges must hold 2 ranges, got %d", len(ranges))
	}
	lo, hi := pt.lims(o.Axis)
	if lo < ranges[0][0] || lo > ranges[0][1] {
		return Mismatch(Format(o.Msg("Incorrect min limit on the {0} axis"), o.Axis))
	}
	if hi < ranges[1][0] || hi > ranges[1][1] {
		return Mismatch(Format(o.MsgAlt("Incorrect max limit on the {0} axis"), o.Axis))
	}
	return nil
}

// AssertEqualXLimsYLims checks that the x and y limits are identical.
// Message defaults to "xlims and ylims are not equal".
func (pt *Tester) AssertEqualXLimsYLims(opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	xlo, xhi := pt.ax.XLim()
	ylo, yhi := pt.ax.YLim()
	if xlo != ylo || xhi != yhi {
		return Mismatch(o.Msg("xlims and ylims are not equal"))
	}
	return nil
}
