package check

import (
	"github.com/banshee-data/plotcheck/internal/compare"
	"github.com/banshee-data/plotcheck/internal/extract"
)

// NumBins returns the number of bins with a distinct midpoint. Overlaid
// histograms sharing their edges count once.
func (pt *Tester) NumBins() int {
	return extract.NumBins(pt.ax)
}

// AssertNumBins checks the bin count. n <= 0 skips the check. Message
// ({0}: expected, {1}: found) defaults to "Expected {0} bins in histogram,
// instead found {1}.".
func (pt *Tester) AssertNumBins(n int, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if got := pt.NumBins(); got != n {
		return Mismatch(Format(o.Msg("Expected {0} bins in histogram, instead found {1}."), n, got))
	}
	return nil
}

// BinHeights returns the height of every bar and histogram bin in draw
// order. Feeding it back to AssertBinHeights on the same plot passes.
func (pt *Tester) BinHeights() []float64 {
	return extract.BinHeights(pt.ax)
}

// BinMidpoints returns the midpoint of every bar and histogram bin in draw
// order.
func (pt *Tester) BinMidpoints() []float64 {
	return extract.BinMidpoints(pt.ax)
}

// AssertBinHeights checks the bin heights against want, within Tolerance
// when it is set. A different number of bins is a usage error. Message
// defaults to "Did not find expected bin values in plot".
func (pt *Tester) AssertBinHeights(want []float64, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if want == nil {
		return nil
	}
	err = pt.Policy(o).Apply(pt.BinHeights(), want)
	return shapeAsUsage(err, o.Msg("Did not find expected bin values in plot"), "bin heights")
}

// AssertBinMidpoints checks the bin midpoints against want. A different
// number of midpoints is a usage error. Message defaults to "Did not find
// expected bin midpoints in plot".
func (pt *Tester) AssertBinMidpoints(want []float64, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if want == nil {
		return nil
	}
	err = compare.ULP(pt.BinMidpoints(), want, pt.cfg.GetMaxULP())
	return shapeAsUsage(err, o.Msg("Did not find expected bin midpoints in plot"), "bin midpoints")
}
