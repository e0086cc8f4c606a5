// Package vector checks map-style plots of points, lines and polygons:
// that the right geometries are drawn and that features of the same
// category share colour, size and style.
package vector

import (
	"math"
	"slices"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/compare"
	"github.com/banshee-data/plotcheck/internal/extract"
	"github.com/banshee-data/plotcheck/internal/group"
)

// Tester adds vector assertions to check.Tester.
type Tester struct {
	*check.Tester
}

// New returns a Tester for ax with default precision.
func New(ax *figure.Axes) *Tester {
	return &Tester{Tester: check.New(ax)}
}

// NewWithConfig returns a Tester for ax using cfg.
func NewWithConfig(ax *figure.Axes, cfg *check.Config) *Tester {
	return &Tester{Tester: check.NewWithConfig(ax, cfg)}
}

// ulpEqual compares floats the way exact-mode assertions do.
func (vt *Tester) ulpEqual() cmp.Option {
	maxULP := vt.Config().GetMaxULP()
	return cmp.Options{
		cmp.Comparer(func(a, b float64) bool {
			return scalar.EqualWithinULP(a, b, maxULP)
		}),
		cmpopts.EquateEmpty(),
	}
}

// decimalEqual accepts floats closer than 1.5*10^-dec.
func decimalEqual(dec int) cmp.Option {
	limit := 1.5 * math.Pow10(-dec)
	return cmp.Options{
		cmp.Comparer(func(a, b float64) bool {
			return a == b || math.Abs(a-b) < limit
		}),
		cmpopts.EquateEmpty(),
	}
}

// AssertLegendNoOverlayContent is check.Tester.AssertLegendNoOverlayContent
// with the message defaulting to "Legend overlays plot contents".
func (vt *Tester) AssertLegendNoOverlayContent(opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if o.Message == "" {
		o.Message = "Legend overlays plot contents"
	}
	return vt.Tester.AssertLegendNoOverlayContent(o)
}

// Points returns every scatter point on the Axes, sorted by x then y.
func (vt *Tester) Points() []plotter.XY {
	return group.SortPoints(vt.XY(true).Points())
}

// AssertPoints checks that the scatter points are exactly the Point
// geometries of want, in any order. An empty Frame skips the check.
//
// Message defaults to "Incorrect Point Data" and MessageAlt to
// "points_expected's length does not match the stored data's length.".
func (vt *Tester) AssertPoints(want Frame, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 {
		return nil
	}
	exp, err := want.points()
	if err != nil {
		return err
	}
	got := vt.Points()
	if len(got) != len(exp) {
		return check.Mismatch(o.MsgAlt("points_expected's length does not match the stored data's length."))
	}
	if diff := cmp.Diff(group.SortPoints(exp), got, vt.ulpEqual()); diff != "" {
		return check.Mismatch(o.Msg("Incorrect Point Data"), diff)
	}
	return nil
}

// PointsByAttributes groups the scatter points by colour, marker size and
// marker shape and returns the groups in canonical order.
func (vt *Tester) PointsByAttributes() ([][]plotter.XY, error) {
	pts, err := extract.Points(vt.Axes())
	if err != nil {
		return nil, err
	}
	xys := make([]plotter.XY, len(pts))
	attrs := make([]group.Attr, len(pts))
	for i, p := range pts {
		xys[i], attrs[i] = p.XY, p.Attr
	}
	groups, err := group.ByAttr(xys, attrs)
	if err != nil {
		return nil, err
	}
	return group.Canonical(groups, group.ComparePoint), nil
}

// AssertPointsGroupedByType checks that points sharing a value in column
// of want are drawn with the same attributes and that points of different
// values are not. Message defaults to "Point attributes not accurate by
// type".
func (vt *Tester) AssertPointsGroupedByType(want Frame, column string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 || column == "" {
		return nil
	}
	pts, err := want.points()
	if err != nil {
		return err
	}
	keys, err := want.keys(column)
	if err != nil {
		return err
	}
	expGroups, err := group.ByKey(pts, keys)
	if err != nil {
		return err
	}
	got, err := vt.PointsByAttributes()
	if err != nil {
		return err
	}
	exp := group.Canonical(expGroups, group.ComparePoint)
	if diff := cmp.Diff(exp, got, vt.ulpEqual()); diff != "" {
		return check.Mismatch(o.Msg("Point attributes not accurate by type"), diff)
	}
	return nil
}

// SizedPoint is a scatter point with its marker radius in points.
type SizedPoint struct {
	plotter.XY
	Size float64
}

// SortCollectionByMarkerSize returns every scatter point ordered by marker
// size. Points of equal size keep their draw order.
func (vt *Tester) SortCollectionByMarkerSize() ([]SizedPoint, error) {
	pts, err := extract.Points(vt.Axes())
	if err != nil {
		return nil, err
	}
	out := make([]SizedPoint, len(pts))
	for i, p := range pts {
		out[i] = SizedPoint{XY: p.XY, Size: p.Attr.Size}
	}
	slices.SortStableFunc(out, func(a, b SizedPoint) int {
		switch {
		case a.Size < b.Size:
			return -1
		case a.Size > b.Size:
			return 1
		}
		return 0
	})
	return out, nil
}

// AssertCollectionSortedByMarkerSize checks that ordering the scatter
// points by marker size gives the Point geometries of want ordered by
// column. Coordinates are compared to the configured number of decimals.
// An empty column skips the check. Message ({0}: column) defaults to
// "Markersize not based on {0} values".
func (vt *Tester) AssertCollectionSortedByMarkerSize(want Frame, column string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 || column == "" {
		return nil
	}
	pts, err := want.points()
	if err != nil {
		return err
	}
	idx, err := want.order(column)
	if err != nil {
		return err
	}
	got, err := vt.SortCollectionByMarkerSize()
	if err != nil {
		return err
	}

	wx := make([]float64, len(idx))
	wy := make([]float64, len(idx))
	for i, r := range idx {
		wx[i], wy[i] = pts[r].X, pts[r].Y
	}
	gx := make([]float64, len(got))
	gy := make([]float64, len(got))
	for i, p := range got {
		gx[i], gy[i] = p.X, p.Y
	}

	msg := check.Format(o.Msg("Markersize not based on {0} values"), column)
	dec := vt.Config().GetMarkerDecimals()
	if err := compare.Decimal(gx, wx, dec); err != nil {
		return check.Mismatch(msg, "x: "+err.Error())
	}
	if err := compare.Decimal(gy, wy, dec); err != nil {
		return check.Mismatch(msg, "y: "+err.Error())
	}
	return nil
}
