package vector

import (
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/extract"
	"github.com/banshee-data/plotcheck/internal/group"
)

// Polygons returns the exterior ring of every polygon on the Axes, sorted.
func (vt *Tester) Polygons() [][]plotter.XY {
	return group.SortPaths(extract.Polygons(vt.Axes()))
}

// PolygonsByAttributes groups polygon rings by fill colour, outline width
// and style and returns the groups in canonical order.
func (vt *Tester) PolygonsByAttributes() ([][][]plotter.XY, error) {
	var rings [][]plotter.XY
	var attrs []group.Attr
	for _, p := range vt.Axes().Primitives() {
		if p.Kind != figure.KindPolygon {
			continue
		}
		pg, _ := p.Polygon()
		if len(pg.XYs) == 0 {
			continue
		}
		a, _ := extract.ThumbAttr(pg)
		rings = append(rings, pg.XYs[0])
		attrs = append(attrs, a)
	}
	groups, err := group.ByAttr(rings, attrs)
	if err != nil {
		return nil, err
	}
	return group.Canonical(groups, group.ComparePath), nil
}

// AssertPolygons checks that the polygon exteriors on the Axes are exactly
// want, in any order. With Decimals set, vertices need only agree to that
// many decimal places. A nil want skips the check; an empty want, or one
// holding an empty ring, is a usage error. Message defaults to "Incorrect
// Polygon Data".
func (vt *Tester) AssertPolygons(want [][]plotter.XY, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want == nil {
		return nil
	}
	if len(want) == 0 {
		return check.Usagef("empty polygon list passed to AssertPolygons")
	}
	for i, r := range want {
		if len(r) == 0 {
			return check.Usagef("polygon %d is empty", i)
		}
	}

	msg := o.Msg("Incorrect Polygon Data")
	got := vt.Polygons()
	if len(got) != len(want) {
		return check.Mismatch(msg, "polygon count differs")
	}
	eq := vt.ulpEqual()
	if o.Decimals > 0 {
		eq = decimalEqual(o.Decimals)
	}
	if diff := cmp.Diff(group.SortPaths(want), got, eq); diff != "" {
		return check.Mismatch(msg, diff)
	}
	return nil
}

// AssertPolygonFrame is AssertPolygons for the Polygon and MultiPolygon
// geometries of want, each part contributing its exterior ring. An empty
// Frame is a usage error.
func (vt *Tester) AssertPolygonFrame(want Frame, opts ...check.Options) error {
	if want.Len() == 0 {
		return check.Usagef("empty frame passed to AssertPolygonFrame")
	}
	rings, _, err := want.rings()
	if err != nil {
		return err
	}
	if rings == nil {
		rings = [][]plotter.XY{}
	}
	return vt.AssertPolygons(rings, opts...)
}

// AssertPolygonsGroupedByType checks that polygons sharing a value in
// column of want are drawn alike and polygons of different values are
// not. Message defaults to "Polygon attributes not accurate by type".
func (vt *Tester) AssertPolygonsGroupedByType(want Frame, column string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 || column == "" {
		return nil
	}
	rings, rows, err := want.rings()
	if err != nil {
		return err
	}
	keys, err := want.keys(column)
	if err != nil {
		return err
	}
	expGroups, err := group.ByKey(rings, keysAt(keys, rows))
	if err != nil {
		return err
	}
	got, err := vt.PolygonsByAttributes()
	if err != nil {
		return err
	}
	exp := group.Canonical(expGroups, group.ComparePath)
	if diff := cmp.Diff(exp, got, vt.ulpEqual()); diff != "" {
		return check.Mismatch(o.Msg("Polygon attributes not accurate by type"), diff)
	}
	return nil
}
