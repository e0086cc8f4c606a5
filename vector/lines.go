package vector

import (
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/extract"
	"github.com/banshee-data/plotcheck/internal/group"
)

// Lines returns every visible line on the Axes, sorted.
func (vt *Tester) Lines() [][]plotter.XY {
	return group.SortPaths(extract.Lines(vt.Axes()))
}

// LinesByCollection returns the visible lines grouped by the collection
// they were added in, in canonical order.
func (vt *Tester) LinesByCollection() [][][]plotter.XY {
	return group.Canonical(extract.LinesByCollection(vt.Axes()), group.ComparePath)
}

// LinesByAttributes groups the visible lines by colour, width and dash
// pattern and returns the groups in canonical order.
func (vt *Tester) LinesByAttributes() ([][][]plotter.XY, error) {
	var paths [][]plotter.XY
	var attrs []group.Attr
	for _, p := range vt.Axes().Primitives() {
		if p.Kind != figure.KindLine {
			continue
		}
		l, _ := p.Line()
		if l.Width <= 0 {
			continue
		}
		paths = append(paths, l.XYs)
		attrs = append(attrs, extract.LineAttr(l))
	}
	groups, err := group.ByAttr(paths, attrs)
	if err != nil {
		return nil, err
	}
	return group.Canonical(groups, group.ComparePath), nil
}

// AssertLines checks that the visible lines are exactly the LineString and
// MultiLineString parts of want, in any order. Empty geometries are
// ignored and an empty Frame skips the check. Message defaults to
// "Incorrect Line Data".
func (vt *Tester) AssertLines(want Frame, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 {
		return nil
	}
	exp, _, err := want.lines()
	if err != nil {
		return err
	}
	if diff := cmp.Diff(group.SortPaths(exp), vt.Lines(), vt.ulpEqual()); diff != "" {
		return check.Mismatch(o.Msg("Incorrect Line Data"), diff)
	}
	return nil
}

// AssertLinesGroupedByType checks that lines sharing a value in column of
// want are drawn with the same colour, width and dash pattern, and lines
// of different values are not. Message defaults to "Line attributes not
// accurate by type".
func (vt *Tester) AssertLinesGroupedByType(want Frame, column string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want.Len() == 0 || column == "" {
		return nil
	}
	paths, rows, err := want.lines()
	if err != nil {
		return err
	}
	keys, err := want.keys(column)
	if err != nil {
		return err
	}
	expGroups, err := group.ByKey(paths, keysAt(keys, rows))
	if err != nil {
		return err
	}
	got, err := vt.LinesByAttributes()
	if err != nil {
		return err
	}
	exp := group.Canonical(expGroups, group.ComparePath)
	if diff := cmp.Diff(exp, got, vt.ulpEqual()); diff != "" {
		return check.Mismatch(o.Msg("Line attributes not accurate by type"), diff)
	}
	return nil
}
