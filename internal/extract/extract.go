// Package extract walks the primitives recorded on a figure.Axes and
// rebuilds the data they were drawn from: point tables, line paths, polygon
// rings, histogram bins, legend entries and raster arrays. It only reads.
package extract

import (
	"errors"
	"math"
	"slices"

	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/group"
)

// ErrNoPrimitive is returned when an Axes lacks the primitive type an
// extraction needs, such as an image on a blank plot.
var ErrNoPrimitive = errors.New("no primitive found")

// Path is an ordered list of vertices.
type Path = []plotter.XY

// Table holds point coordinates as two parallel columns.
type Table struct {
	X, Y []float64
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.X) }

// Points returns the rows as XY pairs.
func (t Table) Points() []plotter.XY {
	pts := make([]plotter.XY, len(t.X))
	for i := range t.X {
		pts[i] = plotter.XY{X: t.X[i], Y: t.Y[i]}
	}
	return pts
}

// Sorted returns a copy of t ordered by x, then y.
func (t Table) Sorted() Table {
	return FromPoints(group.SortPoints(t.Points()))
}

// FromPoints builds a Table from XY pairs.
func FromPoints(pts []plotter.XY) Table {
	t := Table{X: make([]float64, len(pts)), Y: make([]float64, len(pts))}
	for i, p := range pts {
		t.X[i], t.Y[i] = p.X, p.Y
	}
	return t
}

// XY collects point coordinates from every data primitive on ax in draw
// order: line and scatter vertices, bar tops at the bar centre and
// histogram bins at their midpoint. With pointsOnly set, only scatter
// primitives contribute. Rows with a NaN coordinate are dropped, and rows
// outside the visible x range are cropped so that stray annotation
// artefacts do not count as data.
func XY(ax *figure.Axes, pointsOnly bool) Table {
	var pts []plotter.XY
	for _, p := range ax.Primitives() {
		switch p.Kind {
		case figure.KindScatter:
			s, _ := p.Scatter()
			pts = append(pts, s.XYs...)
		case figure.KindLine:
			if pointsOnly {
				continue
			}
			l, _ := p.Line()
			pts = append(pts, l.XYs...)
		case figure.KindBars, figure.KindHistogram:
			if pointsOnly {
				continue
			}
			bc, isBars := p.Bars()
			horizontal := isBars && bc.Horizontal
			for _, b := range primitiveBins(p) {
				if horizontal {
					pts = append(pts, plotter.XY{X: b.Height, Y: b.Mid})
					continue
				}
				pts = append(pts, plotter.XY{X: b.Mid, Y: b.Height})
			}
		}
	}

	lo, hi := ax.XLim()
	t := Table{X: []float64{}, Y: []float64{}}
	for _, pt := range pts {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) {
			continue
		}
		if pt.X < lo || pt.X > hi {
			continue
		}
		t.X = append(t.X, pt.X)
		t.Y = append(t.Y, pt.Y)
	}
	return t
}

// Lines returns one path per visible line primitive in draw order. Lines
// with zero width draw nothing and are skipped.
func Lines(ax *figure.Axes) []Path {
	var out []Path
	for _, p := range ax.Primitives() {
		l, ok := p.Line()
		if !ok || l.Width <= 0 {
			continue
		}
		out = append(out, slices.Clone([]plotter.XY(l.XYs)))
	}
	return out
}

// LinesByCollection groups visible line paths by the collection they were
// added in.
func LinesByCollection(ax *figure.Axes) [][]Path {
	var (
		paths []Path
		keys  []int
	)
	for _, p := range ax.Primitives() {
		l, ok := p.Line()
		if !ok || l.Width <= 0 {
			continue
		}
		paths = append(paths, slices.Clone([]plotter.XY(l.XYs)))
		keys = append(keys, p.Collection)
	}
	groups, _ := group.ByKey(paths, keys)
	return groups
}

// Polygons returns the exterior ring of every polygon primitive. Holes
// are ignored.
func Polygons(ax *figure.Axes) []Path {
	var out []Path
	for _, p := range ax.Primitives() {
		pg, ok := p.Polygon()
		if !ok || len(pg.XYs) == 0 {
			continue
		}
		out = append(out, slices.Clone([]plotter.XY(pg.XYs[0])))
	}
	return out
}
