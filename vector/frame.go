package vector

import (
	"cmp"
	"slices"
	"strconv"

	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/check"
)

// Geometry is a spatial feature of a Frame.
type Geometry interface {
	// GeometryType names the concrete type, e.g. "Point".
	GeometryType() string
	// IsEmpty reports whether the geometry has no coordinates.
	IsEmpty() bool
}

// Point is a single location.
type Point plotter.XY

// LineString is an open polyline.
type LineString []plotter.XY

// MultiLineString is a feature made of several polylines.
type MultiLineString []LineString

// Polygon is an area bounded by a closed exterior ring. Holes are kept for
// completeness; only exteriors are compared.
type Polygon struct {
	Exterior []plotter.XY
	Holes    [][]plotter.XY
}

// MultiPolygon is a feature made of several polygons.
type MultiPolygon []Polygon

func (Point) GeometryType() string { return "Point" }
func (LineString) GeometryType() string { return "LineString" }
func (MultiLineString) GeometryType() string { return "MultiLineString" }
func (Polygon) GeometryType() string { return "Polygon" }
func (MultiPolygon) GeometryType() string { return "MultiPolygon" }

func (Point) IsEmpty() bool { return false }
func (l LineString) IsEmpty() bool { return len(l) == 0 }
func (p Polygon) IsEmpty() bool { return len(p.Exterior) == 0 }
func (m MultiPolygon) IsEmpty() bool { return len(m) == 0 }
func (m MultiLineString) IsEmpty() bool {
	for _, l := range m {
		if len(l) > 0 {
			return false
		}
	}
	return true
}

// Frame is an expected vector dataset: one geometry per row plus named
// attribute columns of the same length. A Frame is never modified.
type Frame struct {
	Geometry []Geometry
	Floats   map[string][]float64
	Strings  map[string][]string
}

// Len returns the number of rows.
func (f Frame) Len() int { return len(f.Geometry) }

// keys returns column as grouping keys, one per row.
func (f Frame) keys(column string) ([]string, error) {
	if c, ok := f.Strings[column]; ok {
		if len(c) != f.Len() {
			return nil, check.Usagef("column %q has %d values for %d geometries", column, len(c), f.Len())
		}
		return c, nil
	}
	if c, ok := f.Floats[column]; ok {
		if len(c) != f.Len() {
			return nil, check.Usagef("column %q has %d values for %d geometries", column, len(c), f.Len())
		}
		out := make([]string, len(c))
		for i, v := range c {
			out[i] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		return out, nil
	}
	return nil, check.Usagef("column %q not found", column)
}

// order returns the row indices sorted by column, keeping ties in row
// order.
func (f Frame) order(column string) ([]int, error) {
	idx := make([]int, f.Len())
	for i := range idx {
		idx[i] = i
	}
	if c, ok := f.Floats[column]; ok {
		if len(c) != f.Len() {
			return nil, check.Usagef("column %q has %d values for %d geometries", column, len(c), f.Len())
		}
		slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(c[a], c[b]) })
		return idx, nil
	}
	keys, err := f.keys(column)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(keys[a], keys[b]) })
	return idx, nil
}

// points returns every geometry as a point. Any other geometry type is a
// usage error.
func (f Frame) points() ([]plotter.XY, error) {
	out := make([]plotter.XY, 0, f.Len())
	for i, g := range f.Geometry {
		p, ok := g.(Point)
		if !ok {
			return nil, check.Usagef("geometry %d is a %s, want Point", i, typeName(g))
		}
		out = append(out, plotter.XY(p))
	}
	return out, nil
}

// lines flattens line geometries into one path per part, skipping empty
// geometries. rows holds the source row of each path.
func (f Frame) lines() (paths [][]plotter.XY, rows []int, err error) {
	for i, g := range f.Geometry {
		if g == nil || g.IsEmpty() {
			continue
		}
		switch l := g.(type) {
		case LineString:
			paths = append(paths, l)
			rows = append(rows, i)
		case MultiLineString:
			for _, part := range l {
				if len(part) == 0 {
					continue
				}
				paths = append(paths, part)
				rows = append(rows, i)
			}
		default:
			return nil, nil, check.Usagef("geometry %d is a %s, want LineString or MultiLineString", i, typeName(g))
		}
	}
	return paths, rows, nil
}

// rings flattens polygon geometries into one exterior ring per part.
// rows holds the source row of each ring.
func (f Frame) rings() (rings [][]plotter.XY, rows []int, err error) {
	for i, g := range f.Geometry {
		switch p := g.(type) {
		case Polygon:
			rings = append(rings, p.Exterior)
			rows = append(rows, i)
		case MultiPolygon:
			for _, part := range p {
				rings = append(rings, part.Exterior)
				rows = append(rows, i)
			}
		default:
			return nil, nil, check.Usagef("geometry %d is a %s, want Polygon or MultiPolygon", i, typeName(g))
		}
	}
	return rings, rows, nil
}

func typeName(g Geometry) string {
	if g == nil {
		return "nil geometry"
	}
	return g.GeometryType()
}

// keysAt returns the key of each row in rows.
func keysAt(keys []string, rows []int) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = keys[r]
	}
	return out
}
