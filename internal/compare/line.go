package compare

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/plot/plotter"
)

// DefaultLineTolerance is the absolute tolerance on slope, intercept and
// x-extent used when matching lines.
const DefaultLineTolerance = 1e-4

// isclose mirrors the usual float closeness test: an absolute tolerance
// with a tiny relative floor.
func isclose(a, b, absTol float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, absTol, 1e-9)
}

// SlopeIntercept returns the mean of the consecutive-vertex slopes of
// path and the intercept implied by the first vertex. ok is false for
// paths with fewer than two vertices.
func SlopeIntercept(path []plotter.XY) (slope, intercept float64, ok bool) {
	if len(path) < 2 {
		return 0, 0, false
	}
	var sum float64
	for i := 0; i+1 < len(path); i++ {
		sum += (path[i+1].Y - path[i].Y) / (path[i+1].X - path[i].X)
	}
	slope = sum / float64(len(path)-1)
	return slope, path[0].Y - path[0].X*slope, true
}

// Extent is a closed x interval.
type Extent struct {
	Min, Max float64
}

// XExtent returns the x interval spanned by pts. ok is false when pts is
// empty.
func XExtent(pts []plotter.XY) (Extent, bool) {
	if len(pts) == 0 {
		return Extent{}, false
	}
	e := Extent{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, p := range pts {
		e.Min = math.Min(e.Min, p.X)
		e.Max = math.Max(e.Max, p.X)
	}
	return e, true
}

// Covers reports whether e spans data, allowing tol of slack at each end.
func (e Extent) Covers(data Extent, tol float64) bool {
	lo := isclose(e.Min, data.Min, tol) || e.Min <= data.Min
	hi := isclose(e.Max, data.Max, tol) || e.Max >= data.Max
	return lo && hi
}

// MatchLine looks for a path with the given slope and intercept. found is
// true when one exists. When cover is non-nil, covers is true only if a
// matching path also spans *cover; otherwise covers mirrors found.
func MatchLine(paths [][]plotter.XY, slope, intercept, tol float64, cover *Extent) (found, covers bool) {
	for _, path := range paths {
		s, b, ok := SlopeIntercept(path)
		if !ok || !isclose(s, slope, tol) || !isclose(b, intercept, tol) {
			continue
		}
		found = true
		if cover == nil {
			return true, true
		}
		if e, _ := XExtent(path); e.Covers(*cover, tol) {
			return true, true
		}
	}
	return found, false
}
