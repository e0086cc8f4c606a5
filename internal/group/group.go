// Package group partitions extracted primitives into equivalence classes
// and puts the classes into a canonical order so that two groupings can be
// compared regardless of drawing order.
package group

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/plot/plotter"
)

// ErrMismatchedAttributeLength is returned when a per-primitive attribute
// array is neither a single broadcast value nor one value per primitive.
var ErrMismatchedAttributeLength = errors.New("mismatched attribute length")

// BroadcastOrExact returns vals stretched to length n. A single value is
// repeated n times; n values are returned as a copy; anything else is an
// error.
func BroadcastOrExact[T any](vals []T, n int) ([]T, error) {
	switch len(vals) {
	case n:
		out := make([]T, n)
		copy(out, vals)
		return out, nil
	case 1:
		out := make([]T, n)
		for i := range out {
			out[i] = vals[0]
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: got %d values, want 1 or %d", ErrMismatchedAttributeLength, len(vals), n)
}

// Attr is the visual identity of a primitive. Color is non-premultiplied
// RGBA in [0, 1]; Size is a marker radius or line width in points; Style
// encodes a marker shape or dash pattern.
type Attr struct {
	Color [4]float64
	Size  float64
	Style string
}

// ByAttr groups items sharing an identical Attr. Groups appear in order of
// first appearance; items keep their relative order.
func ByAttr[T any](items []T, attrs []Attr) ([][]T, error) {
	if len(items) != len(attrs) {
		return nil, fmt.Errorf("%w: %d items, %d attributes", ErrMismatchedAttributeLength, len(items), len(attrs))
	}
	return by(items, attrs), nil
}

// ByKey groups items by a caller-declared category.
func ByKey[T any, K comparable](items []T, keys []K) ([][]T, error) {
	if len(items) != len(keys) {
		return nil, fmt.Errorf("%w: %d items, %d keys", ErrMismatchedAttributeLength, len(items), len(keys))
	}
	return by(items, keys), nil
}

func by[T any, K comparable](items []T, keys []K) [][]T {
	index := make(map[K]int)
	var groups [][]T
	for i, it := range items {
		g, ok := index[keys[i]]
		if !ok {
			g = len(groups)
			index[keys[i]] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], it)
	}
	return groups
}

// Canonical sorts the members of each group with compare, then sorts the
// groups lexicographically. The input is not modified.
func Canonical[T any](groups [][]T, compare func(a, b T) int) [][]T {
	out := make([][]T, len(groups))
	for i, g := range groups {
		out[i] = slices.Clone(g)
		slices.SortFunc(out[i], compare)
	}
	slices.SortFunc(out, func(a, b []T) int {
		return slices.CompareFunc(a, b, compare)
	})
	return out
}

// ComparePoint orders points by x, then y.
func ComparePoint(a, b plotter.XY) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}

// ComparePath orders vertex lists lexicographically by ComparePoint.
func ComparePath(a, b []plotter.XY) int {
	return slices.CompareFunc(a, b, ComparePoint)
}

// SortPoints returns a sorted copy of pts.
func SortPoints(pts []plotter.XY) []plotter.XY {
	out := slices.Clone(pts)
	slices.SortFunc(out, ComparePoint)
	return out
}

// SortPaths returns a sorted copy of paths.
func SortPaths(paths [][]plotter.XY) [][]plotter.XY {
	out := slices.Clone(paths)
	slices.SortFunc(out, ComparePath)
	return out
}
