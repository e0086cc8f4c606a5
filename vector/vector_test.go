package vector

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/testutil"
)

var (
	green = color.RGBA{G: 128, A: 255}
	brown = color.RGBA{R: 165, G: 42, B: 42, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

// plantFrame interleaves two categories so that row order differs from
// category order.
func plantFrame() Frame {
	return Frame{
		Geometry: []Geometry{
			Point{X: 1, Y: 1}, Point{X: 3, Y: 5}, Point{X: 2, Y: 2}, Point{X: 5, Y: 4}, Point{X: 4, Y: 3},
		},
		Strings: map[string][]string{"attr": {"Tree", "Bush", "Tree", "Bush", "Tree"}},
		Floats:  map[string][]float64{"height": {5, 1, 6, 2, 7}},
	}
}

func newAxes() *figure.Axes {
	_, axes := figure.Subplots(1, 1)
	return axes[0]
}

// plantAxes draws each category as its own scatter, Bush before Tree,
// with Tree markers twice the size of Bush markers.
func plantAxes(t *testing.T) *figure.Axes {
	t.Helper()
	ax := newAxes()
	bush := testutil.Scatter(t, testutil.XYs([2]float64{3, 5}, [2]float64{5, 4}), brown)
	bush.GlyphStyle = testutil.Glyph(brown, 3, draw.CircleGlyph{})
	tree := testutil.Scatter(t, testutil.XYs([2]float64{1, 1}, [2]float64{2, 2}, [2]float64{4, 3}), green)
	tree.GlyphStyle = testutil.Glyph(green, 6, draw.CircleGlyph{})
	ax.Add(bush, tree)
	return ax
}

// flatPlantAxes draws every point in one style, in frame row order.
func flatPlantAxes(t *testing.T) *figure.Axes {
	t.Helper()
	ax := newAxes()
	pts, err := plantFrame().points()
	require.NoError(t, err)
	ax.Add(testutil.Scatter(t, pts, blue))
	return ax
}

func TestAssertPointsGroupedByType(t *testing.T) {
	assert.NoError(t, New(plantAxes(t)).AssertPointsGroupedByType(plantFrame(), "attr"))
	assert.ErrorIs(t, New(plantAxes(t)).AssertPointsGroupedByType(plantFrame(), "height"), check.ErrMismatch,
		"a distinct value per point is a different grouping")

	err := New(flatPlantAxes(t)).AssertPointsGroupedByType(plantFrame(), "attr")
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrMismatch)
	assert.Equal(t, "Point attributes not accurate by type", err.Error())

	var f *check.Failure
	require.ErrorAs(t, err, &f)
	assert.NotEmpty(t, f.Detail)

	assert.NoError(t, New(flatPlantAxes(t)).AssertPointsGroupedByType(Frame{}, "attr"))
	assert.NoError(t, New(flatPlantAxes(t)).AssertPointsGroupedByType(plantFrame(), ""))
	assert.ErrorIs(t, New(plantAxes(t)).AssertPointsGroupedByType(plantFrame(), "species"), check.ErrUsage)
}

func TestPointsByAttributes_OrderIndependent(t *testing.T) {
	a := plantAxes(t)

	b := newAxes()
	tree := testutil.Scatter(t, testutil.XYs([2]float64{4, 3}, [2]float64{1, 1}, [2]float64{2, 2}), green)
	tree.GlyphStyle = testutil.Glyph(green, 6, draw.CircleGlyph{})
	bush := testutil.Scatter(t, testutil.XYs([2]float64{5, 4}, [2]float64{3, 5}), brown)
	bush.GlyphStyle = testutil.Glyph(brown, 3, draw.CircleGlyph{})
	b.Add(tree, bush)

	ga, err := New(a).PointsByAttributes()
	require.NoError(t, err)
	gb, err := New(b).PointsByAttributes()
	require.NoError(t, err)
	assert.Equal(t, ga, gb)
	require.Len(t, ga, 2)
	assert.Equal(t, testutil.XYs([2]float64{1, 1}, [2]float64{2, 2}, [2]float64{4, 3}), plotter.XYs(ga[0]))
}

func TestPointsByAttributes_StyleFunc(t *testing.T) {
	ax := newAxes()
	s := testutil.Scatter(t, testutil.XYs([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{2, 2}), red)
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		if i == 1 {
			return testutil.Glyph(blue, 2, draw.SquareGlyph{})
		}
		return testutil.Glyph(red, 2, draw.CircleGlyph{})
	}
	ax.Add(s)

	groups, err := New(ax).PointsByAttributes()
	require.NoError(t, err)
	assert.Equal(t, [][]plotter.XY{
		{{X: 0, Y: 0}, {X: 2, Y: 2}},
		{{X: 1, Y: 1}},
	}, groups)
}

func TestSortCollectionByMarkerSize(t *testing.T) {
	got, err := New(plantAxes(t)).SortCollectionByMarkerSize()
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, plotter.XY{X: 3, Y: 5}, got[0].XY)
	assert.Equal(t, float64(vg.Points(3)), got[0].Size)
	assert.Equal(t, plotter.XY{X: 4, Y: 3}, got[4].XY)
}

func TestAssertCollectionSortedByMarkerSize(t *testing.T) {
	vt := New(plantAxes(t))
	assert.NoError(t, vt.AssertCollectionSortedByMarkerSize(plantFrame(), "attr"))
	assert.NoError(t, vt.AssertCollectionSortedByMarkerSize(plantFrame(), ""))

	err := New(flatPlantAxes(t)).AssertCollectionSortedByMarkerSize(plantFrame(), "attr")
	require.Error(t, err)
	assert.ErrorIs(t, err, check.ErrMismatch)
	assert.Equal(t, "Markersize not based on attr values", err.Error())

	// Sorting by height puts Bush rows first as well.
	assert.NoError(t, vt.AssertCollectionSortedByMarkerSize(plantFrame(), "height"))

	err = vt.AssertCollectionSortedByMarkerSize(plantFrame(), "attr", check.Options{Message: "sizes must follow {0}"})
	assert.NoError(t, err)
	err = New(flatPlantAxes(t)).AssertCollectionSortedByMarkerSize(plantFrame(), "attr", check.Options{Message: "sizes must follow {0}"})
	assert.Equal(t, "sizes must follow attr", err.Error())
}

func TestAssertPoints(t *testing.T) {
	vt := New(plantAxes(t))
	assert.NoError(t, vt.AssertPoints(plantFrame()))
	assert.NoError(t, vt.AssertPoints(Frame{}))

	shifted := plantFrame()
	for i, g := range shifted.Geometry {
		p := g.(Point)
		shifted.Geometry[i] = Point{X: p.X + 1, Y: p.Y + 1}
	}
	err := vt.AssertPoints(shifted)
	assert.ErrorIs(t, err, check.ErrMismatch)
	assert.Equal(t, "Incorrect Point Data", err.Error())

	err = vt.AssertPoints(shifted, check.Options{Message: "Test message"})
	assert.Equal(t, "Test message", err.Error())

	longer := Frame{Geometry: append(plantFrame().Geometry, shifted.Geometry...)}
	err = vt.AssertPoints(longer)
	assert.ErrorIs(t, err, check.ErrMismatch)
	assert.Equal(t, "points_expected's length does not match the stored data's length.", err.Error())

	lines := Frame{Geometry: []Geometry{LineString{{X: 0, Y: 0}, {X: 1, Y: 1}}}}
	assert.ErrorIs(t, vt.AssertPoints(lines), check.ErrUsage)
}

func TestAssertPoints_MixedPlot(t *testing.T) {
	ax := plantAxes(t)
	ax.AddCollection(testutil.Line(t, testutil.XYs([2]float64{0, 0}, [2]float64{5, 5}), red))
	assert.NoError(t, New(ax).AssertPoints(plantFrame()))
}

func TestAssertLegendNoOverlayContent(t *testing.T) {
	ax := newAxes()
	s := testutil.Scatter(t, testutil.XYs([2]float64{0, 0}, [2]float64{1, 1}), green)
	ax.Add(s)
	ax.NewLegend("Legend").Add("Tree", s)
	err := New(ax).AssertLegendNoOverlayContent()
	require.Error(t, err)
	assert.Equal(t, "Legend overlays plot contents", err.Error())
}
