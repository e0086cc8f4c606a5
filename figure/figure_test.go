package figure

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestSubplots_LayoutAndCurrent(t *testing.T) {
	f, axes := Subplots(2, 3)
	require.Len(t, axes, 6)
	assert.Same(t, axes[5], f.CurrentAxes())

	// Row 0 is above row 1.
	assert.Greater(t, axes[0].Position.YMin, axes[3].Position.YMin)
	// Columns go left to right.
	assert.Less(t, axes[0].Position.XMax, axes[2].Position.XMax)

	f.SetCurrent(axes[1])
	assert.Same(t, axes[1], f.CurrentAxes())

	other := New().CurrentAxes()
	f.SetCurrent(other)
	assert.Same(t, axes[1], f.CurrentAxes(), "axes from another figure must be ignored")
}

func TestCurrentAxes_CreatesOnEmptyFigure(t *testing.T) {
	f := New()
	ax := f.CurrentAxes()
	require.NotNil(t, ax)
	assert.Equal(t, DefaultPosition, ax.Position)
	assert.Same(t, f, ax.Figure())
	assert.Len(t, f.Axes(), 1)
}

func TestAxes_RecordsPrimitivesInOrder(t *testing.T) {
	ax := New().CurrentAxes()

	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	sc, err := plotter.NewScatter(plotter.XYs{{X: 2, Y: 3}})
	require.NoError(t, err)
	bars, err := plotter.NewBarChart(plotter.Values{1, 2}, vg.Points(10))
	require.NoError(t, err)

	ax.Add(line, plotter.NewGrid(), sc)
	ax.AddCollection(bars)

	prims := ax.Primitives()
	require.Len(t, prims, 3, "grid is drawn but not recorded")
	assert.Equal(t, KindLine, prims[0].Kind)
	assert.Equal(t, KindScatter, prims[1].Kind)
	assert.Equal(t, KindBars, prims[2].Kind)
	assert.NotEqual(t, prims[0].Collection, prims[1].Collection)

	l, ok := prims[0].Line()
	assert.True(t, ok)
	assert.Same(t, line, l)
	_, ok = prims[0].Scatter()
	assert.False(t, ok)

	lo, hi := ax.XLim()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
}

func TestAxes_AddCollectionSharesID(t *testing.T) {
	ax := New().CurrentAxes()
	a, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.NoError(t, err)
	b, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 1}})
	require.NoError(t, err)
	c, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 2}, {X: 1, Y: 2}})
	require.NoError(t, err)

	ax.AddCollection(a, b)
	ax.Add(c)

	prims := ax.Primitives()
	require.Len(t, prims, 3)
	assert.Equal(t, prims[0].Collection, prims[1].Collection)
	assert.NotEqual(t, prims[0].Collection, prims[2].Collection)
}

func TestAddPolygons(t *testing.T) {
	ax := New().CurrentAxes()
	outline := draw.LineStyle{Color: color.Black, Width: vg.Points(1)}
	a := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 0}}
	b := plotter.XYs{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 5}}

	pgs, err := ax.AddPolygons(color.White, outline, a, b)
	require.NoError(t, err)
	require.Len(t, pgs, 2)
	assert.Equal(t, color.White, pgs[1].Color)

	prims := ax.Primitives()
	require.Len(t, prims, 2)
	assert.Equal(t, KindPolygon, prims[0].Kind)
	assert.Equal(t, prims[0].Collection, prims[1].Collection)

	_, err = ax.AddPolygons(color.White, outline, plotter.XYs{{X: math.NaN(), Y: 0}})
	assert.Error(t, err)
	assert.Len(t, ax.Primitives(), 2)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "histogram", KindHistogram.String())
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestLegends(t *testing.T) {
	ax := New().CurrentAxes()
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	ax.Add(line)

	first := ax.NewLegend("Legend")
	first.Add("data", line)
	second := ax.NewLegend("Other")
	second.Add("more", line)

	legends := ax.Legends()
	require.Len(t, legends, 2)
	assert.Same(t, &ax.Plot.Legend, legends[0].Plot)
	assert.Equal(t, "Other", legends[1].Title)
	require.Len(t, legends[0].Entries(), 1)
	assert.Equal(t, "data", legends[0].Entries()[0].Label)

	data, rects := ax.Extents()
	require.Len(t, rects, 2)
	assert.Greater(t, float64(data.Max.X-data.Min.X), 0.0)
}

func TestAddImage(t *testing.T) {
	ax := New().CurrentAxes()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	ax.AddImage(img, 0, 0, 2, 2)

	prims := ax.Primitives()
	require.Len(t, prims, 1)
	assert.Equal(t, KindImage, prims[0].Kind)
	require.NotNil(t, prims[0].Image)
	xmin, xmax, ymin, ymax := prims[0].Image.DataRange()
	assert.Equal(t, []float64{0, 2, 0, 2}, []float64{xmin, xmax, ymin, ymax})
}

func TestHideAxes(t *testing.T) {
	ax := New().CurrentAxes()
	assert.False(t, ax.AxesHidden())
	ax.HideAxes()
	assert.True(t, ax.AxesHidden())
}

func TestColors(t *testing.T) {
	assert.Nil(t, Colors(0))
	cs := Colors(3)
	require.Len(t, cs, 3)
	seen := map[color.Color]bool{}
	for _, c := range cs {
		seen[c] = true
	}
	assert.Len(t, seen, 3)
}

func TestSave(t *testing.T) {
	f, axes := Subplots(1, 2)
	f.Title = "Figure Title"
	f.AddText(0.5, 0.02, "caption")
	line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	axes[0].Add(line)
	axes[0].NewLegend("").Add("line", line)
	axes[1].Add(line)

	path := filepath.Join(t.TempDir(), "fig.png")
	require.NoError(t, f.Save(4*vg.Inch, 3*vg.Inch, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	svg := filepath.Join(t.TempDir(), "fig.svg")
	require.NoError(t, f.Save(4*vg.Inch, 3*vg.Inch, svg))
	data, err := os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")

	err = f.Save(4*vg.Inch, 3*vg.Inch, filepath.Join(t.TempDir(), "fig.gif"))
	assert.Error(t, err)
}
