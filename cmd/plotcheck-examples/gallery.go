package main

import (
	"image/color"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotcheck/autograde"
	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/notebook"
	"github.com/banshee-data/plotcheck/raster"
	"github.com/banshee-data/plotcheck/timeseries"
	"github.com/banshee-data/plotcheck/vector"
)

// example is one student plot and the instructor's grading of it.
type example struct {
	name  string
	build func() (*figure.Figure, error)
	grade func(run *autograde.Run, ax *figure.Axes, cfg *check.Config)
}

// draw builds the example's figure and picks the Axes to grade the way a
// notebook cell hands them over.
func (ex example) draw(which string) (*figure.Figure, []*figure.Axes, error) {
	fig, err := ex.build()
	if err != nil {
		return nil, nil, err
	}
	axes, err := notebook.ConvertAxes(fig, which)
	if err != nil {
		return nil, nil, err
	}
	return fig, axes, nil
}

func gallery() []example {
	return []example{
		{"rainfall-runoff", buildRunoff, gradeRunoff},
		{"growth-histogram", buildGrowth, gradeGrowth},
		{"plant-survey", buildPlants, gradePlants},
		{"land-cover", buildLandCover, gradeLandCover},
		{"boulder-precipitation", buildPrecip, gradePrecip},
	}
}

func newFigure(title, xlabel, ylabel string) (*figure.Figure, *figure.Axes) {
	fig, axes := figure.Subplots(1, 1)
	ax := axes[0]
	ax.Plot.Title.Text = title
	ax.Plot.X.Label.Text = xlabel
	ax.Plot.Y.Label.Text = ylabel
	return fig, ax
}

func runoffData() (xs, ys []float64) {
	for i := 0; i < 20; i++ {
		x := float64(i)
		xs = append(xs, x)
		ys = append(ys, 2*x+0.5*math.Sin(x))
	}
	return xs, ys
}

func buildRunoff() (*figure.Figure, error) {
	fig, ax := newFigure("Rainfall vs Runoff", "Rainfall (mm)", "Runoff (mm)")
	xs, ys := runoffData()
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)
	x0, x1 := xs[0], xs[len(xs)-1]
	fit, err := plotter.NewLine(plotter.XYs{{X: x0, Y: slope*x0 + intercept}, {X: x1, Y: slope*x1 + intercept}})
	if err != nil {
		return nil, err
	}
	fit.Color = color.Black
	ax.Add(s, fit)
	fig.AddText(0.8, 0.05, "Source: Boulder Creek gauge")
	return fig, nil
}

func gradeRunoff(run *autograde.Run, ax *figure.Axes, cfg *check.Config) {
	pt := check.NewWithConfig(ax, cfg)
	xs, ys := runoffData()
	run.Test("plot type", 1, func() error { return pt.AssertPlotType("scatter") })
	run.Test("title", 1, func() error { return pt.AssertTitleContains(check.All("rainfall", "runoff")) })
	run.Test("x label", 1, func() error { return pt.AssertAxisLabelContains(check.All("rainfall")) })
	run.Test("y label", 1, func() error {
		return pt.AssertAxisLabelContains([][]string{{"runoff", "discharge"}}, check.Options{Axis: "y"})
	})
	run.Test("caption", 1, func() error { return pt.AssertCaptionContains(check.All("source")) })
	run.Test("scatter data", 2, func() error {
		return pt.AssertXYData(check.Table{Floats: map[string][]float64{"x": xs, "y": ys}}, check.Options{PointsOnly: true})
	})
	run.Test("regression line", 2, func() error { return pt.AssertLinesOfType([]string{"regression"}) })
	run.Test("one-to-one line", 1, func() error { return pt.AssertLinesOfType([]string{"onetoone"}) },
		autograde.Messages{Error: "Add a 1:1 reference line"})
}

func growthValues() plotter.Values {
	vs := make(plotter.Values, 500)
	for i := range vs {
		vs[i] = math.Exp(float64(i) * 0.01)
	}
	return vs
}

func buildGrowth() (*figure.Figure, error) {
	fig, ax := newFigure("Population Growth", "Population", "Count")
	h, err := plotter.NewHist(growthValues(), 5)
	if err != nil {
		return nil, err
	}
	ax.Add(h)
	return fig, nil
}

func gradeGrowth(run *autograde.Run, ax *figure.Axes, cfg *check.Config) {
	pt := check.NewWithConfig(ax, cfg)
	run.Test("plot type", 1, func() error { return pt.AssertPlotType("bar") })
	run.Test("bin count", 1, func() error { return pt.AssertNumBins(5) })
	run.Test("bin heights", 2, func() error { return pt.AssertBinHeights([]float64{341, 68, 40, 28, 23}) })
}

var (
	treeColor = color.RGBA{G: 128, A: 255}
	bushColor = color.RGBA{R: 165, G: 42, B: 42, A: 255}
)

func plantFrame() vector.Frame {
	return vector.Frame{
		Geometry: []vector.Geometry{
			vector.Point{X: 1, Y: 1}, vector.Point{X: 3, Y: 5}, vector.Point{X: 2, Y: 2},
			vector.Point{X: 5, Y: 4}, vector.Point{X: 4, Y: 3},
		},
		Strings: map[string][]string{"type": {"Tree", "Bush", "Tree", "Bush", "Tree"}},
	}
}

func buildPlants() (*figure.Figure, error) {
	fig, ax := newFigure("Plant Survey", "Easting", "Northing")
	bush, err := plotter.NewScatter(plotter.XYs{{X: 3, Y: 5}, {X: 5, Y: 4}})
	if err != nil {
		return nil, err
	}
	bush.GlyphStyle = draw.GlyphStyle{Color: bushColor, Radius: vg.Points(3), Shape: draw.CircleGlyph{}}
	tree, err := plotter.NewScatter(plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 4, Y: 3}})
	if err != nil {
		return nil, err
	}
	tree.GlyphStyle = draw.GlyphStyle{Color: treeColor, Radius: vg.Points(6), Shape: draw.CircleGlyph{}}
	ax.Add(bush, tree)
	leg := ax.NewLegend("Plant type")
	leg.Add("Bush", bush)
	leg.Add("Tree", tree)
	return fig, nil
}

func gradePlants(run *autograde.Run, ax *figure.Axes, cfg *check.Config) {
	vt := vector.NewWithConfig(ax, cfg)
	want := plantFrame()
	run.Test("points", 2, func() error { return vt.AssertPoints(want) })
	run.Test("grouped by type", 2, func() error { return vt.AssertPointsGroupedByType(want, "type") })
	run.Test("sized by type", 1, func() error { return vt.AssertCollectionSortedByMarkerSize(want, "type") })
	run.Test("legend labels", 1, func() error { return vt.AssertLegendLabels([]string{"bush", "tree"}) })
}

// classGrid is a heat map grid with unit cells.
type classGrid [][]float64

func (g classGrid) Dims() (c, r int)   { return len(g[0]), len(g) }
func (g classGrid) Z(c, r int) float64 { return g[r][c] }
func (g classGrid) X(c int) float64    { return float64(c) }
func (g classGrid) Y(r int) float64    { return float64(r) }

var landCover = classGrid{{0, 1, 1}, {2, 2, 1}, {0, 0, 2}}

func buildLandCover() (*figure.Figure, error) {
	fig, ax := newFigure("Land Cover", "", "")
	pal := palette.Heat(3, 1)
	ax.Add(plotter.NewHeatMap(landCover, pal))

	cm := moreland.SmoothBlueRed()
	cm.SetMin(0)
	cm.SetMax(2)
	ax.AddColorbar(&plotter.ColorBar{ColorMap: cm})

	leg := ax.NewLegend("Class")
	for i, name := range []string{"Open Water", "Forest", "Developed"} {
		sw, err := plotter.NewPolygon(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}})
		if err != nil {
			return nil, err
		}
		sw.Color = pal.Colors()[i]
		leg.Add(name, sw)
	}
	ax.HideAxes()
	return fig, nil
}

func gradeLandCover(run *autograde.Run, ax *figure.Axes, cfg *check.Config) {
	rt := raster.NewWithConfig(ax, cfg)
	var flat []float64
	for _, row := range landCover {
		flat = append(flat, row...)
	}
	want := mat.NewDense(len(landCover), len(landCover[0]), flat)
	classes := [][]string{{"water"}, {"forest", "trees"}, {"developed", "urban"}}

	run.Test("image", 2, func() error {
		return rt.AssertImage([]*mat.Dense{want}, check.Options{Classified: true})
	})
	run.Test("legend accuracy", 2, func() error { return rt.AssertLegendAccuracyClassifiedImage(want, classes) })
	run.Test("colorbar", 1, func() error { return rt.AssertColorbarRange([]float64{0, 2}) })
	run.Test("full screen", 1, func() error { return rt.AssertImageFullScreen() })
	run.Test("axis off", 1, func() error { return rt.AssertAxisOff() })
}

var precipStart = time.Date(2013, time.January, 1, 0, 0, 0, 0, time.UTC)

func precipDays() []time.Time {
	days := make([]time.Time, 366)
	for i := range days {
		days[i] = precipStart.AddDate(0, 0, i)
	}
	return days
}

func buildPrecip() (*figure.Figure, error) {
	fig, ax := newFigure("Daily Precipitation - Boulder", "Date", "Precipitation (inches)")
	days := precipDays()
	pts := make(plotter.XYs, len(days))
	for i, d := range days {
		pts[i] = plotter.XY{X: float64(d.Unix()), Y: 0.1 * float64((i*7)%11)}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle.Color = color.RGBA{R: 128, B: 128, A: 255}
	ax.Add(s)
	ax.SetDateTicks(figure.DateTicks{
		Major:       figure.DateStep{Months: 1},
		Minor:       figure.DateStep{Days: 7},
		MajorFormat: "Jan",
	})
	return fig, nil
}

func gradePrecip(run *autograde.Run, ax *figure.Axes, cfg *check.Config) {
	tt := timeseries.NewWithConfig(ax, cfg)
	run.Test("month labels", 1, func() error { return tt.AssertXTicksReformatted(timeseries.Large, "month") })
	run.Test("month ticks", 1, func() error { return tt.AssertXTicksLocs(timeseries.Large, "month") })
	run.Test("week ticks", 1, func() error { return tt.AssertXTicksLocs(timeseries.Small, "week") })
	run.Test("no data removed", 2, func() error { return tt.AssertNoDataValue(timeseries.DefaultNoData) })
	run.Test("dates", 2, func() error { return tt.AssertXDataDate(precipDays()) })
}
