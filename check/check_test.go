package check

import (
	"errors"
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/testutil"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

func newAxes() (*figure.Figure, *figure.Axes) {
	fig, axes := figure.Subplots(1, 1)
	return fig, axes[0]
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, kind)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "Expected 6 bins, found 5", Format("Expected {0} bins, found {1}", 6, 5))
	assert.Equal(t, "no args {0}", Format("no args {0}"))
	assert.Equal(t, "x {1}", Format("{0} {1}", "x"))
}

func TestFailure(t *testing.T) {
	f := Mismatch("Incorrect data values", "x: index 0")
	assert.Equal(t, "Incorrect data values", f.Error())
	assert.True(t, errors.Is(f, ErrMismatch))
	assert.False(t, errors.Is(f, ErrMissing))
	assert.Equal(t, "x: index 0", f.Detail)

	var target *Failure
	assert.True(t, errors.As(Missing("gone"), &target))
	assert.Equal(t, ErrMissing, target.Kind)

	assertKind(t, Usagef("bad %s", "axis"), ErrUsage)
}

func TestOptionsNormalize(t *testing.T) {
	o, err := Options{}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "x", o.Axis)
	assert.Equal(t, "either", o.TitleType)
	assert.Equal(t, "x", o.XCol)
	assert.Equal(t, "y", o.YCol)

	for _, bad := range []Options{
		{Axis: "z"},
		{TitleType: "subplot"},
		{Tolerance: -1},
		{Decimals: -2},
	} {
		_, err := bad.Normalize()
		assertKind(t, err, ErrUsage)
	}
}

func TestOptionsMessages(t *testing.T) {
	var zero Options
	assert.Equal(t, "a", zero.Msg("a"))
	assert.Equal(t, "b", zero.MsgOr("b"))
	assert.Equal(t, "c", zero.MsgMissing("c"))
	assert.Equal(t, "d", zero.MsgAlt("d"))

	o := Options{Message: "m", MessageOr: "or", MessageMissing: "missing", MessageAlt: "alt"}
	assert.Equal(t, "m", o.Msg("a"))
	assert.Equal(t, "or", o.MsgOr("b"))
	assert.Equal(t, "missing", o.MsgMissing("c"))
	assert.Equal(t, "alt", o.MsgAlt("d"))
}

func TestAssertStringContains(t *testing.T) {
	pt := New(figure.New().CurrentAxes())
	s := "My Plot Title"

	assert.NoError(t, pt.AssertStringContains(s, All("my", "plottitle")))
	assert.NoError(t, pt.AssertStringContains(s, [][]string{{"foo", "plot"}}))
	assert.NoError(t, pt.AssertStringContains(s, nil))

	err := pt.AssertStringContains(s, All("foo"))
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "String does not contain expected string: foo", err.Error())

	err = pt.AssertStringContains(s, [][]string{{"foo", "bar"}})
	assert.Equal(t, "String does not contain at least one of: [foo, bar]", err.Error())

	assertKind(t, pt.AssertStringContains(s, [][]string{{}}), ErrUsage)
}

func TestAssertPlotType(t *testing.T) {
	_, ax := newAxes()
	ax.Add(testutil.Scatter(t, testutil.XYs([2]float64{0, 0}), red))
	pt := New(ax)

	assert.NoError(t, pt.AssertPlotType("scatter"))
	assert.NoError(t, pt.AssertPlotType(""))
	err := pt.AssertPlotType("line")
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Plot is not of type line", err.Error())
	assertKind(t, pt.AssertPlotType("bar"), ErrMismatch)
	assertKind(t, pt.AssertPlotType("pie"), ErrUsage)

	ax.Add(testutil.Line(t, testutil.XYs([2]float64{0, 0}, [2]float64{1, 1}), blue))
	assert.NoError(t, pt.AssertPlotType("line"))

	hax := testutil.HistogramAxes(t, testutil.ExpValues(), 5)
	assert.NoError(t, New(hax).AssertPlotType("bar"))
}

func TestAssertPlotType_HiddenLine(t *testing.T) {
	_, ax := newAxes()
	hidden := testutil.Line(t, testutil.XYs([2]float64{0, 0}, [2]float64{1, 1}), blue)
	hidden.Width = 0
	ax.Add(hidden)
	pt := New(ax)

	assertKind(t, pt.AssertPlotType("scatter"), ErrMismatch)
	assertKind(t, pt.AssertPlotType("line"), ErrMismatch)
	assert.Empty(t, pt.XY(true).X, "hidden lines are not markers either")
}

func TestAssertTitleContains(t *testing.T) {
	fig, ax := newAxes()
	ax.Plot.Title.Text = "My Plot Title"
	pt := New(ax)

	assert.NoError(t, pt.AssertTitleContains(All("My", "Title"), Options{TitleType: "axes"}))
	assert.NoError(t, pt.AssertTitleContains(All("My", "Title")))
	assert.NoError(t, pt.AssertTitleContains(nil, Options{TitleType: "figure"}))

	err := pt.AssertTitleContains(All("foo"), Options{TitleType: "axes"})
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Title does not contain expected string: foo", err.Error())

	err = pt.AssertTitleContains(All("My"), Options{TitleType: "figure"})
	assertKind(t, err, ErrMissing)
	assert.Equal(t, "Expected title is not displayed", err.Error())

	fig.Title = "Figure Heading"
	assert.NoError(t, pt.AssertTitleContains(All("heading"), Options{TitleType: "figure"}))
	assert.NoError(t, pt.AssertTitleContains(All("heading", "plot")))
	assertKind(t, pt.AssertTitleContains(All("heading"), Options{TitleType: "axes"}), ErrMismatch)

	assertKind(t, pt.AssertTitleContains(All("My"), Options{TitleType: "page"}), ErrUsage)

	err = pt.AssertTitleContains(All("foo"), Options{Message: "title needs {0}"})
	assert.Equal(t, "title needs foo", err.Error())

	figTitle, axTitle := pt.Titles()
	assert.Equal(t, "Figure Heading", figTitle)
	assert.Equal(t, "My Plot Title", axTitle)
}

func TestCaption(t *testing.T) {
	fig, ax := newAxes()
	pt := New(ax)

	_, ok := pt.Caption()
	assert.False(t, ok)
	assertKind(t, pt.AssertCaptionContains(All("source")), ErrMissing)

	fig.AddText(0.1, 0.95, "header note")
	fig.AddText(0.8, 0.05, "Source: Earth Lab")
	caption, ok := pt.Caption()
	require.True(t, ok)
	assert.Equal(t, "Source: Earth Lab", caption)

	assert.NoError(t, pt.AssertCaptionContains(All("source", "earth lab")))
	err := pt.AssertCaptionContains(All("NASA"))
	assert.Equal(t, "Caption does not contain expected string: NASA", err.Error())
	assert.NoError(t, pt.AssertCaptionContains(nil))
}

func TestAssertAxisOff(t *testing.T) {
	_, ax := newAxes()
	ax.Add(testutil.Scatter(t, testutil.XYs([2]float64{0, 0}, [2]float64{1, 1}), red))
	pt := New(ax)

	err := pt.AssertAxisOff()
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Axis lines are displayed on plot", err.Error())

	ax.HideAxes()
	assert.NoError(t, pt.AssertAxisOff())
}

func TestAssertAxisLabelContains(t *testing.T) {
	_, ax := newAxes()
	ax.Plot.X.Label.Text = "Date"
	pt := New(ax)

	assert.NoError(t, pt.AssertAxisLabelContains(All("date")))
	err := pt.AssertAxisLabelContains(All("time"))
	assert.Equal(t, "x-axis label does not contain expected string: time", err.Error())

	err = pt.AssertAxisLabelContains(All("precip"), Options{Axis: "y"})
	assertKind(t, err, ErrMissing)
	assert.Equal(t, "Expected y axis label is not displayed", err.Error())

	ax.Plot.Y.Label.Text = "Precipitation (mm)"
	err = pt.AssertAxisLabelContains([][]string{{"rain", "snow"}}, Options{Axis: "y"})
	assert.Equal(t, "y-axis label does not contain at least one of: [rain, snow]", err.Error())

	assertKind(t, pt.AssertAxisLabelContains(All("x"), Options{Axis: "z"}), ErrUsage)
}

func TestAssertLims(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float64
		want   []float64
		kind   error
	}{
		{"exact", 0, 100, []float64{0, 100}, nil},
		{"truncated", 0.7, 100.9, []float64{0, 100}, nil},
		{"upper differs", 0, 101, []float64{0, 100}, ErrMismatch},
		{"lower differs", 1, 100, []float64{0, 100}, ErrMismatch},
		{"skip", 1, 100, nil, nil},
		{"wrong length", 0, 100, []float64{0, 50, 100}, ErrUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ax := newAxes()
			ax.SetXLim(tt.lo, tt.hi)
			err := New(ax).AssertLims(tt.want, Options{Axis: "x"})
			if tt.kind == nil {
				assert.NoError(t, err)
				return
			}
			assertKind(t, err, tt.kind)
		})
	}

	_, ax := newAxes()
	ax.SetYLim(-5, 5)
	pt := New(ax)
	assert.NoError(t, pt.AssertLims([]float64{-5, 5}, Options{Axis: "y"}))
	err := pt.AssertLims([]float64{0, 5}, Options{Axis: "y"})
	assert.Equal(t, "Incorrect limits on the y axis", err.Error())
	assertKind(t, pt.AssertLims([]float64{0, 5}, Options{Axis: "q"}), ErrUsage)
}

func TestAssertLimsRange(t *testing.T) {
	_, ax := newAxes()
	ax.SetXLim(-0.5, 10.2)
	pt := New(ax)

	assert.NoError(t, pt.AssertLimsRange([][2]float64{{-1, 0}, {10, 11}}))
	assert.NoError(t, pt.AssertLimsRange([][2]float64{{-0.5, -0.5}, {10.2, 10.2}}))
	assert.NoError(t, pt.AssertLimsRange(nil))

	err := pt.AssertLimsRange([][2]float64{{0, 1}, {10, 11}})
	assert.Equal(t, "Incorrect min limit on the x axis", err.Error())
	err = pt.AssertLimsRange([][2]float64{{-1, 0}, {11, 12}})
	assert.Equal(t, "Incorrect max limit on the x axis", err.Error())
	assertKind(t, pt.AssertLimsRange([][2]float64{{0, 1}}), ErrUsage)
}

func TestAssertEqualXLimsYLims(t *testing.T) {
	_, ax := newAxes()
	ax.SetXLim(0, 10)
	ax.SetYLim(0, 10)
	pt := New(ax)
	assert.NoError(t, pt.AssertEqualXLimsYLims())

	ax.SetYLim(0, 12)
	err := pt.AssertEqualXLimsYLims()
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "xlims and ylims are not equal", err.Error())
}

func legendAxes(t *testing.T) *figure.Axes {
	t.Helper()
	_, ax := newAxes()
	l := testutil.Line(t, testutil.XYs([2]float64{0, 0}, [2]float64{10, 10}), red)
	s := testutil.Scatter(t, testutil.XYs([2]float64{1, 2}, [2]float64{3, 4}), blue)
	ax.Add(l, s)
	leg := ax.NewLegend("Data Sources")
	leg.Add("Trend", l)
	leg.Add("Observations", s)
	return ax
}

func TestAssertLegendTitles(t *testing.T) {
	ax := legendAxes(t)
	pt := New(ax)

	assert.NoError(t, pt.AssertLegendTitles([]string{"data sources"}))
	assert.NoError(t, pt.AssertLegendTitles(nil))

	err := pt.AssertLegendTitles([]string{"Legend"})
	assert.Equal(t, "Legend title does not contain expected string: Legend", err.Error())

	err = pt.AssertLegendTitles([]string{"Data", "Other"})
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "I was expecting 2 legend titles but instead found 1", err.Error())
}

func TestAssertLegendLabels(t *testing.T) {
	pt := New(legendAxes(t))

	assert.NoError(t, pt.AssertLegendLabels([]string{"observations", "TREND"}))

	err := pt.AssertLegendLabels([]string{"trend"})
	assert.Equal(t, "I was expecting 1 legend entries, but found 2. Are there extra labels in your legend?", err.Error())

	err = pt.AssertLegendLabels([]string{"trend", "points"})
	assert.Equal(t, "Legend does not have expected labels", err.Error())

	_, bare := newAxes()
	err = New(bare).AssertLegendLabels([]string{"trend"})
	assertKind(t, err, ErrMissing)
	assert.Equal(t, "Legend does not exist", err.Error())
}

func TestAssertLegendNoOverlayContent(t *testing.T) {
	_, bare := newAxes()
	assert.NoError(t, New(bare).AssertLegendNoOverlayContent())

	// gonum draws the legend inside the top right of the data area.
	err := New(legendAxes(t)).AssertLegendNoOverlayContent()
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Legend overlays plot window", err.Error())
}

func TestAssertNoLegendOverlap(t *testing.T) {
	ax := legendAxes(t)
	pt := New(ax)
	assert.NoError(t, pt.AssertNoLegendOverlap())

	second := ax.NewLegend("Second")
	second.Add("Trend again", testutil.Line(t, testutil.XYs([2]float64{0, 0}, [2]float64{1, 1}), red))
	err := pt.AssertNoLegendOverlap()
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Legends overlap each other", err.Error())

	second.Plot.Left = true
	assert.NoError(t, pt.AssertNoLegendOverlap())
}

func TestLegendsOverlap(t *testing.T) {
	r := func(x0, y0, x1, y1 vg.Length) vg.Rectangle {
		return vg.Rectangle{Min: vg.Point{X: x0, Y: y0}, Max: vg.Point{X: x1, Y: y1}}
	}
	assert.True(t, LegendsOverlap(r(0, 0, 2, 2), r(1, 1, 3, 3)))
	assert.False(t, LegendsOverlap(r(0, 0, 1, 1), r(2, 2, 3, 3)))
	assert.False(t, LegendsOverlap(r(0, 0, 1, 1), r(0, 2, 1, 3)))
	// Containment is only seen from the inner rectangle's side.
	assert.False(t, LegendsOverlap(r(0, 0, 10, 10), r(4, 4, 5, 5)))
	assert.True(t, LegendsOverlap(r(4, 4, 5, 5), r(0, 0, 10, 10)))
}

func dataTable(pts plotter.XYs) Table {
	x := make([]float64, len(pts))
	y := make([]float64, len(pts))
	for i, p := range pts {
		x[i], y[i] = p.X, p.Y
	}
	return Table{Floats: map[string][]float64{"x": x, "y": y}}
}

func TestAssertXYData(t *testing.T) {
	pts := testutil.XYs([2]float64{1, 10}, [2]float64{2, 20}, [2]float64{3, 30})
	_, ax := newAxes()
	ax.Add(testutil.Scatter(t, pts, red))
	pt := New(ax)

	assert.NoError(t, pt.AssertXYData(dataTable(pts)))
	assert.NoError(t, pt.AssertXYData(Table{}))

	// Row order of the expectation does not matter.
	rev := testutil.XYs([2]float64{3, 30}, [2]float64{1, 10}, [2]float64{2, 20})
	assert.NoError(t, pt.AssertXYData(dataTable(rev)))

	named := Table{Floats: map[string][]float64{"year": {1, 2, 3}, "rain": {10, 20, 30}}}
	assert.NoError(t, pt.AssertXYData(named, Options{XCol: "year", YCol: "rain"}))
	assertKind(t, pt.AssertXYData(named), ErrUsage)

	wrong := dataTable(testutil.XYs([2]float64{1, 10}, [2]float64{2, 21}, [2]float64{3, 30}))
	err := pt.AssertXYData(wrong)
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Incorrect data values", err.Error())

	short := dataTable(testutil.XYs([2]float64{1, 10}))
	assertKind(t, pt.AssertXYData(short), ErrUsage)
}

func TestAssertXYData_Tolerance(t *testing.T) {
	pts := testutil.XYs([2]float64{0, 1}, [2]float64{1, 2})
	_, ax := newAxes()
	ax.Add(testutil.Scatter(t, pts, red))
	pt := New(ax)

	near := dataTable(testutil.XYs([2]float64{0, 1.05}, [2]float64{1, 1.95}))
	tests := []struct {
		name string
		opts Options
		ok   bool
	}{
		{"exact rejects", Options{}, false},
		{"tolerance above difference", Options{Tolerance: 0.1}, true},
		{"tolerance at difference", Options{Tolerance: 0.05 + 1e-12}, true},
		{"tolerance below difference", Options{Tolerance: 0.01}, false},
		{"relative", Options{RelTolerance: 0.05}, true},
		{"relative too tight", Options{RelTolerance: 0.01}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pt.AssertXYData(near, tt.opts)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assertKind(t, err, ErrMismatch)
			}
		})
	}
}

func TestAssertXYData_Reflexive(t *testing.T) {
	ax := testutil.LineAxes(t, testutil.RegressionData(), 1, 0, 0, 19)
	pt := New(ax)
	got := pt.XY(false)
	want := Table{Floats: map[string][]float64{"x": got.X, "y": got.Y}}
	assert.NoError(t, pt.AssertXYData(want))
}

func TestAssertXYData_Times(t *testing.T) {
	base := time.Date(2018, 1, 1, 0, 0, 0, 123_000_000, time.UTC)
	times := []time.Time{base, base.Add(24 * time.Hour), base.Add(48 * time.Hour)}
	secs := TimesToUnix(times)

	_, ax := newAxes()
	ax.Add(testutil.Scatter(t, testutil.XYs([2]float64{secs[0], 1}, [2]float64{secs[1], 2}, [2]float64{secs[2], 3}), red))
	pt := New(ax)

	want := Table{
		Times:  map[string][]time.Time{"date": times},
		Floats: map[string][]float64{"value": {1, 2, 3}},
	}
	opts := Options{XCol: "date", YCol: "value"}
	assert.NoError(t, pt.AssertXYData(want, opts))

	opts.Tolerance = 1
	assertKind(t, pt.AssertXYData(want, opts), ErrUsage)
}

func barAxes(t *testing.T, names ...string) *figure.Axes {
	t.Helper()
	_, ax := newAxes()
	bars, err := plotter.NewBarChart(plotter.Values{3, 5}, vg.Points(10))
	require.NoError(t, err)
	ax.Add(bars)
	ax.Plot.NominalX(names...)
	return ax
}

func TestAssertXLabelYData(t *testing.T) {
	pt := New(barAxes(t, "Mon", "Tue"))
	ys := map[string][]float64{"y": {3, 5}}

	assert.NoError(t, pt.AssertXYData(Table{Strings: map[string][]string{"x": {"Mon", "Tue"}}, Floats: ys}, Options{XLabels: true}))

	err := pt.AssertXLabelYData(Table{Strings: map[string][]string{"x": {"mon", "Tue"}}, Floats: ys})
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Incorrect Data", err.Error())

	err = pt.AssertXLabelYData(Table{Strings: map[string][]string{"x": {"Mon", "Tue"}}, Floats: map[string][]float64{"y": {3, 6}}})
	assertKind(t, err, ErrMismatch)

	// Expecting numbers from labels that are words fails rather than erroring.
	assertKind(t, pt.AssertXLabelYData(Table{Floats: map[string][]float64{"x": {1, 2}, "y": {3, 5}}}), ErrMismatch)

	years := New(barAxes(t, "2010", "2011"))
	assert.NoError(t, years.AssertXLabelYData(Table{Floats: map[string][]float64{"x": {2010, 2011}, "y": {3, 5}}}))
	assert.NoError(t, years.AssertXLabelYData(Table{Strings: map[string][]string{"x": {"2010", "2011"}}, Floats: ys}))
}

func TestSlopeIntercept(t *testing.T) {
	pt := New(figure.New().CurrentAxes())
	s, b, err := pt.SlopeIntercept(testutil.XYs([2]float64{0, 1}, [2]float64{2, 5}))
	require.NoError(t, err)
	assert.InDelta(t, 2, s, 1e-12)
	assert.InDelta(t, 1, b, 1e-12)

	_, _, err = pt.SlopeIntercept(nil)
	assertKind(t, err, ErrUsage)
}

func unitSquareScatter() plotter.XYs {
	return testutil.XYs([2]float64{0, 0.1}, [2]float64{0.5, 0.4}, [2]float64{1, 0.9})
}

func TestAssertLinesOfType_OneToOne(t *testing.T) {
	ax := testutil.LineAxes(t, unitSquareScatter(), 1, 0, 0, 1)
	pt := New(ax)
	assert.NoError(t, pt.AssertLinesOfType([]string{"onetoone"}))
	assert.NoError(t, pt.AssertLine(1, 0))
}

func TestAssertLinesOfType_Truncated(t *testing.T) {
	ax := testutil.LineAxes(t, unitSquareScatter(), 1, 0, 0, 0.5)
	pt := New(ax)

	err := pt.AssertLinesOfType([]string{"onetoone"})
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "onetoone line does not cover dataset", err.Error())

	assert.NoError(t, pt.AssertLinesOfType([]string{"onetoone"}, Options{NoCoverage: true}))
}

func TestAssertLinesOfType_Regression(t *testing.T) {
	ax := testutil.LineAxes(t, testutil.RegressionData(), testutil.RegressionSlope, testutil.RegressionIntercept, 0, 19)
	pt := New(ax)
	assert.NoError(t, pt.AssertLinesOfType([]string{"regression"}))
	assert.NoError(t, pt.AssertLinesOfType([]string{"linear-regression"}))

	err := pt.AssertLinesOfType([]string{"regression", "onetoone"})
	assertKind(t, err, ErrMissing)
	assert.Equal(t, "onetoone line not displayed properly", err.Error())
}

func TestAssertLinesOfType_Errors(t *testing.T) {
	_, ax := newAxes()
	pt := New(ax)
	assertKind(t, pt.AssertLinesOfType([]string{"quadratic"}), ErrUsage)

	err := pt.AssertLinesOfType([]string{"regression"})
	assertKind(t, err, ErrMissing)
	assert.Equal(t, "regression line not displayed properly", err.Error())

	err = pt.AssertLine(2, 0)
	assert.Equal(t, "Expected line not displayed", err.Error())
	assert.NoError(t, pt.AssertLinesOfType(nil))
}

func TestHistogram(t *testing.T) {
	ax := testutil.HistogramAxes(t, testutil.ExpValues(), 5)
	pt := New(ax)

	assert.Equal(t, 5, pt.NumBins())
	assert.NoError(t, pt.AssertNumBins(5))
	assert.NoError(t, pt.AssertNumBins(0))

	err := pt.AssertNumBins(6)
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Expected 6 bins in histogram, instead found 5.", err.Error())

	assert.NoError(t, pt.AssertBinHeights(testutil.ExpHeights))
	err = pt.AssertBinHeights([]float64{1, 4, 1, 3, 4})
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Did not find expected bin values in plot", err.Error())

	assert.NoError(t, pt.AssertBinHeights([]float64{340, 69, 40, 28, 23}, Options{Tolerance: 1}))
	err = pt.AssertBinHeights([]float64{341, 68})
	assertKind(t, err, ErrUsage)
	assert.NotErrorIs(t, err, ErrMismatch)
	assertKind(t, pt.AssertBinHeights([]float64{341, 68}, Options{Tolerance: 1}), ErrUsage)
	assert.NoError(t, pt.AssertBinHeights(nil))
}

func TestHistogram_RoundTrip(t *testing.T) {
	ref := New(testutil.HistogramAxes(t, testutil.ExpValues(), 5))
	heights := ref.BinHeights()
	mids := ref.BinMidpoints()

	student := New(testutil.HistogramAxes(t, testutil.ExpValues(), 5))
	assert.NoError(t, student.AssertBinHeights(heights))
	assert.NoError(t, student.AssertBinMidpoints(mids))

	err := student.AssertBinMidpoints(mids[:4])
	assertKind(t, err, ErrUsage)

	shifted := append([]float64(nil), mids...)
	shifted[0]++
	err = student.AssertBinMidpoints(shifted)
	assertKind(t, err, ErrMismatch)
	assert.Equal(t, "Did not find expected bin midpoints in plot", err.Error())
}

func TestNewWithConfig(t *testing.T) {
	x := 0.3
	for i := 0; i < 10; i++ {
		x = math.Nextafter(x, 1)
	}
	_, ax := newAxes()
	ax.Add(testutil.Scatter(t, testutil.XYs([2]float64{x, 1}), red))
	want := Table{Floats: map[string][]float64{"x": {0.3}, "y": {1}}}

	assertKind(t, New(ax).AssertXYData(want), ErrMismatch)
	assert.Equal(t, uint(5), New(ax).Config().GetMaxULP())

	ulp := 16
	loose := NewWithConfig(ax, &Config{MaxULP: &ulp})
	assert.NoError(t, loose.AssertXYData(want))
	assert.Same(t, ax, loose.Axes())
}
