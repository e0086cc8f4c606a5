package figure

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Kind enumerates the primitive types the checkers understand.
type Kind int

const (
	KindLine Kind = iota
	KindScatter
	KindBars
	KindHistogram
	KindPolygon
	KindImage
	KindHeatMap
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindScatter:
		return "scatter"
	case KindBars:
		return "bars"
	case KindHistogram:
		return "histogram"
	case KindPolygon:
		return "polygon"
	case KindImage:
		return "image"
	case KindHeatMap:
		return "heatmap"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Image is the backing data of an image primitive. plotter.Image does not
// expose its pixels, so Axes.AddImage keeps them here.
type Image struct {
	Img                    image.Image
	XMin, YMin, XMax, YMax float64
}

// DataRange implements plot.DataRanger.
func (im *Image) DataRange() (xmin, xmax, ymin, ymax float64) {
	return im.XMin, im.XMax, im.YMin, im.YMax
}

// Primitive is one recorded plotter. Collection is shared by every
// primitive added in the same Add or AddCollection call.
type Primitive struct {
	Kind       Kind
	Plotter    plot.Plotter
	Collection int

	// Image is set for KindImage only.
	Image *Image
}

// Line returns the plotter as a line; ok is false for other kinds.
func (p Primitive) Line() (*plotter.Line, bool) {
	l, ok := p.Plotter.(*plotter.Line)
	return l, ok && p.Kind == KindLine
}

// Scatter returns the plotter as a scatter; ok is false for other kinds.
func (p Primitive) Scatter() (*plotter.Scatter, bool) {
	s, ok := p.Plotter.(*plotter.Scatter)
	return s, ok && p.Kind == KindScatter
}

// Bars returns the plotter as a bar chart; ok is false for other kinds.
func (p Primitive) Bars() (*plotter.BarChart, bool) {
	b, ok := p.Plotter.(*plotter.BarChart)
	return b, ok && p.Kind == KindBars
}

// Histogram returns the plotter as a histogram; ok is false for other kinds.
func (p Primitive) Histogram() (*plotter.Histogram, bool) {
	h, ok := p.Plotter.(*plotter.Histogram)
	return h, ok && p.Kind == KindHistogram
}

// Polygon returns the plotter as a polygon; ok is false for other kinds.
func (p Primitive) Polygon() (*plotter.Polygon, bool) {
	pg, ok := p.Plotter.(*plotter.Polygon)
	return pg, ok && p.Kind == KindPolygon
}

// HeatMap returns the plotter as a heat map; ok is false for other kinds.
func (p Primitive) HeatMap() (*plotter.HeatMap, bool) {
	h, ok := p.Plotter.(*plotter.HeatMap)
	return h, ok && p.Kind == KindHeatMap
}

// KindOf classifies a plotter. Plotters the checkers do not inspect
// (grids, labels, error bars, ...) report ok == false.
func KindOf(p plot.Plotter) (Kind, bool) {
	switch p.(type) {
	case *plotter.Line:
		return KindLine, true
	case *plotter.Scatter:
		return KindScatter, true
	case *plotter.BarChart:
		return KindBars, true
	case *plotter.Histogram:
		return KindHistogram, true
	case *plotter.Polygon:
		return KindPolygon, true
	case *plotter.HeatMap:
		return KindHeatMap, true
	}
	return 0, false
}

// Axes is one plotting area of a Figure.
type Axes struct {
	// Plot is the gonum plot drawn for this Axes. Titles, axis ranges,
	// labels and tick markers are read from it directly.
	Plot *plot.Plot

	// Position is the Axes' rectangle in figure-fraction coordinates.
	Position Rect

	fig        *Figure
	prims      []Primitive
	nextColl   int
	legends    []*Legend
	colorbars  []*plotter.ColorBar
	axisHidden bool
}

func newAxes(f *Figure, pos Rect) *Axes {
	return &Axes{Plot: newPlot(), Position: pos, fig: f}
}

// Figure returns the Figure the Axes belongs to.
func (ax *Axes) Figure() *Figure {
	return ax.fig
}

// Add adds plotters to the Axes, each as its own collection.
func (ax *Axes) Add(ps ...plot.Plotter) {
	for _, p := range ps {
		ax.add(p, ax.nextColl)
		ax.nextColl++
	}
}

// AddCollection adds plotters that belong together, the way a vector
// layer draws all of its features at once.
func (ax *Axes) AddCollection(ps ...plot.Plotter) {
	for _, p := range ps {
		ax.add(p, ax.nextColl)
	}
	ax.nextColl++
}

func (ax *Axes) add(p plot.Plotter, coll int) {
	ax.Plot.Add(p)
	if k, ok := KindOf(p); ok {
		ax.prims = append(ax.prims, Primitive{Kind: k, Plotter: p, Collection: coll})
	}
}

// AddPolygons draws a multi-part polygon: one plotter.Polygon per ring,
// all sharing fill and outline and recorded as one collection.
func (ax *Axes) AddPolygons(fill color.Color, outline draw.LineStyle, rings ...plotter.XYs) ([]*plotter.Polygon, error) {
	out := make([]*plotter.Polygon, 0, len(rings))
	ps := make([]plot.Plotter, 0, len(rings))
	for i, r := range rings {
		pg, err := plotter.NewPolygon(r)
		if err != nil {
			return nil, fmt.Errorf("polygon part %d: %w", i, err)
		}
		pg.Color = fill
		pg.LineStyle = outline
		out = append(out, pg)
		ps = append(ps, pg)
	}
	ax.AddCollection(ps...)
	return out, nil
}

// AddImage draws img over the data rectangle (xmin, ymin)-(xmax, ymax).
func (ax *Axes) AddImage(img image.Image, xmin, ymin, xmax, ymax float64) {
	pi := plotter.NewImage(img, xmin, ymin, xmax, ymax)
	ax.Plot.Add(pi)
	ax.prims = append(ax.prims, Primitive{
		Kind:       KindImage,
		Plotter:    pi,
		Collection: ax.nextColl,
		Image:      &Image{Img: img, XMin: xmin, YMin: ymin, XMax: xmax, YMax: ymax},
	})
	ax.nextColl++
}

// Primitives returns the recorded primitives in draw order.
func (ax *Axes) Primitives() []Primitive {
	out := make([]Primitive, len(ax.prims))
	copy(out, ax.prims)
	return out
}

// AddColorbar records a colour bar describing the Axes' colour mapping.
func (ax *Axes) AddColorbar(cb *plotter.ColorBar) {
	ax.colorbars = append(ax.colorbars, cb)
}

// Colorbars returns the colour bars attached to the Axes.
func (ax *Axes) Colorbars() []*plotter.ColorBar {
	out := make([]*plotter.ColorBar, len(ax.colorbars))
	copy(out, ax.colorbars)
	return out
}

// HideAxes hides both axes of the plot.
func (ax *Axes) HideAxes() {
	ax.Plot.HideAxes()
	ax.axisHidden = true
}

// AxesHidden reports whether HideAxes was called.
func (ax *Axes) AxesHidden() bool {
	return ax.axisHidden
}

// SetXLim sets the x range. Plotters added afterwards still widen it.
func (ax *Axes) SetXLim(lo, hi float64) {
	ax.Plot.X.Min, ax.Plot.X.Max = lo, hi
}

// SetYLim sets the y range. Plotters added afterwards still widen it.
func (ax *Axes) SetYLim(lo, hi float64) {
	ax.Plot.Y.Min, ax.Plot.Y.Max = lo, hi
}

// XLim returns the x range the plot would be drawn with.
func (ax *Axes) XLim() (lo, hi float64) {
	return drawnRange(ax.Plot.X.Min, ax.Plot.X.Max)
}

// YLim returns the y range the plot would be drawn with.
func (ax *Axes) YLim() (lo, hi float64) {
	return drawnRange(ax.Plot.Y.Min, ax.Plot.Y.Max)
}

// drawnRange applies the same clean-up gonum does before drawing an axis:
// infinite bounds become 0, reversed bounds swap and an empty range is
// widened by one on each side.
func drawnRange(lo, hi float64) (float64, float64) {
	if math.IsInf(lo, 0) {
		lo = 0
	}
	if math.IsInf(hi, 0) {
		hi = 0
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo--
		hi++
	}
	return lo, hi
}
