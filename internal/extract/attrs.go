package extract

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/group"
)

// ColorTuple converts c to non-premultiplied RGBA in [0, 1]. A nil colour
// is fully transparent.
func ColorTuple(c color.Color) [4]float64 {
	if c == nil {
		return [4]float64{}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [4]float64{
		float64(n.R) / 255,
		float64(n.G) / 255,
		float64(n.B) / 255,
		float64(n.A) / 255,
	}
}

// ShapeName encodes a glyph shape as its type name.
func ShapeName(g draw.GlyphDrawer) string {
	if g == nil {
		return ""
	}
	return fmt.Sprintf("%T", g)
}

// DashName encodes a dash pattern. Solid lines encode as "solid".
func DashName(dashes []vg.Length, offs vg.Length) string {
	if len(dashes) == 0 {
		return "solid"
	}
	parts := make([]string, len(dashes))
	for i, d := range dashes {
		parts[i] = fmt.Sprintf("%g", float64(d))
	}
	return fmt.Sprintf("%g:%s", float64(offs), strings.Join(parts, ","))
}

func glyphAttr(gs draw.GlyphStyle) group.Attr {
	return group.Attr{
		Color: ColorTuple(gs.Color),
		Size:  float64(gs.Radius),
		Style: ShapeName(gs.Shape),
	}
}

func lineAttr(ls draw.LineStyle) group.Attr {
	return group.Attr{
		Color: ColorTuple(ls.Color),
		Size:  float64(ls.Width),
		Style: DashName(ls.Dashes, ls.DashOffs),
	}
}

// PointAttrs returns one attribute tuple per point of s. A scatter with a
// single glyph style has that style broadcast to every point.
func PointAttrs(s *plotter.Scatter) ([]group.Attr, error) {
	var attrs []group.Attr
	if s.GlyphStyleFunc == nil {
		attrs = []group.Attr{glyphAttr(s.GlyphStyle)}
	} else {
		attrs = make([]group.Attr, len(s.XYs))
		for i := range s.XYs {
			attrs[i] = glyphAttr(s.GlyphStyleFunc(i))
		}
	}
	return group.BroadcastOrExact(attrs, len(s.XYs))
}

// Point is a scatter point with its rendered attributes.
type Point struct {
	XY   plotter.XY
	Attr group.Attr
}

// Points returns every scatter point on ax with its attributes, in draw
// order.
func Points(ax *figure.Axes) ([]Point, error) {
	var out []Point
	for _, p := range ax.Primitives() {
		s, ok := p.Scatter()
		if !ok {
			continue
		}
		attrs, err := PointAttrs(s)
		if err != nil {
			return nil, fmt.Errorf("scatter in collection %d: %w", p.Collection, err)
		}
		for i, xy := range s.XYs {
			out = append(out, Point{XY: xy, Attr: attrs[i]})
		}
	}
	return out, nil
}

// LineAttr returns the attribute tuple of a line.
func LineAttr(l *plotter.Line) group.Attr {
	return lineAttr(l.LineStyle)
}

// ThumbAttr returns the attribute tuple a legend thumbnail is drawn with.
// For filled thumbnails the colour is the fill colour. ok is false for
// thumbnails of unknown type.
func ThumbAttr(th plot.Thumbnailer) (a group.Attr, ok bool) {
	switch t := th.(type) {
	case *plotter.Line:
		return lineAttr(t.LineStyle), true
	case *plotter.Scatter:
		return glyphAttr(t.GlyphStyle), true
	case *plotter.BarChart:
		return group.Attr{Color: ColorTuple(t.Color), Size: float64(t.Width), Style: "bar"}, true
	case *plotter.Histogram:
		return group.Attr{Color: ColorTuple(t.FillColor), Size: float64(t.Width), Style: "bar"}, true
	case *plotter.Polygon:
		return group.Attr{Color: ColorTuple(t.Color), Size: float64(t.LineStyle.Width), Style: "patch"}, true
	}
	return group.Attr{}, false
}

// LegendEntry is one labelled row of a legend with the attributes of its
// thumbnails.
type LegendEntry struct {
	Legend int
	Label  string
	Attrs  []group.Attr
}

// LegendEntries walks every legend on ax in creation order. It returns nil
// when ax has no legends.
func LegendEntries(ax *figure.Axes) []LegendEntry {
	var out []LegendEntry
	for i, l := range ax.Legends() {
		for _, e := range l.Entries() {
			le := LegendEntry{Legend: i, Label: e.Label}
			for _, th := range e.Thumbs {
				if a, ok := ThumbAttr(th); ok {
					le.Attrs = append(le.Attrs, a)
				}
			}
			out = append(out, le)
		}
	}
	return out
}
