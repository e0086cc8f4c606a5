package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// LegendEntry is one labelled row of a legend.
type LegendEntry struct {
	Label  string
	Thumbs []plot.Thumbnailer
}

// Legend mirrors a gonum legend and keeps the entries and title that
// plot.Legend does not expose.
type Legend struct {
	Title string

	// Plot is the legend that gets drawn. For the first legend of an Axes
	// it is the plot's own Legend.
	Plot *plot.Legend

	entries []LegendEntry
}

// Add appends an entry.
func (l *Legend) Add(label string, thumbs ...plot.Thumbnailer) {
	l.Plot.Add(label, thumbs...)
	l.entries = append(l.entries, LegendEntry{Label: label, Thumbs: thumbs})
}

// Entries returns the legend's entries in insertion order.
func (l *Legend) Entries() []LegendEntry {
	out := make([]LegendEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// NewLegend adds a legend to the Axes. The first legend is drawn by the
// plot itself; later ones share its text style and are drawn on top.
func (ax *Axes) NewLegend(title string) *Legend {
	if len(ax.legends) == 0 {
		l := &Legend{Title: title, Plot: &ax.Plot.Legend}
		ax.legends = append(ax.legends, l)
		return l
	}
	base := ax.Plot.Legend
	pl := &plot.Legend{
		TextStyle:      base.TextStyle,
		Padding:        base.Padding,
		ThumbnailWidth: base.ThumbnailWidth,
		Top:            base.Top,
	}
	l := &Legend{Title: title, Plot: pl}
	ax.legends = append(ax.legends, l)
	return l
}

// Legends returns the Axes' legends in creation order.
func (ax *Axes) Legends() []*Legend {
	out := make([]*Legend, len(ax.legends))
	copy(out, ax.legends)
	return out
}

// LayoutSize is the canvas size used to lay out legends and data areas
// when no rendered image is available.
var LayoutSize = struct{ W, H vg.Length }{W: 6.4 * vg.Inch, H: 4.8 * vg.Inch}

// Extents lays the Axes out on a canvas of LayoutSize and returns the
// data-area rectangle and one rectangle per legend, in canvas units.
func (ax *Axes) Extents() (data vg.Rectangle, legends []vg.Rectangle) {
	img := vgimg.New(LayoutSize.W, LayoutSize.H)
	dc := draw.New(img)
	sub := subCanvas(dc, ax.Position)
	data = ax.Plot.DataCanvas(sub).Rectangle
	for _, l := range ax.legends {
		legends = append(legends, l.Plot.Rectangle(sub))
	}
	return data, legends
}
