// Package figure is the plot handle that plotcheck inspects.
//
// A Figure holds one or more Axes. Each Axes wraps a *plot.Plot and
// records, in draw order, every plotter added to it so the checking
// packages can walk the rendered object graph after the fact. gonum/plot
// keeps its plotter list and legend entries private; Axes keeps its own
// copy alongside the real plot so rendering and inspection see the same
// primitives.
package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Rect is a rectangle in figure-fraction coordinates (0..1 on both axes,
// origin bottom left).
type Rect struct {
	XMin, YMin, XMax, YMax float64
}

// DefaultPosition is where a lone Axes sits inside its Figure.
var DefaultPosition = Rect{XMin: 0.125, YMin: 0.11, XMax: 0.9, YMax: 0.88}

// Text is free text placed on a Figure in figure-fraction coordinates.
type Text struct {
	X, Y float64
	Text string
}

// Figure is the top-level container. Title is the figure-level title
// (shown above every Axes).
type Figure struct {
	Title string

	texts   []Text
	axes    []*Axes
	current int
}

// New returns an empty Figure.
func New() *Figure {
	return &Figure{current: -1}
}

// Subplots creates a Figure with a rows x cols grid of Axes laid out
// top-left to bottom-right. The last Axes becomes current.
func Subplots(rows, cols int) (*Figure, []*Axes) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	f := New()
	w := (DefaultPosition.XMax - DefaultPosition.XMin) / float64(cols)
	h := (DefaultPosition.YMax - DefaultPosition.YMin) / float64(rows)
	axes := make([]*Axes, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pos := Rect{
				XMin: DefaultPosition.XMin + float64(c)*w,
				XMax: DefaultPosition.XMin + float64(c+1)*w,
				YMin: DefaultPosition.YMax - float64(r+1)*h,
				YMax: DefaultPosition.YMax - float64(r)*h,
			}
			axes = append(axes, f.AddAxes(pos))
		}
	}
	return f, axes
}

// AddAxes adds a new Axes at pos and makes it current.
func (f *Figure) AddAxes(pos Rect) *Axes {
	ax := newAxes(f, pos)
	f.axes = append(f.axes, ax)
	f.current = len(f.axes) - 1
	return ax
}

// Axes returns the Axes of f in creation order.
func (f *Figure) Axes() []*Axes {
	out := make([]*Axes, len(f.axes))
	copy(out, f.axes)
	return out
}

// CurrentAxes returns the current Axes, creating one at DefaultPosition if
// the Figure is empty.
func (f *Figure) CurrentAxes() *Axes {
	if f.current < 0 || f.current >= len(f.axes) {
		return f.AddAxes(DefaultPosition)
	}
	return f.axes[f.current]
}

// SetCurrent makes ax the current Axes. Axes from another Figure are ignored.
func (f *Figure) SetCurrent(ax *Axes) {
	for i, a := range f.axes {
		if a == ax {
			f.current = i
			return
		}
	}
}

// AddText places free text on the Figure.
func (f *Figure) AddText(x, y float64, s string) {
	f.texts = append(f.texts, Text{X: x, Y: y, Text: s})
}

// Texts returns the free text on the Figure.
func (f *Figure) Texts() []Text {
	out := make([]Text, len(f.texts))
	copy(out, f.texts)
	return out
}

// Save renders the Figure to path as PNG or SVG, chosen by extension.
func (f *Figure) Save(w, h vg.Length, path string) error {
	var c interface {
		vg.CanvasSizer
		io.WriterTo
	}
	switch ext := filepath.Ext(path); ext {
	case ".png":
		c = vgimg.PngCanvas{Canvas: vgimg.New(w, h)}
	case ".svg":
		c = vgsvg.New(w, h)
	default:
		return fmt.Errorf("figure: unsupported image format %q", ext)
	}
	f.Draw(draw.New(c))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure file: %w", err)
	}
	if _, err := c.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("write figure: %w", err)
	}
	return file.Close()
}

// Draw renders every Axes, the figure title and the free text onto dc.
func (f *Figure) Draw(dc draw.Canvas) {
	for _, ax := range f.axes {
		sub := subCanvas(dc, ax.Position)
		ax.Plot.Draw(sub)
		// The first legend is the plot's own and was drawn with it.
		for i, l := range ax.legends {
			if i > 0 {
				l.Plot.Draw(sub)
			}
		}
	}
	if len(f.axes) == 0 {
		return
	}
	sty := f.axes[0].Plot.Title.TextStyle
	width := dc.Max.X - dc.Min.X
	height := dc.Max.Y - dc.Min.Y
	if f.Title != "" {
		pt := vg.Point{X: dc.Min.X + width/2, Y: dc.Max.Y - sty.Font.Size}
		ts := sty
		ts.XAlign = draw.XCenter
		dc.FillText(ts, pt, f.Title)
	}
	for _, t := range f.texts {
		pt := vg.Point{
			X: dc.Min.X + vg.Length(t.X)*width,
			Y: dc.Min.Y + vg.Length(t.Y)*height,
		}
		dc.FillText(sty, pt, t.Text)
	}
}

func subCanvas(dc draw.Canvas, pos Rect) draw.Canvas {
	width := dc.Max.X - dc.Min.X
	height := dc.Max.Y - dc.Min.Y
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: dc.Min.X + vg.Length(pos.XMin)*width, Y: dc.Min.Y + vg.Length(pos.YMin)*height},
			Max: vg.Point{X: dc.Min.X + vg.Length(pos.XMax)*width, Y: dc.Min.Y + vg.Length(pos.YMax)*height},
		},
	}
}

// newPlot returns a plot with the settings every Axes starts from.
func newPlot() *plot.Plot {
	p := plot.New()
	p.Legend.Top = true
	return p
}
