package extract

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/figure"
)

// firstRaster returns the first image or heat map primitive on ax.
func firstRaster(ax *figure.Axes) (figure.Primitive, error) {
	for _, p := range ax.Primitives() {
		if p.Kind == figure.KindImage || p.Kind == figure.KindHeatMap {
			return p, nil
		}
	}
	return figure.Primitive{}, fmt.Errorf("%w: no image on axes", ErrNoPrimitive)
}

// Image returns the backing array of the first raster primitive on ax as
// one matrix per band. Heat maps yield a single band of grid values
// indexed [row][column] as the grid reports them. Images yield red, green
// and blue bands of 0-255 samples with row 0 at the top; alpha is dropped.
func Image(ax *figure.Axes) ([]*mat.Dense, error) {
	p, err := firstRaster(ax)
	if err != nil {
		return nil, err
	}
	if h, ok := p.HeatMap(); ok {
		cols, rows := h.GridXYZ.Dims()
		z := mat.NewDense(rows, cols, nil)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				z.Set(r, c, h.GridXYZ.Z(c, r))
			}
		}
		return []*mat.Dense{z}, nil
	}

	img := p.Image.Img
	b := img.Bounds()
	bands := make([]*mat.Dense, 3)
	for i := range bands {
		bands[i] = mat.NewDense(b.Dy(), b.Dx(), nil)
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r, c := y-b.Min.Y, x-b.Min.X
			bands[0].Set(r, c, float64(n.R))
			bands[1].Set(r, c, float64(n.G))
			bands[2].Set(r, c, float64(n.B))
		}
	}
	return bands, nil
}

// Cell is one raster cell: its value (heat maps only) and the colour it is
// drawn in.
type Cell struct {
	Value float64
	Color [4]float64
}

// Cells returns the cells of the first raster primitive on ax in the same
// layout as Image. For images, Value is 0 and Color is the pixel colour.
func Cells(ax *figure.Axes) ([][]Cell, error) {
	p, err := firstRaster(ax)
	if err != nil {
		return nil, err
	}
	if h, ok := p.HeatMap(); ok {
		cols, rows := h.GridXYZ.Dims()
		out := make([][]Cell, rows)
		for r := range out {
			out[r] = make([]Cell, cols)
			for c := range out[r] {
				v := h.GridXYZ.Z(c, r)
				out[r][c] = Cell{Value: v, Color: ColorTuple(HeatMapColor(h, v))}
			}
		}
		return out, nil
	}
	img := p.Image.Img
	b := img.Bounds()
	out := make([][]Cell, b.Dy())
	for r := range out {
		out[r] = make([]Cell, b.Dx())
		for c := range out[r] {
			out[r][c] = Cell{Color: ColorTuple(img.At(b.Min.X+c, b.Min.Y+r))}
		}
	}
	return out, nil
}

// HeatMapColor returns the colour h draws value v in, using the same
// palette lookup as plotter.HeatMap.
func HeatMapColor(h *plotter.HeatMap, v float64) color.Color {
	pal := h.Palette.Colors()
	if len(pal) == 0 {
		return nil
	}
	switch {
	case v < h.Min:
		return h.Underflow
	case v > h.Max:
		return h.Overflow
	case h.Max == h.Min:
		return pal[0]
	}
	ps := float64(len(pal)-1) / (h.Max - h.Min)
	return pal[int((v-h.Min)*ps+0.5)]
}

// Extent is the data rectangle a raster is drawn over.
type Extent struct {
	XMin, XMax, YMin, YMax float64
}

// ImageExtent returns the data rectangle of the first raster primitive.
func ImageExtent(ax *figure.Axes) (Extent, error) {
	p, err := firstRaster(ax)
	if err != nil {
		return Extent{}, err
	}
	dr, ok := p.Plotter.(plot.DataRanger)
	if !ok {
		return Extent{}, fmt.Errorf("%w: %s has no data range", ErrNoPrimitive, p.Kind)
	}
	var e Extent
	e.XMin, e.XMax, e.YMin, e.YMax = dr.DataRange()
	return e, nil
}

// Colorbar is the value range of a colour bar.
type Colorbar struct {
	Min, Max float64
}

// Colorbars returns the colour bars attached to ax.
func Colorbars(ax *figure.Axes) []Colorbar {
	var out []Colorbar
	for _, cb := range ax.Colorbars() {
		if cb.ColorMap == nil {
			continue
		}
		out = append(out, Colorbar{Min: cb.ColorMap.Min(), Max: cb.ColorMap.Max()})
	}
	return out
}
