package extract

import (
	"gonum.org/v1/plot/plotter"

	"github.com/banshee-data/plotcheck/figure"
)

// Bin is one bar of a histogram or bar chart.
type Bin struct {
	Mid    float64
	Height float64
}

func primitiveBins(p figure.Primitive) []Bin {
	switch p.Kind {
	case figure.KindBars:
		b, _ := p.Bars()
		return barBins(b)
	case figure.KindHistogram:
		h, _ := p.Histogram()
		out := make([]Bin, len(h.Bins))
		for i, hb := range h.Bins {
			out[i] = Bin{Mid: (hb.Min + hb.Max) / 2, Height: hb.Weight}
		}
		return out
	}
	return nil
}

// barBins places bar i at XMin+i, which is where gonum centres it on the
// category axis. Offset only shifts the drawn bar in canvas units, so it
// does not move the bin. Horizontal charts keep the same bins; XY swaps
// their coordinates.
func barBins(b *plotter.BarChart) []Bin {
	out := make([]Bin, len(b.Values))
	for i, v := range b.Values {
		out[i] = Bin{Mid: b.XMin + float64(i), Height: v}
	}
	return out
}

// Bins returns the bins of every bar chart and histogram on ax, in draw
// order. When several histograms share an Axes their bins are simply
// concatenated.
func Bins(ax *figure.Axes) []Bin {
	var out []Bin
	for _, p := range ax.Primitives() {
		out = append(out, primitiveBins(p)...)
	}
	return out
}

// BinHeights returns the height of every bin.
func BinHeights(ax *figure.Axes) []float64 {
	bins := Bins(ax)
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Height
	}
	return out
}

// BinMidpoints returns the midpoint of every bin.
func BinMidpoints(ax *figure.Axes) []float64 {
	bins := Bins(ax)
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Mid
	}
	return out
}

// NumBins counts bins with distinct midpoints. Overlaid histograms that
// share their edges count once.
func NumBins(ax *figure.Axes) int {
	seen := make(map[float64]struct{})
	for _, b := range Bins(ax) {
		seen[b.Mid] = struct{}{}
	}
	return len(seen)
}
