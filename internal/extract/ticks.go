package extract

import (
	"gonum.org/v1/plot"

	"github.com/banshee-data/plotcheck/figure"
)

// splitter is a tick marker that keeps its own major and minor sets.
type splitter interface {
	Split(min, max float64) (major, minor []plot.Tick)
}

// Ticks returns the major and minor ticks the x axis marker produces for
// the current x range. Markers that do not split their ticks themselves
// have labelled ticks counted as major.
func Ticks(ax *figure.Axes) (major, minor []plot.Tick) {
	lo, hi := ax.XLim()
	if s, ok := ax.Plot.X.Tick.Marker.(splitter); ok {
		return s.Split(lo, hi)
	}
	for _, t := range ax.Plot.X.Tick.Marker.Ticks(lo, hi) {
		if t.IsMinor() {
			minor = append(minor, t)
		} else {
			major = append(major, t)
		}
	}
	return major, minor
}

// TickLabels returns the labels of the major x ticks.
func TickLabels(ax *figure.Axes) []string {
	major, _ := Ticks(ax)
	out := make([]string, len(major))
	for i, t := range major {
		out[i] = t.Label
	}
	return out
}
