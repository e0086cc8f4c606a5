package check

import (
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/plotcheck/figure"
)

// Legends returns the legends on the Axes.
func (pt *Tester) Legends() []*figure.Legend {
	return pt.ax.Legends()
}

// AssertLegendTitles checks that there is one legend per expected title
// and that each expected title appears, ignoring case, in some legend
// title.
//
// Message ({0}: expected title) defaults to "Legend title does not contain
// expected string: {0}"; MessageAlt ({0}: expected count, {1}: found) to
// "I was expecting {0} legend titles but instead found {1}".
func (pt *Tester) AssertLegendTitles(want []string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if len(want) == 0 {
		return nil
	}
	legends := pt.Legends()
	if len(legends) != len(want) {
		return Mismatch(Format(o.MsgAlt("I was expecting {0} legend titles but instead found {1}"),
			len(want), len(legends)))
	}
	titles := make([]string, len(legends))
	for i, l := range legends {
		titles[i] = strings.ToLower(l.Title)
	}
	for _, w := range want {
		found := false
		for _, title := range titles {
			if strings.Contains(title, strings.ToLower(w)) {
				found = true
				break
			}
		}
		if !found {
			return Mismatch(Format(o.Msg("Legend title does not contain expected string: {0}"), w))
		}
	}
	return nil
}

// AssertLegendLabels checks that the entry labels of all legends, taken
// together, are exactly want ignoring case and order.
//
// MessageMissing defaults to "Legend does not exist"; MessageAlt ({0}:
// expected count, {1}: found) to "I was expecting {0} legend entries, but
// found {1}. Are there extra labels in your legend?"; Message to "Legend
// does not have expected labels".
func (pt *Tester) AssertLegendLabels(want []string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if len(want) == 0 {
		return nil
	}
	legends := pt.Legends()
	if len(legends) == 0 {
		return Missing(o.MsgMissing("Legend does not exist"))
	}
	got := make(map[string]struct{})
	n := 0
	for _, l := range legends {
		for _, e := range l.Entries() {
			got[strings.ToLower(e.Label)] = struct{}{}
			n++
		}
	}
	if n != len(want) {
		return Mismatch(Format(o.MsgAlt(
			"I was expecting {0} legend entries, but found {1}. Are there extra labels in your legend?"),
			len(want), n))
	}
	exp := make(map[string]struct{}, len(want))
	for _, w := range want {
		exp[strings.ToLower(w)] = struct{}{}
	}
	if len(exp) != len(got) {
		return Mismatch(o.Msg("Legend does not have expected labels"))
	}
	for k := range exp {
		if _, ok := got[k]; !ok {
			return Mismatch(o.Msg("Legend does not have expected labels"))
		}
	}
	return nil
}

// AssertLegendNoOverlayContent checks that every legend sits entirely to
// the left of, to the right of or below the data area. Message defaults to
// "Legend overlays plot window".
func (pt *Tester) AssertLegendNoOverlayContent(opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	data, legends := pt.ax.Extents()
	for _, leg := range legends {
		left := leg.Max.X < data.Min.X
		right := leg.Min.X > data.Max.X
		below := leg.Max.Y < data.Min.Y
		if !left && !right && !below {
			return Mismatch(o.Msg("Legend overlays plot window"))
		}
	}
	return nil
}

// LegendsOverlap reports whether an x edge and a y edge of a both fall
// within the span of b. Callers test both orders to catch containment.
func LegendsOverlap(a, b vg.Rectangle) bool {
	within := func(v, lo, hi vg.Length) bool { return v >= lo && v <= hi }
	x := within(a.Min.X, b.Min.X, b.Max.X) || within(a.Max.X, b.Min.X, b.Max.X)
	y := within(a.Min.Y, b.Min.Y, b.Max.Y) || within(a.Max.Y, b.Min.Y, b.Max.Y)
	return x && y
}

// AssertNoLegendOverlap checks that no two legends overlap. Message
// defaults to "Legends overlap each other".
func (pt *Tester) AssertNoLegendOverlap(opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	_, legends := pt.ax.Extents()
	for i := 0; i < len(legends); i++ {
		for j := i + 1; j < len(legends); j++ {
			if LegendsOverlap(legends[i], legends[j]) || LegendsOverlap(legends[j], legends[i]) {
				return Mismatch(o.Msg("Legends overlap each other"))
			}
		}
	}
	return nil
}
