// Package check asserts that a rendered gonum plot matches an instructor's
// expectations.
//
// A Tester wraps one figure.Axes. Every Assert method re-reads the Axes,
// returns nil on success and otherwise returns an error that matches
// ErrUsage, ErrMismatch or ErrMissing. A nil or empty expectation skips the
// check and returns nil, so a shared suite can switch checks off per
// exercise. Getter methods return the extracted data so expectations can be
// taken from a reference plot.
package check

import (
	"strings"

	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/compare"
	"github.com/banshee-data/plotcheck/internal/config"
)

// Config tunes comparison precision for a Tester.
type Config = config.CompareConfig

// LoadConfig reads a Config from a JSON file.
func LoadConfig(path string) (*Config, error) {
	return config.LoadCompareConfig(path)
}

// LoadDefaultConfig reads the repository's default Config file, looking in
// the current directory and its parents.
func LoadDefaultConfig() (*Config, error) {
	return config.LoadDefaultConfig()
}

// Tester runs assertions against one Axes.
type Tester struct {
	ax  *figure.Axes
	cfg *Config
}

// New returns a Tester for ax with default precision.
func New(ax *figure.Axes) *Tester {
	return NewWithConfig(ax, nil)
}

// NewWithConfig returns a Tester for ax using cfg. A nil cfg selects the
// defaults.
func NewWithConfig(ax *figure.Axes, cfg *Config) *Tester {
	if cfg == nil {
		cfg = config.DefaultCompareConfig()
	}
	return &Tester{ax: ax, cfg: cfg}
}

// Axes returns the Axes under test.
func (pt *Tester) Axes() *figure.Axes { return pt.ax }

// Config returns the precision settings in use.
func (pt *Tester) Config() *Config { return pt.cfg }

// Policy returns the numeric comparison selected by opts.
func (pt *Tester) Policy(opts Options) compare.Policy {
	return compare.Policy{
		Tol:    opts.Tolerance,
		RelTol: opts.RelTolerance,
		MaxULP: pt.cfg.GetMaxULP(),
	}
}

// All turns words into expectations that must each be present.
func All(words ...string) [][]string {
	out := make([][]string, len(words))
	for i, w := range words {
		out[i] = []string{w}
	}
	return out
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// AssertStringContains checks that s contains every group of want,
// ignoring case and spaces. A group is satisfied when any one of its
// alternatives is present.
//
// Message ({0}: missing string) defaults to "String does not contain
// expected string: {0}"; MessageOr ({0}: the alternatives) to "String does
// not contain at least one of: {0}".
func (pt *Tester) AssertStringContains(s string, want [][]string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	return containsAll(s, want,
		o.Msg("String does not contain expected string: {0}"),
		o.MsgOr("String does not contain at least one of: {0}"))
}

func containsAll(s string, want [][]string, msg, msgOr string) error {
	hay := squash(s)
	for _, alts := range want {
		if len(alts) == 0 {
			return Usagef("empty alternative group in expected strings")
		}
		found := false
		for _, a := range alts {
			if strings.Contains(hay, squash(a)) {
				found = true
				break
			}
		}
		if found {
			continue
		}
		if len(alts) == 1 {
			return Mismatch(Format(msg, alts[0]))
		}
		return Mismatch(Format(msgOr, "["+strings.Join(alts, ", ")+"]"))
	}
	return nil
}

// AssertPlotType checks the kind of plot drawn: "scatter" (markers),
// "bar" (bars or histogram) or "line" (a visible line). An empty plotType
// skips the check. Message ({0}: plot type) defaults to "Plot is not of
// type {0}".
func (pt *Tester) AssertPlotType(plotType string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if plotType == "" {
		return nil
	}

	var ok bool
	switch plotType {
	case "scatter":
		ok = pt.hasPrimitive(func(p figure.Primitive) bool {
			return p.Kind == figure.KindScatter
		})
	case "bar":
		ok = pt.hasPrimitive(func(p figure.Primitive) bool {
			return p.Kind == figure.KindBars || p.Kind == figure.KindHistogram
		})
	case "line":
		ok = pt.hasPrimitive(func(p figure.Primitive) bool {
			l, isLine := p.Line()
			return isLine && l.Width > 0
		})
	default:
		return Usagef("plot type must be one of [scatter bar line], got %q", plotType)
	}
	if !ok {
		return Mismatch(Format(o.Msg("Plot is not of type {0}"), plotType))
	}
	return nil
}

func (pt *Tester) hasPrimitive(match func(figure.Primitive) bool) bool {
	for _, p := range pt.ax.Primitives() {
		if match(p) {
			return true
		}
	}
	return false
}

// Titles returns the figure title and the axes title. Either may be empty.
func (pt *Tester) Titles() (figureTitle, axesTitle string) {
	if f := pt.ax.Figure(); f != nil {
		figureTitle = f.Title
	}
	return figureTitle, pt.ax.Plot.Title.Text
}

// AssertTitleContains checks the title selected by TitleType. With
// "either" the axes and figure titles are searched together.
//
// Message defaults to "Title does not contain expected string: {0}",
// MessageOr to "Title does not contain at least one of: {0}" and
// MessageMissing to "Expected title is not displayed".
func (pt *Tester) AssertTitleContains(want [][]string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if len(want) == 0 {
		return nil
	}
	figTitle, axTitle := pt.Titles()
	var title string
	switch o.TitleType {
	case "figure":
		title = figTitle
	case "axes":
		title = axTitle
	default:
		title = axTitle + figTitle
	}
	if title == "" {
		return Missing(o.MsgMissing("Expected title is not displayed"))
	}
	return containsAll(title, want,
		o.Msg("Title does not contain expected string: {0}"),
		o.MsgOr("Title does not contain at least one of: {0}"))
}

// Caption returns the first free figure text placed just below the right
// half of the Axes. ok is false when there is none.
func (pt *Tester) Caption() (caption string, ok bool) {
	f := pt.ax.Figure()
	if f == nil {
		return "", false
	}
	pos := pt.ax.Position
	band := pt.cfg.GetCaptionBand()
	for _, t := range f.Texts() {
		inY := pos.YMin-band < t.Y && t.Y < pos.YMin
		inX := pos.XMax-0.5 < t.X && t.X < pos.XMax
		if inX && inY {
			return t.Text, true
		}
	}
	return "", false
}

// AssertCaptionContains checks the caption found by Caption.
//
// Message defaults to "Caption does not contain expected string: {0}",
// MessageOr to "Caption does not contain at least one of: {0}" and
// MessageMissing to "No caption exists in appropriate location".
func (pt *Tester) AssertCaptionContains(want [][]string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if len(want) == 0 {
		return nil
	}
	caption, ok := pt.Caption()
	if !ok || caption == "" {
		return Missing(o.MsgMissing("No caption exists in appropriate location"))
	}
	return containsAll(caption, want,
		o.Msg("Caption does not contain expected string: {0}"),
		o.MsgOr("Caption does not contain at least one of: {0}"))
}

// AssertAxisOff passes when the axes were hidden or neither axis draws a
// tick. Message defaults to "Axis lines are displayed on plot".
func (pt *Tester) AssertAxisOff(opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if pt.ax.AxesHidden() {
		return nil
	}
	p := pt.ax.Plot
	xlo, xhi := pt.ax.XLim()
	ylo, yhi := pt.ax.YLim()
	noX := len(p.X.Tick.Marker.Ticks(xlo, xhi)) == 0
	noY := len(p.Y.Tick.Marker.Ticks(ylo, yhi)) == 0
	if noX && noY {
		return nil
	}
	return Mismatch(o.Msg("Axis lines are displayed on plot"))
}

// AssertAxisLabelContains checks the label of Axis.
//
// Message ({0}: missing string, {1}: axis) defaults to "{1}-axis label
// does not contain expected string: {0}", MessageOr to "{1}-axis label
// does not contain at least one of: {0}" and MessageMissing ({0}: axis) to
// "Expected {0} axis label is not displayed".
func (pt *Tester) AssertAxisLabelContains(want [][]string, opts ...Options) error {
	o, err := Resolve(opts)
	if err != nil {
		return err
	}
	if len(want) == 0 {
		return nil
	}
	label := pt.ax.Plot.X.Label.Text
	if o.Axis == "y" {
		label = pt.ax.Plot.Y.Label.Text
	}
	if label == "" {
		return Missing(Format(o.MsgMissing("Expected {0} axis label is not displayed"), o.Axis))
	}
	msg := strings.ReplaceAll(o.Msg("{1}-axis label does not contain expected string: {0}"), "{1}", o.Axis)
	msgOr := strings.ReplaceAll(o.MsgOr("{1}-axis label does not contain at least one of: {0}"), "{1}", o.Axis)
	return containsAll(label, want, msg, msgOr)
}
