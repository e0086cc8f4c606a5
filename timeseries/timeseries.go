// Package timeseries checks plots whose x axis holds dates encoded as Unix
// seconds: how the date ticks are labelled, where they fall, whether no
// data markers were removed and which days were plotted.
package timeseries

import (
	"math"
	"slices"
	"strings"
	"time"

	"gonum.org/v1/plot"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/extract"
)

// DefaultNoData is the missing-value marker used by many climate datasets.
const DefaultNoData = 999.99

// Tick sizes.
const (
	Large = "large"
	Small = "small"
)

// probeDate is formatted by the tick formatter to see what a label shows.
var probeDate = time.Date(2013, time.September, 30, 0, 0, 0, 0, time.UTC)

// Tester adds time-series assertions to check.Tester.
type Tester struct {
	*check.Tester
}

// New returns a Tester for ax with default precision.
func New(ax *figure.Axes) *Tester {
	return &Tester{Tester: check.New(ax)}
}

// NewWithConfig returns a Tester for ax using cfg.
func NewWithConfig(ax *figure.Axes, cfg *check.Config) *Tester {
	return &Tester{Tester: check.NewWithConfig(ax, cfg)}
}

// steps maps each tick interval name to its calendar step.
var steps = map[string]figure.DateStep{
	"decade": {Years: 10},
	"year":   {Years: 1},
	"month":  {Months: 1},
	"week":   {Days: 7},
	"day":    {Days: 1},
}

func step(interval string) (figure.DateStep, error) {
	s, ok := steps[interval]
	if !ok {
		return s, check.Usagef("interval must be one of [decade year month week day], got %q", interval)
	}
	return s, nil
}

func minorSize(tickSize string) (bool, error) {
	switch tickSize {
	case Large:
		return false, nil
	case Small:
		return true, nil
	}
	return false, check.Usagef("tick size must be one of [large small], got %q", tickSize)
}

// accepted lists the squashed, lowercase labels a formatter may produce
// for probeDate at each interval.
func accepted(interval string) []string {
	switch interval {
	case "decade", "year":
		return []string{"2013"}
	case "month":
		return []string{"sep", "september"}
	default:
		return []string{"sep30", "september30"}
	}
}

// label formats probeDate with the x axis formatter of the given size.
func (tt *Tester) label(minor bool) (string, bool) {
	switch m := tt.Axes().Plot.X.Tick.Marker.(type) {
	case figure.DateTicks:
		return m.Format(probeDate, minor)
	case plot.TimeTicks:
		if minor || m.Format == "" {
			return "", false
		}
		return probeDate.Format(m.Format), true
	}
	return "", false
}

// AssertXTicksReformatted checks that x tick labels of tickSize ("large"
// or "small") show dates at the precision interval names: "decade" or
// "year" show the year, "month" the month and "week" or "day" the month
// and day. An empty interval skips the check. Message defaults to "x
// ticks have not been reformatted properly".
func (tt *Tester) AssertXTicksReformatted(tickSize, interval string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if interval == "" {
		return nil
	}
	minor, err := minorSize(tickSize)
	if err != nil {
		return err
	}
	if _, err := step(interval); err != nil {
		return err
	}
	msg := o.Msg("x ticks have not been reformatted properly")
	got, ok := tt.label(minor)
	if !ok {
		return check.Mismatch(msg, "x axis has no date formatter for "+tickSize+" ticks")
	}
	got = strings.ToLower(strings.ReplaceAll(got, " ", ""))
	if !slices.Contains(accepted(interval), got) {
		return check.Mismatch(msg, "formatted label is "+got)
	}
	return nil
}

// AssertXTicksLocs checks that x ticks of tickSize fall exactly one
// interval apart and reach to within one interval of both x limits. An
// empty interval skips the check. Message defaults to "Incorrect X axis
// tick locations" and MessageAlt to "Tick locators do not cover x axis".
func (tt *Tester) AssertXTicksLocs(tickSize, interval string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if interval == "" {
		return nil
	}
	minor, err := minorSize(tickSize)
	if err != nil {
		return err
	}
	s, err := step(interval)
	if err != nil {
		return err
	}

	major, minorTicks := extract.Ticks(tt.Axes())
	ticks := major
	if minor {
		ticks = minorTicks
	}
	cover := o.MsgAlt("Tick locators do not cover x axis")
	if len(ticks) == 0 {
		return check.Mismatch(cover, "no "+tickSize+" ticks")
	}
	lo, hi := tt.Axes().XLim()
	start, end := toTime(ticks[0].Value), toTime(ticks[len(ticks)-1].Value)
	if !start.Before(s.Add(toTime(lo), 1)) || !end.After(s.Add(toTime(hi), -1)) {
		return check.Mismatch(cover)
	}

	var want []float64
	for d := start; !d.After(end); d = s.Add(d, 1) {
		want = append(want, float64(d.Unix()))
	}
	got := make([]float64, len(ticks))
	for i, t := range ticks {
		got[i] = t.Value
	}
	if !slices.Equal(got, want) {
		return check.Mismatch(o.Msg("Incorrect X axis tick locations"))
	}
	return nil
}

// AssertNoDataValue checks that nodata appears in neither the x nor the y
// data. A zero or NaN nodata skips the check. Message ({0}: nodata)
// defaults to "Values of {0} have been found in data. Be sure to remove no
// data values".
func (tt *Tester) AssertNoDataValue(nodata float64, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if nodata == 0 || math.IsNaN(nodata) {
		return nil
	}
	xy := tt.XY(false)
	if slices.Contains(xy.X, nodata) || slices.Contains(xy.Y, nodata) {
		return check.Mismatch(check.Format(
			o.Msg("Values of {0} have been found in data. Be sure to remove no data values"), nodata))
	}
	return nil
}

// AssertXDataDate checks that the plotted x values fall on the calendar
// days of want, in any order. Times are compared by their date in their
// own location; plotted values by their UTC date. Message defaults to
// "X-axis is not in appropriate date format".
func (tt *Tester) AssertXDataDate(want []time.Time, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if len(want) == 0 {
		return nil
	}
	exp := make([]int64, len(want))
	for i, t := range want {
		y, m, d := t.Date()
		exp[i] = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
	}
	xs := tt.XY(false).X
	got := make([]int64, len(xs))
	for i, x := range xs {
		got[i] = int64(math.Floor(x / secondsPerDay))
	}
	slices.Sort(exp)
	slices.Sort(got)
	if !slices.Equal(exp, got) {
		return check.Mismatch(o.Msg("X-axis is not in appropriate date format"))
	}
	return nil
}

const secondsPerDay = 24 * 60 * 60

func toTime(v float64) time.Time {
	sec := math.Floor(v)
	return time.Unix(int64(sec), int64((v-sec)*1e9)).UTC()
}
