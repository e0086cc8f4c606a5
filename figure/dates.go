package figure

import (
	"time"

	"gonum.org/v1/plot"
)

// DateStep is a calendar interval between ticks. Exactly one field should
// be set.
type DateStep struct {
	Years, Months, Days int
}

// Add returns t moved forward by n steps.
func (s DateStep) Add(t time.Time, n int) time.Time {
	return t.AddDate(n*s.Years, n*s.Months, n*s.Days)
}

// IsZero reports whether s moves time at all.
func (s DateStep) IsZero() bool {
	return s.Years <= 0 && s.Months <= 0 && s.Days <= 0
}

// align returns the first step boundary at or after t. Year steps start on
// January 1st of a multiple of Years, month steps on the 1st of every
// Months-th month and day steps at midnight.
func (s DateStep) align(t time.Time) time.Time {
	loc := t.Location()
	var b time.Time
	switch {
	case s.Years > 0:
		y := t.Year() - t.Year()%s.Years
		b = time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case s.Months > 0:
		m := int(t.Month()) - 1
		m -= m % s.Months
		b = time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, loc)
	default:
		b = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	}
	for b.Before(t) {
		b = s.Add(b, 1)
	}
	return b
}

// DateTicks is an x axis marker for Unix-second data. Major ticks fall on
// every Major boundary and are labelled with MajorFormat; minor ticks fall
// on every Minor boundary and are labelled with MinorFormat when it is set.
// Formats use time.Time layouts.
type DateTicks struct {
	Major, Minor             DateStep
	MajorFormat, MinorFormat string
	// Location is the zone boundaries and labels use; nil means UTC.
	Location *time.Location
}

func (d DateTicks) loc() *time.Location {
	if d.Location == nil {
		return time.UTC
	}
	return d.Location
}

func (d DateTicks) steps(min, max float64, s DateStep, layout string) []plot.Tick {
	if s.IsZero() || min > max {
		return nil
	}
	end := unixTime(max, d.loc())
	var ticks []plot.Tick
	for t := s.align(unixTime(min, d.loc())); !t.After(end); t = s.Add(t, 1) {
		tk := plot.Tick{Value: float64(t.Unix())}
		if layout != "" {
			tk.Label = t.Format(layout)
		}
		ticks = append(ticks, tk)
	}
	return ticks
}

// Split returns the major and minor ticks between min and max. Minor ticks
// include positions shared with major ones.
func (d DateTicks) Split(min, max float64) (major, minor []plot.Tick) {
	layout := d.MajorFormat
	if layout == "" {
		layout = "2006-01-02"
	}
	return d.steps(min, max, d.Major, layout), d.steps(min, max, d.Minor, d.MinorFormat)
}

// Ticks implements plot.Ticker. Minor ticks that coincide with a major
// tick are dropped.
func (d DateTicks) Ticks(min, max float64) []plot.Tick {
	major, minor := d.Split(min, max)
	seen := make(map[float64]bool, len(major))
	for _, t := range major {
		seen[t.Value] = true
	}
	out := major
	for _, t := range minor {
		if !seen[t.Value] {
			out = append(out, t)
		}
	}
	return out
}

// Format renders t the way a major (minor false) or minor tick label
// would. ok is false when that tick kind carries no label.
func (d DateTicks) Format(t time.Time, minor bool) (label string, ok bool) {
	layout := d.MajorFormat
	if minor {
		layout = d.MinorFormat
	} else if layout == "" {
		layout = "2006-01-02"
	}
	if layout == "" {
		return "", false
	}
	return t.In(d.loc()).Format(layout), true
}

func unixTime(v float64, loc *time.Location) time.Time {
	sec := int64(v)
	if float64(sec) > v {
		sec--
	}
	return time.Unix(sec, int64((v-float64(sec))*1e9)).In(loc)
}

// SetDateTicks makes the x axis a date axis using d.
func (ax *Axes) SetDateTicks(d DateTicks) {
	ax.Plot.X.Tick.Marker = d
}
