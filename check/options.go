package check

import "strings"

// Options tunes a single assertion. The zero value selects every default;
// fields an assertion does not use are ignored.
type Options struct {
	// Axis is "x" (default) or "y".
	Axis string
	// TitleType is "either" (default), "figure" or "axes".
	TitleType string

	// Tolerance is an absolute tolerance; 0 compares to within a few ULPs.
	Tolerance float64
	// RelTolerance accepts values within RelTolerance times the expected
	// value. It is used only when Tolerance is 0.
	RelTolerance float64
	// Decimals compares polygon vertices to this many decimal places; 0
	// requires exact equality.
	Decimals int

	// PointsOnly restricts data extraction to scatter markers.
	PointsOnly bool
	// XLabels compares rendered x tick labels instead of x data.
	XLabels bool
	// XCol and YCol name the expected columns; they default to "x" and "y".
	XCol, YCol string
	// NoCoverage skips the check that a matched line spans the data.
	NoCoverage bool
	// Classified lets raster values be shifted or reversed.
	Classified bool

	// Message replaces the default failure message. MessageOr is used when
	// none of a group of alternatives was found, MessageMissing when the
	// checked element is absent, and MessageAlt for the assertion's second
	// failure mode (a count or a max limit). Messages may use {0} and {1}
	// placeholders as documented per assertion.
	Message        string
	MessageOr      string
	MessageMissing string
	MessageAlt     string
}

// Normalize validates o and fills in defaults.
func (o Options) Normalize() (Options, error) {
	opts := o

	opts.Axis = strings.ToLower(strings.TrimSpace(opts.Axis))
	if opts.Axis == "" {
		opts.Axis = "x"
	}
	if opts.Axis != "x" && opts.Axis != "y" {
		return opts, Usagef("axis must be one of [x y], got %q", o.Axis)
	}

	opts.TitleType = strings.ToLower(strings.TrimSpace(opts.TitleType))
	switch opts.TitleType {
	case "":
		opts.TitleType = "either"
	case "either", "figure", "axes":
	default:
		return opts, Usagef("title type must be one of [figure axes either], got %q", o.TitleType)
	}

	if opts.Tolerance < 0 || opts.RelTolerance < 0 {
		return opts, Usagef("tolerance must be non-negative")
	}
	if opts.Decimals < 0 {
		return opts, Usagef("decimals must be non-negative, got %d", opts.Decimals)
	}

	if opts.XCol == "" {
		opts.XCol = "x"
	}
	if opts.YCol == "" {
		opts.YCol = "y"
	}
	return opts, nil
}

// Resolve normalises the first element of opts, or the zero Options when
// opts is empty. Later elements are ignored.
func Resolve(opts []Options) (Options, error) {
	if len(opts) == 0 {
		return Options{}.Normalize()
	}
	return opts[0].Normalize()
}

// Msg returns Message, or def when it is unset.
func (o Options) Msg(def string) string { return orDefault(o.Message, def) }

// MsgOr returns MessageOr, or def when it is unset.
func (o Options) MsgOr(def string) string { return orDefault(o.MessageOr, def) }

// MsgMissing returns MessageMissing, or def when it is unset.
func (o Options) MsgMissing(def string) string { return orDefault(o.MessageMissing, def) }

// MsgAlt returns MessageAlt, or def when it is unset.
func (o Options) MsgAlt(def string) string { return orDefault(o.MessageAlt, def) }

func orDefault(s, def string) string {
	if s != "" {
		return s
	}
	return def
}
