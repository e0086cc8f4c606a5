package check

import (
	"time"
)

// Table is an expected dataset: named columns of equal length. A column
// name lives in exactly one of the three maps. Assertions never modify a
// Table.
type Table struct {
	Floats  map[string][]float64
	Strings map[string][]string
	Times   map[string][]time.Time
}

// Len returns the length of the first column found, or 0 for an empty
// Table.
func (t Table) Len() int {
	for _, c := range t.Floats {
		return len(c)
	}
	for _, c := range t.Strings {
		return len(c)
	}
	for _, c := range t.Times {
		return len(c)
	}
	return 0
}

// IsTime reports whether name is a time column.
func (t Table) IsTime(name string) bool {
	_, ok := t.Times[name]
	return ok
}

// Numeric returns column name as float64s. Time columns are converted to
// Unix seconds, the encoding date axes use.
func (t Table) Numeric(name string) ([]float64, error) {
	if c, ok := t.Floats[name]; ok {
		out := make([]float64, len(c))
		copy(out, c)
		return out, nil
	}
	if c, ok := t.Times[name]; ok {
		return TimesToUnix(c), nil
	}
	if _, ok := t.Strings[name]; ok {
		return nil, Usagef("column %q is not numeric", name)
	}
	return nil, Usagef("column %q not found", name)
}

// TimesToUnix converts times to fractional Unix seconds.
func TimesToUnix(ts []time.Time) []float64 {
	out := make([]float64, len(ts))
	for i, tm := range ts {
		out[i] = float64(tm.Unix()) + float64(tm.Nanosecond())/1e9
	}
	return out
}
