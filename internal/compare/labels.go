package compare

import (
	"strconv"
	"strings"
	"unicode"
)

// LabelsNumeric compares rendered tick labels against numeric expectations.
// A label that does not parse as a number is a mismatch.
func LabelsNumeric(labels []string, want []float64, maxULP uint) error {
	if err := sameLength(len(labels), len(want)); err != nil {
		return err
	}
	got := make([]float64, len(labels))
	for i, l := range labels {
		v, err := parseLabel(l)
		if err != nil {
			return differ(i, l, want[i])
		}
		got[i] = v
	}
	return ULP(got, want, maxULP)
}

// LabelsText compares rendered tick labels against textual expectations.
// When every expected label is made of digits only, both sides are compared
// as numbers if the rendered labels parse; otherwise the comparison is
// case-sensitive string equality.
func LabelsText(labels, want []string, maxULP uint) error {
	if err := sameLength(len(labels), len(want)); err != nil {
		return err
	}
	if allDigits(want) {
		gotNum, okGot := parseAll(labels)
		wantNum, okWant := parseAll(want)
		if okGot && okWant {
			return ULP(gotNum, wantNum, maxULP)
		}
	}
	return Exact(labels, want)
}

func parseLabel(s string) (float64, error) {
	s = strings.TrimSpace(s)
	// Tick formatters may render negatives with a Unicode minus sign.
	s = strings.ReplaceAll(s, "−", "-")
	return strconv.ParseFloat(s, 64)
}

func parseAll(ss []string) ([]float64, bool) {
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := parseLabel(s)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}

func allDigits(ss []string) bool {
	for _, s := range ss {
		if s == "" {
			return false
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}
