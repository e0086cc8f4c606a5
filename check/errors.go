package check

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Error kinds. Every error returned by an assertion matches exactly one of
// them under errors.Is.
var (
	// ErrUsage reports an invalid call: an unknown axis, title type, plot
	// type or line type, or expected data of the wrong shape.
	ErrUsage = errors.New("invalid assertion usage")

	// ErrMismatch reports that the plot has the checked property but its
	// value differs from the expectation.
	ErrMismatch = errors.New("plot does not match expectation")

	// ErrMissing reports that the expected title, legend, line, image or
	// caption is absent altogether.
	ErrMissing = errors.New("expected plot element is missing")
)

// Failure is an assertion outcome that a grader shows to a student.
// Error returns Message only; Detail carries the comparison specifics.
type Failure struct {
	Kind    error
	Message string
	Detail  string
}

func (f *Failure) Error() string { return f.Message }

func (f *Failure) Unwrap() error { return f.Kind }

// Mismatch returns a Failure of kind ErrMismatch.
func Mismatch(message string, detail ...string) *Failure {
	return &Failure{Kind: ErrMismatch, Message: message, Detail: strings.Join(detail, "; ")}
}

// Missing returns a Failure of kind ErrMissing.
func Missing(message string) *Failure {
	return &Failure{Kind: ErrMissing, Message: message}
}

// Usagef returns an ErrUsage error.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

// Format fills the {0}, {1}, ... placeholders of a message template.
// Placeholders without an argument are left as they are.
func Format(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}
	pairs := make([]string, 0, 2*len(args))
	for i, a := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(a))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
