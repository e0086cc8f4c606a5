// Package autograde runs assertions as scored tests and prints the
// tally. A failing assertion becomes a Result that earns no points; it
// never stops the remaining tests.
package autograde

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/banshee-data/plotcheck/internal/timeutil"
)

// Default result messages.
const (
	DefaultCorrect = "default correct"
	DefaultError   = "default error"
)

// Result is the outcome of one test.
type Result struct {
	Description string
	// Points is what the test earned: Possible on a pass, 0 otherwise.
	Points   float64
	Possible float64
	Pass     bool
	Message  string
	// Err is the assertion error of a failed test.
	Err error
	// Elapsed is how long the test took when run through a Run.
	Elapsed time.Duration
}

// Messages replaces the default pass and fail messages of a test.
type Messages struct {
	Correct string
	Error   string
}

// RunTest calls fn and scores it. A nil error earns points and the
// Correct message; any error earns nothing and the Error message, and is
// kept in Err.
func RunTest(description string, points float64, fn func() error, msgs ...Messages) Result {
	m := Messages{Correct: DefaultCorrect, Error: DefaultError}
	if len(msgs) > 0 {
		if msgs[0].Correct != "" {
			m.Correct = msgs[0].Correct
		}
		if msgs[0].Error != "" {
			m.Error = msgs[0].Error
		}
	}
	r := Result{Description: description, Possible: points}
	if err := fn(); err != nil {
		r.Message = m.Error
		r.Err = err
		return r
	}
	r.Pass = true
	r.Message = m.Correct
	r.Points = points
	return r
}

// OutputResults writes a report of results to w and returns the points
// earned across them.
func OutputResults(w io.Writer, results []Result) float64 {
	var total float64
	for _, r := range results {
		total += r.Points
		fmt.Fprintf(w, "Results for test '%s':\n", r.Description)
		if r.Pass {
			fmt.Fprintf(w, " Pass! %s (%s points)\n", r.Message, humanize.Ftoa(r.Points))
			continue
		}
		fmt.Fprintf(w, " Fail! %s (%s points)\n", r.Message, humanize.Ftoa(r.Points))
		fmt.Fprintf(w, " Traceback: %v\n", r.Err)
	}
	return total
}

// Run collects the results of one grading session.
type Run struct {
	ID        string
	Name      string
	StartedAt time.Time
	Results   []Result

	clock timeutil.Clock
}

// NewRun starts a run with a fresh ID.
func NewRun(name string) *Run {
	return NewRunWithClock(name, timeutil.RealClock{})
}

// NewRunWithClock starts a run that reads start times and durations from
// clock.
func NewRunWithClock(name string, clock timeutil.Clock) *Run {
	return &Run{
		ID:        uuid.New().String(),
		Name:      name,
		StartedAt: clock.Now().UTC(),
		clock:     clock,
	}
}

// Test runs fn through RunTest, times it and records the result.
func (r *Run) Test(description string, points float64, fn func() error, msgs ...Messages) Result {
	if r.clock == nil {
		r.clock = timeutil.RealClock{}
	}
	start := r.clock.Now()
	res := RunTest(description, points, fn, msgs...)
	res.Elapsed = r.clock.Since(start)
	r.Results = append(r.Results, res)
	return res
}

// Elapsed returns the total time spent in the run's tests.
func (r *Run) Elapsed() time.Duration {
	var d time.Duration
	for _, res := range r.Results {
		d += res.Elapsed
	}
	return d
}

// Score returns the points earned and available across the run.
func (r *Run) Score() (earned, possible float64) {
	for _, res := range r.Results {
		earned += res.Points
		possible += res.Possible
	}
	return earned, possible
}

// Summary is a one-line description of the run's score.
func (r *Run) Summary() string {
	earned, possible := r.Score()
	passed := 0
	for _, res := range r.Results {
		if res.Pass {
			passed++
		}
	}
	return fmt.Sprintf("%s: %s/%s points, %d of %d tests passed",
		r.Name, humanize.Ftoa(earned), humanize.Ftoa(possible), passed, len(r.Results))
}
