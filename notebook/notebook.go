// Package notebook holds helpers for grading plots built in notebook
// cells: picking Axes off a Figure so they outlive the cell that drew
// them, and simple checks over the cells' source text.
package notebook

import (
	"fmt"
	"io"
	"strings"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
)

// Which Axes ConvertAxes returns.
const (
	Current = "current"
	Last    = "last"
	First   = "first"
	All     = "all"
)

// ConvertAxes returns the Axes of fig selected by which: the current Axes,
// the last or first one created, or all of them in creation order. An
// empty which selects Current. Asking for Current on an empty Figure
// creates an Axes, as drawing would.
func ConvertAxes(fig *figure.Figure, which string) ([]*figure.Axes, error) {
	if fig == nil {
		return nil, check.Usagef("nil figure")
	}
	axes := fig.Axes()
	switch which {
	case Current, "":
		return []*figure.Axes{fig.CurrentAxes()}, nil
	case All:
		return axes, nil
	case Last, First:
		if len(axes) == 0 {
			return nil, check.Usagef("figure has no axes")
		}
		if which == First {
			return axes[:1], nil
		}
		return axes[len(axes)-1:], nil
	}
	return nil, check.Usagef("which must be one of [current last first all], got %q", which)
}

// RemoveComments joins the lines of src with everything from a '#' to the
// end of each line removed.
func RemoveComments(src string) string {
	var b strings.Builder
	for _, line := range strings.Split(src, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		b.WriteString(line)
	}
	return b.String()
}

// ImportTest reports whether no cell after the first contains an import
// statement outside a comment, and writes the verdict to w.
func ImportTest(w io.Writer, cells []string) bool {
	for i := 1; i < len(cells); i++ {
		if strings.Contains(RemoveComments(cells[i]), "import ") {
			fmt.Fprintln(w, "IMPORT TEST: FAILED! Import statement found in cell", i+1)
			return false
		}
	}
	fmt.Fprintln(w, "IMPORT TEST: PASSED!")
	return true
}

// ErrorTest reports whether all n of nExp checked cells ran without
// errors, and writes the verdict to w.
func ErrorTest(w io.Writer, n, nExp int) bool {
	if n == nExp {
		fmt.Fprintln(w, "ERRORS TEST: PASSED!")
		return true
	}
	fmt.Fprintln(w, "ERRORS TEST: FAILED!", n, "of", nExp, "Cells ran without errors")
	return false
}
