// Package compare decides whether extracted plot data matches expected
// data under a precision policy: ULP distance, absolute or relative
// tolerance, or a number of decimals.
package compare

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

var (
	// ErrShape reports sequences of different lengths.
	ErrShape = errors.New("length mismatch")
	// ErrMismatch reports sequences whose values differ.
	ErrMismatch = errors.New("values differ")
)

// DefaultMaxULP is the ULP distance accepted in exact mode. It absorbs the
// rounding introduced when values pass through unit conversions such as
// time-to-float encoding.
const DefaultMaxULP = 5

func sameLength(got, want int) error {
	if got != want {
		return fmt.Errorf("%w: got %d values, want %d", ErrShape, got, want)
	}
	return nil
}

func differ(i int, got, want any) error {
	return fmt.Errorf("%w: index %d: got %v, want %v", ErrMismatch, i, got, want)
}

// ULP compares element-wise, accepting values at most maxULP units in the
// last place apart.
func ULP(got, want []float64, maxULP uint) error {
	if err := sameLength(len(got), len(want)); err != nil {
		return err
	}
	for i := range got {
		if !scalar.EqualWithinULP(got[i], want[i], maxULP) {
			return differ(i, got[i], want[i])
		}
	}
	return nil
}

// Abs accepts |got-want| <= tol element-wise.
func Abs(got, want []float64, tol float64) error {
	if err := sameLength(len(got), len(want)); err != nil {
		return err
	}
	for i := range got {
		if !scalar.EqualWithinAbs(got[i], want[i], tol) {
			return differ(i, got[i], want[i])
		}
	}
	return nil
}

// Rel accepts values within rtol times the expected value:
// |got-want| <= rtol*|want|.
func Rel(got, want []float64, rtol float64) error {
	if err := sameLength(len(got), len(want)); err != nil {
		return err
	}
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		if math.Abs(got[i]-want[i]) > rtol*math.Abs(want[i]) {
			return differ(i, got[i], want[i])
		}
	}
	return nil
}

// Decimal accepts |got-want| < 1.5 * 10^-dec element-wise.
func Decimal(got, want []float64, dec int) error {
	if err := sameLength(len(got), len(want)); err != nil {
		return err
	}
	limit := 1.5 * math.Pow10(-dec)
	for i := range got {
		if got[i] == want[i] {
			continue
		}
		if !(math.Abs(got[i]-want[i]) < limit) {
			return differ(i, got[i], want[i])
		}
	}
	return nil
}

// Exact requires identical values.
func Exact[T comparable](got, want []T) error {
	if err := sameLength(len(got), len(want)); err != nil {
		return err
	}
	for i := range got {
		if got[i] != want[i] {
			return differ(i, got[i], want[i])
		}
	}
	return nil
}

// Policy selects one of the numeric comparisons.
type Policy struct {
	// Tol is an absolute tolerance; 0 means exact (ULP) comparison.
	Tol float64
	// RelTol is a relative tolerance, applied when Tol is 0.
	RelTol float64
	// MaxULP is the exact-mode threshold; 0 means DefaultMaxULP.
	MaxULP uint
}

// Apply compares got against want under p.
func (p Policy) Apply(got, want []float64) error {
	switch {
	case p.Tol > 0:
		return Abs(got, want, p.Tol)
	case p.RelTol > 0:
		return Rel(got, want, p.RelTol)
	}
	ulp := p.MaxULP
	if ulp == 0 {
		ulp = DefaultMaxULP
	}
	return ULP(got, want, ulp)
}
