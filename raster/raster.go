// Package raster checks image plots: the displayed array, how a
// classified heat map's legend describes it, its colour bar and whether
// it fills the Axes.
package raster

import (
	"errors"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/figure"
	"github.com/banshee-data/plotcheck/internal/compare"
	"github.com/banshee-data/plotcheck/internal/extract"
)

// Tester adds raster assertions to check.Tester.
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

// Colorbars returns the value range of every colour bar on the Axes.
func (rt *Tester) Colorbars() []extract.Colorbar {
	return extract.Colorbars(rt.Axes())
}

// AssertColorbarRange checks that exactly one colour bar is shown and that
// it spans crange[0] to crange[1]. A nil crange skips the check; an empty
// one checks only the colour bar count.
//
// MessageMissing defaults to "Exactly one colorbar should be displayed",
// Message ({0}: expected) to "Colorbar minimum is not expected value:{0}"
// and MessageAlt ({0}: expected) to "Colorbar maximum is not expected
// value:{0}".
func (rt *Tester) AssertColorbarRange(crange []float64, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if crange == nil {
		return nil
	}
	if len(crange) != 0 && len(crange) != 2 {
		return check.Usagef("colorbar range must hold 0 or 2 values, got %d", len(crange))
	}
	cbs := rt.Colorbars()
	countMsg := o.MsgMissing("Exactly one colorbar should be displayed")
	switch len(cbs) {
	case 0:
		return check.Missing(countMsg)
	case 1:
	default:
		return check.Mismatch(countMsg)
	}
	if len(crange) == 0 {
		return nil
	}
	if cbs[0].Min != crange[0] {
		return check.Mismatch(check.Format(o.Msg("Colorbar minimum is not expected value:{0}"), crange[0]))
	}
	if cbs[0].Max != crange[1] {
		return check.Mismatch(check.Format(o.MsgAlt("Colorbar maximum is not expected value:{0}"), crange[1]))
	}
	return nil
}

// Image returns the bands of the first image or heat map on the Axes.
func (rt *Tester) Image() ([]*mat.Dense, error) {
	bands, err := extract.Image(rt.Axes())
	if errors.Is(err, extract.ErrNoPrimitive) {
		return nil, check.Missing("No Image Displayed")
	}
	return bands, err
}

// AssertImage checks the first image or heat map against want, one matrix
// per band: a single band for heat maps, red, green and blue for images.
// With Classified set the displayed values may be shifted so that their
// minimum matches want's, or reversed, and still pass.
//
// MessageMissing defaults to "No Image Displayed", MessageAlt to
// "Incorrect Image Size" and Message to "Incorrect Image Displayed".
func (rt *Tester) AssertImage(want []*mat.Dense, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want == nil {
		return nil
	}
	got, err := extract.Image(rt.Axes())
	if errors.Is(err, extract.ErrNoPrimitive) {
		return check.Missing(o.MsgMissing("No Image Displayed"))
	}
	if err != nil {
		return err
	}
	if !sameShape(got, want) {
		return check.Mismatch(o.MsgAlt("Incorrect Image Size"))
	}

	msg := o.Msg("Incorrect Image Displayed")
	gv, wv := flatten(got), flatten(want)
	if o.Classified {
		shifted, reversed := classify(gv, wv)
		if slices.Equal(shifted, wv) || slices.Equal(reversed, wv) {
			return nil
		}
		return check.Mismatch(msg, "classified values differ after shift and reversal")
	}
	if err := compare.ULP(gv, wv, rt.Config().GetMaxULP()); err != nil {
		return check.Mismatch(msg, err.Error())
	}
	return nil
}

func sameShape(a, b []*mat.Dense) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if b[i] == nil {
			return false
		}
		ar, ac := a[i].Dims()
		br, bc := b[i].Dims()
		if ar != br || ac != bc {
			return false
		}
	}
	return true
}

// flatten returns every band's values in row-major order, band after band.
func flatten(bands []*mat.Dense) []float64 {
	var out []float64
	for _, b := range bands {
		r, _ := b.Dims()
		for i := 0; i < r; i++ {
			out = append(out, mat.Row(nil, i, b)...)
		}
	}
	return out
}

// classify shifts got so its minimum equals want's minimum and also
// returns the shifted values reflected over the range of got.
func classify(got, want []float64) (shifted, reversed []float64) {
	if len(got) == 0 || len(want) == 0 {
		return got, got
	}
	gmin, gmax := slices.Min(got), slices.Max(got)
	offset := gmin - slices.Min(want)
	span := gmax - gmin
	shifted = make([]float64, len(got))
	reversed = make([]float64, len(got))
	for i, v := range got {
		shifted[i] = v - offset
		d := shifted[i] - span
		if d < 0 {
			d = -d
		}
		reversed[i] = d
	}
	return shifted, reversed
}

// AssertImageFullScreen checks that the first image or heat map spans
// exactly the Axes' x and y limits.
//
// MessageMissing defaults to "No image found on axes" and Message to
// "Image is stretched inaccurately".
func (rt *Tester) AssertImageFullScreen(opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	e, err := extract.ImageExtent(rt.Axes())
	if errors.Is(err, extract.ErrNoPrimitive) {
		return check.Missing(o.MsgMissing("No image found on axes"))
	}
	if err != nil {
		return err
	}
	xlo, xhi := rt.Axes().XLim()
	ylo, yhi := rt.Axes().YLim()
	if e.XMin != xlo || e.XMax != xhi || e.YMin != ylo || e.YMax != yhi {
		return check.Mismatch(o.Msg("Image is stretched inaccurately"))
	}
	return nil
}

// whichLabel returns the first option of the first class whose options
// appear in label, or "" when none does.
func whichLabel(label string, classes [][]string) string {
	for _, opts := range classes {
		for _, s := range opts {
			if strings.Contains(label, strings.ToLower(s)) {
				return opts[0]
			}
		}
	}
	return ""
}

// AssertLegendAccuracyClassifiedImage checks that the legend describes a
// classified heat map correctly. want holds the expected class of every
// cell, numbered from 0; classes[k] lists strings of which at least one
// must appear in the legend label of class k. Each legend entry is tied to
// a class through its label and to cells through its colour.
//
// Message defaults to "Incorrect legend to data relation" and MessageAlt
// to "Incorrect legend labels". A missing heat map fails with "No Image
// Displayed" and a missing legend with "No legend displayed".
func (rt *Tester) AssertLegendAccuracyClassifiedImage(want *mat.Dense, classes [][]string, opts ...check.Options) error {
	o, err := check.Resolve(opts)
	if err != nil {
		return err
	}
	if want == nil || len(classes) == 0 {
		return nil
	}
	for i, c := range classes {
		if len(c) == 0 {
			return check.Usagef("label options for class %d are empty", i)
		}
	}

	cells, err := extract.Cells(rt.Axes())
	if errors.Is(err, extract.ErrNoPrimitive) {
		return check.Missing("No Image Displayed")
	}
	if err != nil {
		return err
	}
	entries := extract.LegendEntries(rt.Axes())
	if len(entries) == 0 {
		return check.Missing("No legend displayed")
	}

	byColor := make(map[[4]float64]string)
	for _, e := range entries {
		if len(e.Attrs) == 0 {
			continue
		}
		byColor[e.Attrs[0].Color] = whichLabel(strings.ToLower(e.Label), classes)
	}
	named := 0
	for _, v := range byColor {
		if v != "" {
			named++
		}
	}
	if named != len(classes) {
		return check.Mismatch(o.MsgAlt("Incorrect legend labels"))
	}

	msg := o.Msg("Incorrect legend to data relation")
	rows, cols := want.Dims()
	if len(cells) != rows || (rows > 0 && len(cells[0]) != cols) {
		return check.Mismatch(msg, "image and expected classes differ in size")
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			k := int(want.At(r, c))
			if k < 0 || k >= len(classes) || float64(k) != want.At(r, c) {
				return check.Usagef("expected class %v at (%d, %d) is not a class index", want.At(r, c), r, c)
			}
			if byColor[cells[r][c].Color] != classes[k][0] {
				return check.Mismatch(msg)
			}
		}
	}
	return nil
}
