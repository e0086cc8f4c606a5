// Package report renders gradebook scores as an HTML page of go-echarts
// bar charts.
package report

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/plotcheck/internal/gradebook"
)

// AssetsHost is where the rendered page loads the echarts scripts from.
var AssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

// scoreChart plots points earned and available per run, in run order.
func scoreChart(sums []gradebook.RunSummary) *charts.Bar {
	names := make([]string, len(sums))
	earned := make([]opts.BarData, len(sums))
	possible := make([]opts.BarData, len(sums))
	for i, s := range sums {
		names[i] = fmt.Sprintf("%s (%s)", s.Name, s.StartedAt.Format("2006-01-02 15:04"))
		earned[i] = opts.BarData{Value: s.Earned}
		possible[i] = opts.BarData{Value: s.Possible}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "plotcheck scores", Width: "100%", Height: "480px", AssetsHost: AssetsHost}),
		charts.WithTitleOpts(opts.Title{Title: "Scores by run", Subtitle: fmt.Sprintf("runs=%d", len(sums))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "points"}),
	)
	bar.SetXAxis(names).
		AddSeries("earned", earned, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"})).
		AddSeries("possible", possible)
	return bar
}

// passRateChart plots the share of passing results per test, as a
// percentage, with tests in name order.
func passRateChart(rates map[string]float64) *charts.Bar {
	tests := make([]string, 0, len(rates))
	for name := range rates {
		tests = append(tests, name)
	}
	slices.Sort(tests)
	data := make([]opts.BarData, len(tests))
	for i, name := range tests {
		data[i] = opts.BarData{Value: 100 * rates[name]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px", AssetsHost: AssetsHost}),
		charts.WithTitleOpts(opts.Title{Title: "Pass rate by test"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "% passed", Min: 0, Max: 100}),
	)
	bar.SetXAxis(tests).
		AddSeries("pass rate", data, charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}))
	return bar
}

// Render writes the score page for sums and rates to w.
func Render(w io.Writer, sums []gradebook.RunSummary, rates map[string]float64) error {
	page := components.NewPage()
	page.SetAssetsHost(AssetsHost)
	page.AddCharts(scoreChart(sums), passRateChart(rates))
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render score report: %w", err)
	}
	return nil
}

// FromStore renders the scores held in s to w.
func FromStore(w io.Writer, s *gradebook.Store) error {
	sums, err := s.Summaries()
	if err != nil {
		return err
	}
	rates, err := s.PassRates()
	if err != nil {
		return err
	}
	return Render(w, sums, rates)
}

// WriteFile renders the scores held in s to an HTML file at path.
func WriteFile(path string, s *gradebook.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := FromStore(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
