// Command plotcheck-examples builds a gallery of student-style plots,
// grades each one and prints the scored results. Optionally it saves the
// rendered figures, stores the run in a gradebook and writes an HTML score
// report from it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/plotcheck/autograde"
	"github.com/banshee-data/plotcheck/check"
	"github.com/banshee-data/plotcheck/internal/gradebook"
	"github.com/banshee-data/plotcheck/internal/monitoring"
	"github.com/banshee-data/plotcheck/internal/report"
	"github.com/banshee-data/plotcheck/internal/version"
	"github.com/banshee-data/plotcheck/notebook"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("plotcheck-examples: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("plotcheck-examples", flag.ContinueOnError)
	var dbPath, reportPath, outDir, configPath, format, only, which string
	fs.StringVar(&dbPath, "db", "", "path to a gradebook sqlite db; empty skips storing the run")
	fs.StringVar(&reportPath, "report", "", "write an HTML score report of the gradebook here (requires -db)")
	fs.StringVar(&outDir, "out", "", "directory to save the rendered example figures in")
	fs.StringVar(&format, "format", "png", "figure format: png or svg")
	fs.StringVar(&configPath, "config", "", "comparison tuning JSON file; defaults to config/compare.defaults.json when found")
	fs.StringVar(&only, "example", "", "grade only the named example")
	fs.StringVar(&which, "axes", notebook.Current, "axes of each figure to grade: current, first, last or all")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintln(stdout, version.String())
		return nil
	}
	if reportPath != "" && dbPath == "" {
		return errors.New("-report requires -db")
	}
	if format != "png" && format != "svg" {
		return fmt.Errorf("unknown figure format %q", format)
	}

	var cfg *check.Config
	if configPath != "" {
		c, err := check.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = c
	} else if c, err := check.LoadDefaultConfig(); err == nil {
		cfg = c
	} else {
		monitoring.Logf("using built-in compare defaults: %v", err)
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	gradeRun := autograde.NewRun("examples")
	graded := 0
	for _, ex := range gallery() {
		if only != "" && ex.name != only {
			continue
		}
		fig, axes, err := ex.draw(which)
		if err != nil {
			return fmt.Errorf("build %s: %w", ex.name, err)
		}
		if outDir != "" {
			path := filepath.Join(outDir, ex.name+"."+format)
			if err := fig.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
				return fmt.Errorf("save %s: %w", ex.name, err)
			}
			monitoring.Logf("saved %s", path)
		}
		before := len(gradeRun.Results)
		for _, ax := range axes {
			ex.grade(gradeRun, ax, cfg)
		}
		for i := before; i < len(gradeRun.Results); i++ {
			gradeRun.Results[i].Description = ex.name + ": " + gradeRun.Results[i].Description
		}
		graded++
	}
	if graded == 0 {
		return fmt.Errorf("no example named %q", only)
	}

	autograde.OutputResults(stdout, gradeRun.Results)
	fmt.Fprintln(stdout, gradeRun.Summary())

	if dbPath == "" {
		return nil
	}
	store, err := gradebook.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := store.SaveRun(gradeRun); err != nil {
		return err
	}
	monitoring.Logf("stored run %s in %s", gradeRun.ID, dbPath)

	if reportPath == "" {
		return nil
	}
	if err := report.WriteFile(reportPath, store); err != nil {
		return err
	}
	monitoring.Logf("wrote report %s", reportPath)
	return nil
}
