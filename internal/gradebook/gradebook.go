// Package gradebook stores autograde runs in SQLite so scores can be
// compared across submissions and rendered into reports.
package gradebook

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/banshee-data/plotcheck/autograde"
	"github.com/banshee-data/plotcheck/internal/monitoring"
)

// timeLayout is fixed width so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run ID is not in the store.
var ErrRunNotFound = errors.New("grading run not found")

// Store is a gradebook database.
type Store struct {
	*sql.DB
}

// Open opens or creates the gradebook at path and migrates it to the
// latest schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open gradebook: %w", err)
	}
	s := &Store{db}
	if err := s.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	monitoring.Logf("gradebook ready at %s", path)
	return s, nil
}

// RunSummary is the score of one stored run.
type RunSummary struct {
	ID        string
	Name      string
	StartedAt time.Time
	Earned    float64
	Possible  float64
	Passed    int
	Total     int
}

// SaveRun stores run and its results. Saving a run ID twice is an error.
func (s *Store) SaveRun(run *autograde.Run) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("begin save run: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO grading_runs (run_id, name, started_at) VALUES (?, ?, ?)`,
		run.ID, run.Name, run.StartedAt.UTC().Format(timeLayout),
	); err != nil {
		return fmt.Errorf("insert run %s: %w", run.ID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO grading_results
			(run_id, seq, description, points, possible, pass, message, error_text, elapsed_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare result insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range run.Results {
		errText := ""
		if r.Err != nil {
			errText = r.Err.Error()
		}
		if _, err := stmt.Exec(run.ID, i, r.Description, r.Points, r.Possible, r.Pass, r.Message, errText, int64(r.Elapsed)); err != nil {
			return fmt.Errorf("insert result %d of run %s: %w", i, run.ID, err)
		}
	}
	return tx.Commit()
}

// Run loads a stored run with its results in their original order. A
// failed result's Err carries the stored error text only.
func (s *Store) Run(id string) (*autograde.Run, error) {
	run := &autograde.Run{ID: id}
	var started string
	err := s.QueryRow(`SELECT name, started_at FROM grading_runs WHERE run_id = ?`, id).Scan(&run.Name, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("query run %s: %w", id, err)
	}
	if run.StartedAt, err = time.Parse(timeLayout, started); err != nil {
		return nil, fmt.Errorf("parse start time of run %s: %w", id, err)
	}

	rows, err := s.Query(`
		SELECT description, points, possible, pass, message, error_text, elapsed_ns
		FROM grading_results
		WHERE run_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("query results of run %s: %w", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var r autograde.Result
		var errText string
		var elapsed int64
		if err := rows.Scan(&r.Description, &r.Points, &r.Possible, &r.Pass, &r.Message, &errText, &elapsed); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		if errText != "" {
			r.Err = errors.New(errText)
		}
		r.Elapsed = time.Duration(elapsed)
		run.Results = append(run.Results, r)
	}
	return run, rows.Err()
}

// Summaries returns the score of every stored run, oldest first.
func (s *Store) Summaries() ([]RunSummary, error) {
	rows, err := s.Query(`
		SELECT r.run_id, r.name, r.started_at,
			COALESCE(SUM(g.points), 0), COALESCE(SUM(g.possible), 0),
			COALESCE(SUM(g.pass), 0), COUNT(g.seq)
		FROM grading_runs r
		LEFT JOIN grading_results g ON g.run_id = r.run_id
		GROUP BY r.run_id
		ORDER BY r.started_at, r.run_id
	`)
	if err != nil {
		return nil, fmt.Errorf("query run summaries: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var sum RunSummary
		var started string
		if err := rows.Scan(&sum.ID, &sum.Name, &started, &sum.Earned, &sum.Possible, &sum.Passed, &sum.Total); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		if sum.StartedAt, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parse start time of run %s: %w", sum.ID, err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// PassRates returns, for each test description, the fraction of stored
// results that passed.
func (s *Store) PassRates() (map[string]float64, error) {
	rows, err := s.Query(`
		SELECT description, AVG(pass)
		FROM grading_results
		GROUP BY description
	`)
	if err != nil {
		return nil, fmt.Errorf("query pass rates: %w", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var desc string
		var rate float64
		if err := rows.Scan(&desc, &rate); err != nil {
			return nil, fmt.Errorf("scan pass rate: %w", err)
		}
		out[desc] = rate
	}
	return out, rows.Err()
}

// DeleteRun removes a run and its results.
func (s *Store) DeleteRun(id string) error {
	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("begin delete run: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM grading_results WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("delete results of run %s: %w", id, err)
	}
	res, err := tx.Exec(`DELETE FROM grading_runs WHERE run_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete run %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return tx.Commit()
}
