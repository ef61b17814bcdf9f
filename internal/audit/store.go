package audit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// startedLayout is fixed width so that runs sort by their text.
const startedLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store keeps the history of audit runs in sqlite.
type Store struct {
	db     *sql.DB
	dbPath string
}

// RunSummary is one row of the run history.
type RunSummary struct {
	RunID   uuid.UUID
	Started time.Time
	Bound   int
	Passed  int
	Failed  int
	Skipped int
}

// OpenStore opens or creates the history database at path.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// sqlite allows a single writer.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, dbPath: path}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	runsTable := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started TEXT NOT NULL,
		bound INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		failed INTEGER NOT NULL,
		skipped INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started);
	`

	resultsTable := `
	CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		family TEXT NOT NULL,
		axiom TEXT NOT NULL,
		statement TEXT NOT NULL,
		status TEXT NOT NULL,
		detail TEXT,
		duration_ns INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);
	CREATE INDEX IF NOT EXISTS idx_results_axiom ON results(axiom);
	`

	for _, table := range []string{runsTable, resultsTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("creating table: %w", err)
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Path() string { return s.dbPath }

// Save records a report and its results.
func (s *Store) Save(ctx context.Context, r *Report) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	counts := r.Counts()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started, bound, passed, failed, skipped) VALUES (?, ?, ?, ?, ?, ?)`,
		r.RunID.String(), r.Started.UTC().Format(startedLayout), r.Bound,
		counts[StatusPass], counts[StatusFail], counts[StatusSkipped])
	if err != nil {
		return fmt.Errorf("saving run %s: %w", r.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO results (run_id, seq, family, axiom, statement, status, detail, duration_ns) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, res := range r.Results {
		_, err = stmt.ExecContext(ctx, r.RunID.String(), i, res.Family, res.Axiom, res.Statement,
			string(res.Status), res.Detail, res.Duration.Nanoseconds())
		if err != nil {
			return fmt.Errorf("saving result %s: %w", res.Axiom, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing run %s: %w", r.RunID, err)
	}
	return nil
}

// Runs returns the most recent runs, newest first. limit <= 0 means all.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started, bound, passed, failed, skipped FROM runs ORDER BY started DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var (
			id, started string
			run         RunSummary
		)
		if err := rows.Scan(&id, &started, &run.Bound, &run.Passed, &run.Failed, &run.Skipped); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if run.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run id %q: %w", id, err)
		}
		if run.Started, err = time.Parse(startedLayout, started); err != nil {
			return nil, fmt.Errorf("run %s: %w", id, err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Results returns the results of one run in their original order.
func (s *Store) Results(ctx context.Context, runID uuid.UUID) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT family, axiom, statement, status, detail, duration_ns FROM results WHERE run_id = ? ORDER BY seq`,
		runID.String())
	if err != nil {
		return nil, fmt.Errorf("querying results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			res    Result
			status string
			detail sql.NullString
			nanos  int64
		)
		if err := rows.Scan(&res.Family, &res.Axiom, &res.Statement, &status, &detail, &nanos); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		res.Status = Status(status)
		res.Detail = detail.String
		res.Duration = time.Duration(nanos)
		results = append(results, res)
	}
	return results, rows.Err()
}
