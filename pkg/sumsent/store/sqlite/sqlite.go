package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/cognicore/sumsent/pkg/sumsent/internalerr"
	"github.com/cognicore/sumsent/pkg/sumsent/store"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database with WAL mode enabled.
func OpenSQLite(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// PRAGMAs are per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	started_at TEXT NOT NULL,
	years TEXT NOT NULL,
	docsets INTEGER NOT NULL,
	docs_parsed INTEGER NOT NULL DEFAULT 0,
	docs_failed INTEGER NOT NULL DEFAULT 0,
	sums_parsed INTEGER NOT NULL DEFAULT 0,
	sums_failed INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS docset_stats (
	run_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	year TEXT NOT NULL,
	docset TEXT NOT NULL,
	side TEXT NOT NULL CHECK(side IN ('docs', 'sums')),
	word_count INTEGER NOT NULL,
	counts TEXT NOT NULL,
	parsed INTEGER NOT NULL,
	failed INTEGER NOT NULL,
	PRIMARY KEY(run_id, position, side),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_docset_stats_docset ON docset_stats(year, docset);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SaveRun inserts or updates a run
func (s *sqliteStore) SaveRun(ctx context.Context, r store.Run) error {
	return saveRun(ctx, s.db, r)
}

// SaveDocset inserts or replaces one side of one docset. The run must exist.
func (s *sqliteStore) SaveDocset(ctx context.Context, runID string, rec store.DocsetRecord) error {
	return saveDocset(ctx, s.db, runID, rec)
}

// SaveResult writes the run and its records in one transaction
func (s *sqliteStore) SaveResult(ctx context.Context, r store.Run, recs []store.DocsetRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := saveRun(ctx, tx, r); err != nil {
		return err
	}
	for _, rec := range recs {
		if err := saveDocset(ctx, tx, r.ID, rec); err != nil {
			return fmt.Errorf("docset %s %s: %w", rec.Docset, rec.Side, err)
		}
	}
	return tx.Commit()
}

func saveRun(ctx context.Context, db execer, r store.Run) error {
	if r.ID == "" {
		return fmt.Errorf("save run: empty id: %w", internalerr.ErrInvalidInput)
	}
	yearsJSON, err := json.Marshal(r.Years)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO runs (id, started_at, years, docsets, docs_parsed, docs_failed, sums_parsed, sums_failed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
	started_at=excluded.started_at,
	years=excluded.years,
	docsets=excluded.docsets,
	docs_parsed=excluded.docs_parsed,
	docs_failed=excluded.docs_failed,
	sums_parsed=excluded.sums_parsed,
	sums_failed=excluded.sums_failed;
`,
		r.ID,
		r.StartedAt.UTC().Format(time.RFC3339Nano),
		string(yearsJSON),
		r.Docsets,
		r.DocParse.Parsed,
		r.DocParse.Failed,
		r.SumParse.Parsed,
		r.SumParse.Failed,
	)
	return err
}

func saveDocset(ctx context.Context, db execer, runID string, rec store.DocsetRecord) error {
	countsJSON, err := json.Marshal(rec.Counts)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
INSERT INTO docset_stats (run_id, position, year, docset, side, word_count, counts, parsed, failed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(run_id, position, side) DO UPDATE SET
	year=excluded.year,
	docset=excluded.docset,
	word_count=excluded.word_count,
	counts=excluded.counts,
	parsed=excluded.parsed,
	failed=excluded.failed;
`, runID, rec.Position, rec.Year, rec.Docset, string(rec.Side), rec.WordCount, string(countsJSON), rec.Parsed, rec.Failed)
	return err
}

const runColumns = `id, started_at, years, docsets, docs_parsed, docs_failed, sums_parsed, sums_failed`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (store.Run, error) {
	var r store.Run
	var startedAt, yearsJSON string
	if err := row.Scan(
		&r.ID, &startedAt, &yearsJSON, &r.Docsets,
		&r.DocParse.Parsed, &r.DocParse.Failed,
		&r.SumParse.Parsed, &r.SumParse.Failed,
	); err != nil {
		return store.Run{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, startedAt)
	if err != nil {
		return store.Run{}, fmt.Errorf("run %s: started_at: %w", r.ID, err)
	}
	r.StartedAt = t
	if err := json.Unmarshal([]byte(yearsJSON), &r.Years); err != nil {
		return store.Run{}, fmt.Errorf("run %s: years: %w", r.ID, err)
	}
	return r, nil
}

// GetRun retrieves a run by ID
func (s *sqliteStore) GetRun(ctx context.Context, id string) (store.Run, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return store.Run{}, fmt.Errorf("run %s: %w", id, internalerr.ErrNotFound)
	}
	return r, err
}

// ListRuns returns the newest runs first
func (s *sqliteStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DocsetRecords returns every record of a run ordered by position then side
func (s *sqliteStore) DocsetRecords(ctx context.Context, runID string) ([]store.DocsetRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT position, year, docset, side, word_count, counts, parsed, failed
FROM docset_stats
WHERE run_id = ?
ORDER BY position, side;
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []store.DocsetRecord
	for rows.Next() {
		var rec store.DocsetRecord
		var side, countsJSON string
		if err := rows.Scan(&rec.Position, &rec.Year, &rec.Docset, &side, &rec.WordCount, &countsJSON, &rec.Parsed, &rec.Failed); err != nil {
			return nil, err
		}
		rec.Side = store.Side(side)
		if err := json.Unmarshal([]byte(countsJSON), &rec.Counts); err != nil {
			return nil, fmt.Errorf("docset %s: counts: %w", rec.Docset, err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}
