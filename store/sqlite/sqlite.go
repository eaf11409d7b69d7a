/*
Package sqlite provides a SQLite-backed store for statement runs.

PURPOSE:
  Persists completed applier runs - the posted entries, the per-period
  reconciliation checks, and the run-level flags - so a presentation layer
  can fetch a run later without recomputing it. The engine itself stays
  pure; this store only records its outputs.

APPEND-ONLY ENFORCEMENT:
  Posted entries are immutable. The store exposes no UPDATE or DELETE on
  the entries table; a corrected run is saved as a new run with a new ID.

KEY TABLES:
  runs:            One row per applier run (UUID, flags, timestamps)
  posted_entries:  Immutable ledger lines keyed to their run
  recon_checks:    Reconciliation outcomes keyed to their run

MONEY COLUMNS:
  Monetary values are stored as exact decimal strings, never as REAL, so a
  reloaded run compares equal to the run that was saved.

WAL MODE:
  SQLite is opened with WAL for better concurrency. Use ":memory:" for
  tests, as the engine's own tests do.

SEE ALSO:
  - ledger/applier.go: Produces the ApplierOutput saved here
  - api/handlers.go: Exposes saved runs over HTTP
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/ricardocidale/LB-Hospitality-sub008/ledger"
)

// Store persists statement runs in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// RunSummary is the run-level metadata returned by ListRuns.
type RunSummary struct {
	ID               string
	Label            string
	CreatedAt        time.Time
	EntryCount       int
	HasPostingErrors bool
	AllPassed        bool
}

// Run is a fully loaded statement run.
type Run struct {
	RunSummary
	Entries          []ledger.PostedEntry
	UnbalancedEvents []string
	Checks           []ledger.ReconciliationCheck
}

// New creates a store at dbPath. Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Statement runs
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		label TEXT NOT NULL DEFAULT '',
		has_posting_errors BOOLEAN NOT NULL,
		all_passed BOOLEAN NOT NULL,
		unbalanced_events TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	-- Posted entries (append-only ledger lines)
	CREATE TABLE IF NOT EXISTS posted_entries (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		event_id TEXT NOT NULL,
		period TEXT NOT NULL,
		account TEXT NOT NULL,
		debit TEXT NOT NULL,
		credit TEXT NOT NULL,
		classification TEXT NOT NULL,
		cash_flow_bucket TEXT NOT NULL DEFAULT '',
		memo TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_entries_run_period
		ON posted_entries(run_id, period);
	CREATE INDEX IF NOT EXISTS idx_entries_run_account
		ON posted_entries(run_id, account);

	-- Reconciliation checks
	CREATE TABLE IF NOT EXISTS recon_checks (
		run_id TEXT NOT NULL REFERENCES runs(id),
		seq INTEGER NOT NULL,
		name TEXT NOT NULL,
		period TEXT NOT NULL,
		passed BOOLEAN NOT NULL,
		expected TEXT NOT NULL,
		actual TEXT NOT NULL,
		variance TEXT NOT NULL,
		gaap_ref TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_checks_run
		ON recon_checks(run_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun persists an applier output under a fresh UUID and returns the ID.
func (s *Store) SaveRun(ctx context.Context, label string, out *ledger.ApplierOutput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, label, has_posting_errors, all_passed, unbalanced_events, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		runID, label, out.HasPostingErrors, out.Reconciliation.AllPassed,
		strings.Join(out.UnbalancedEvents, ","), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	for i, e := range out.Entries {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO posted_entries
				(run_id, seq, event_id, period, account, debit, credit, classification, cash_flow_bucket, memo)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, e.EventID, e.Period.String(), e.Account,
			e.Debit.String(), e.Credit.String(),
			string(e.Classification), string(e.CashFlowBucket), e.Memo,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert entry %d: %w", i, err)
		}
	}

	for i, c := range out.Reconciliation.Checks {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO recon_checks
				(run_id, seq, name, period, passed, expected, actual, variance, gaap_ref)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, i, c.Name, c.Period.String(), c.Passed,
			c.Expected.String(), c.Actual.String(), c.Variance.String(), c.GAAPRef,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert check %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return runID, nil
}

// LoadRun fetches a complete run by ID. Returns sql.ErrNoRows when absent.
func (s *Store) LoadRun(ctx context.Context, runID string) (*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run := &Run{}
	var createdAt, unbalanced string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, label, has_posting_errors, all_passed, unbalanced_events, created_at
		FROM runs WHERE id = ?`, runID,
	).Scan(&run.ID, &run.Label, &run.HasPostingErrors, &run.AllPassed, &unbalanced, &createdAt)
	if err != nil {
		return nil, err
	}
	run.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if unbalanced != "" {
		run.UnbalancedEvents = strings.Split(unbalanced, ",")
	}

	if run.Entries, err = s.loadEntries(ctx, runID); err != nil {
		return nil, err
	}
	run.EntryCount = len(run.Entries)

	if run.Checks, err = s.loadChecks(ctx, runID); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *Store) loadEntries(ctx context.Context, runID string) ([]ledger.PostedEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT event_id, period, account, debit, credit, classification, cash_flow_bucket, memo
		FROM posted_entries WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ledger.PostedEntry
	for rows.Next() {
		var e ledger.PostedEntry
		var period, debit, credit, class, bucket string
		if err := rows.Scan(&e.EventID, &period, &e.Account, &debit, &credit, &class, &bucket, &e.Memo); err != nil {
			return nil, err
		}
		if e.Period, err = ledger.ParsePeriod(period); err != nil {
			return nil, err
		}
		if e.Debit, err = decimal.NewFromString(debit); err != nil {
			return nil, fmt.Errorf("corrupt debit %q: %w", debit, err)
		}
		if e.Credit, err = decimal.NewFromString(credit); err != nil {
			return nil, fmt.Errorf("corrupt credit %q: %w", credit, err)
		}
		e.Classification = ledger.Classification(class)
		e.CashFlowBucket = ledger.CashFlowBucket(bucket)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) loadChecks(ctx context.Context, runID string) ([]ledger.ReconciliationCheck, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, period, passed, expected, actual, variance, gaap_ref
		FROM recon_checks WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []ledger.ReconciliationCheck
	for rows.Next() {
		var c ledger.ReconciliationCheck
		var period, expected, actual, variance string
		if err := rows.Scan(&c.Name, &period, &c.Passed, &expected, &actual, &variance, &c.GAAPRef); err != nil {
			return nil, err
		}
		if c.Period, err = ledger.ParsePeriod(period); err != nil {
			return nil, err
		}
		if c.Expected, err = decimal.NewFromString(expected); err != nil {
			return nil, err
		}
		if c.Actual, err = decimal.NewFromString(actual); err != nil {
			return nil, err
		}
		if c.Variance, err = decimal.NewFromString(variance); err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	return checks, rows.Err()
}

// ListRuns returns run summaries, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.label, r.has_posting_errors, r.all_passed, r.created_at,
		       (SELECT COUNT(*) FROM posted_entries e WHERE e.run_id = r.id)
		FROM runs r ORDER BY r.created_at DESC, r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var rs RunSummary
		var createdAt string
		if err := rows.Scan(&rs.ID, &rs.Label, &rs.HasPostingErrors, &rs.AllPassed, &createdAt, &rs.EntryCount); err != nil {
			return nil, err
		}
		rs.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, rs)
	}
	return out, rows.Err()
}
