// Package history persists validation runs in a local SQLite database
// so past results can be listed and aggregated across invocations.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/harrison/doclint/internal/models"
)

// Run represents a single recorded validation run
type Run struct {
	ID             string // UUID assigned at record time
	Timestamp      time.Time
	TargetPath     string // File or directory that was validated
	DocumentCount  int
	PrincipleCount int
	ViolationCount int
	Passed         bool
}

// RuleCount is an aggregate of violations per rule across runs
type RuleCount struct {
	Rule  string
	Count int
}

// Store manages the SQLite database for run history
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore creates a new Store instance and initializes the database
func NewStore(dbPath string) (*Store, error) {
	// Handle in-memory database
	if dbPath == ":memory:" {
		return openAndInitStore(dbPath)
	}

	// Ensure parent directory exists for file-based databases
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	return openAndInitStore(dbPath)
}

// openAndInitStore opens the database connection and initializes schema
func openAndInitStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Configure SQLite for concurrent access with retry logic.
	// busy_timeout must come first so subsequent operations wait on locks.
	pragmas := []string{
		"PRAGMA busy_timeout=5000",
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
	}

	for _, pragma := range pragmas {
		if err := execWithRetry(db, pragma, 5, 10*time.Millisecond); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	store := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return store, nil
}

// execWithRetry executes a SQL statement with exponential backoff retry
// on "database is locked" errors, which can occur during concurrent
// initialization of the same database file.
func execWithRetry(db *sql.DB, stmt string, maxRetries int, baseDelay time.Duration) error {
	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		_, err := db.Exec(stmt)
		if err == nil {
			return nil
		}

		if !strings.Contains(err.Error(), "database is locked") {
			return err
		}

		lastErr = err
		delay := baseDelay * time.Duration(1<<attempt)
		time.Sleep(delay)
	}
	return lastErr
}

// initSchema creates the history tables if they don't exist
func (s *Store) initSchema() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	timestamp DATETIME NOT NULL,
	target_path TEXT NOT NULL,
	document_count INTEGER NOT NULL,
	principle_count INTEGER NOT NULL,
	violation_count INTEGER NOT NULL,
	passed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS violations (
	run_id TEXT NOT NULL,
	principle_name TEXT NOT NULL,
	rule TEXT NOT NULL,
	detail TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
CREATE INDEX IF NOT EXISTS idx_violations_run ON violations(run_id);
CREATE INDEX IF NOT EXISTS idx_violations_rule ON violations(rule);
`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRun stores a validation run and its violations.
// Returns the generated run ID.
func (s *Store) RecordRun(targetPath string, documentCount, principleCount int, violations []models.Violation) (string, error) {
	runID := uuid.New().String()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, timestamp, target_path, document_count, principle_count, violation_count, passed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		runID, time.Now().UTC(), targetPath, documentCount, principleCount, len(violations), boolToInt(len(violations) == 0),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, v := range violations {
		_, err = tx.Exec(
			`INSERT INTO violations (run_id, principle_name, rule, detail) VALUES (?, ?, ?, ?)`,
			runID, v.PrincipleName, v.Rule, v.Detail,
		)
		if err != nil {
			return "", fmt.Errorf("insert violation: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit transaction: %w", err)
	}

	return runID, nil
}

// RecentRuns returns the most recent runs, newest first
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, timestamp, target_path, document_count, principle_count, violation_count, passed
		 FROM runs ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var passed int
		if err := rows.Scan(&r.ID, &r.Timestamp, &r.TargetPath, &r.DocumentCount, &r.PrincipleCount, &r.ViolationCount, &passed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Passed = passed != 0
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// RunViolations returns the violations recorded for a run
func (s *Store) RunViolations(runID string) ([]models.Violation, error) {
	rows, err := s.db.Query(
		`SELECT principle_name, rule, detail FROM violations WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("query violations: %w", err)
	}
	defer rows.Close()

	var violations []models.Violation
	for rows.Next() {
		var v models.Violation
		if err := rows.Scan(&v.PrincipleName, &v.Rule, &v.Detail); err != nil {
			return nil, fmt.Errorf("scan violation: %w", err)
		}
		violations = append(violations, v)
	}

	return violations, rows.Err()
}

// RuleCounts aggregates violation counts per rule across all recorded
// runs, most frequent first.
func (s *Store) RuleCounts() ([]RuleCount, error) {
	rows, err := s.db.Query(
		`SELECT rule, COUNT(*) FROM violations GROUP BY rule ORDER BY COUNT(*) DESC, rule ASC`)
	if err != nil {
		return nil, fmt.Errorf("query rule counts: %w", err)
	}
	defer rows.Close()

	var counts []RuleCount
	for rows.Next() {
		var rc RuleCount
		if err := rows.Scan(&rc.Rule, &rc.Count); err != nil {
			return nil, fmt.Errorf("scan rule count: %w", err)
		}
		counts = append(counts, rc)
	}

	return counts, rows.Err()
}

// TotalRuns returns the number of recorded runs
func (s *Store) TotalRuns() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return count, nil
}

// Clear removes all recorded runs and violations
func (s *Store) Clear() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM violations`); err != nil {
		return fmt.Errorf("clear violations: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM runs`); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}

	return tx.Commit()
}

// Prune removes runs older than the given retention period
func (s *Store) Prune(keepDays int) (int64, error) {
	if keepDays <= 0 {
		return 0, nil
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -keepDays)

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`DELETE FROM violations WHERE run_id IN (SELECT id FROM runs WHERE timestamp < ?)`, cutoff); err != nil {
		return 0, fmt.Errorf("prune violations: %w", err)
	}

	result, err := tx.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}

	removed, _ := result.RowsAffected()
	return removed, tx.Commit()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
