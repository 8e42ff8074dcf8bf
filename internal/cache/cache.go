package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// Entry is one recorded validation run.
type Entry struct {
	SpecHash    string
	RunID       string
	ValidatedAt time.Time
	DefectCount int
	Report      string
}

// Valid returns true if the recorded run found no defects.
func (e *Entry) Valid() bool {
	return e.DefectCount == 0
}

// Store is a SQLite-backed record of validation runs, keyed by spec hash.
type Store struct {
	db *sql.DB

	saveStmt   *sql.Stmt
	lookupStmt *sql.Stmt
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("cache path cannot be empty")
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d", path, int((5 * time.Second).Milliseconds()))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// SQLite supports a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &Store{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	if err := store.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare cache statements: %w", err)
	}

	return store, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS validation_runs (
		spec_hash    TEXT PRIMARY KEY,
		run_id       TEXT NOT NULL,
		validated_at INTEGER NOT NULL,
		defect_count INTEGER NOT NULL,
		report       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_validation_runs_validated_at
		ON validation_runs(validated_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *Store) prepareStatements() error {
	var err error

	s.saveStmt, err = s.db.Prepare(`
		INSERT INTO validation_runs (spec_hash, run_id, validated_at, defect_count, report)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(spec_hash) DO UPDATE SET
			run_id = excluded.run_id,
			validated_at = excluded.validated_at,
			defect_count = excluded.defect_count,
			report = excluded.report
	`)
	if err != nil {
		return err
	}

	s.lookupStmt, err = s.db.Prepare(`
		SELECT spec_hash, run_id, validated_at, defect_count, report
		FROM validation_runs
		WHERE spec_hash = ?
	`)
	return err
}

// Record stores the outcome of a validation run, stamping it with a fresh
// run id. It returns the stored entry.
func (s *Store) Record(ctx context.Context, specHash string, defectCount int, report string) (*Entry, error) {
	entry := &Entry{
		SpecHash:    specHash,
		RunID:       uuid.NewString(),
		ValidatedAt: time.Now().UTC(),
		DefectCount: defectCount,
		Report:      report,
	}

	_, err := s.saveStmt.ExecContext(ctx,
		entry.SpecHash,
		entry.RunID,
		entry.ValidatedAt.Unix(),
		entry.DefectCount,
		entry.Report,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to record validation run: %w", err)
	}
	return entry, nil
}

// Lookup returns the recorded run for the given spec hash, or nil if the
// spec has not been validated before.
func (s *Store) Lookup(ctx context.Context, specHash string) (*Entry, error) {
	var entry Entry
	var validatedAt int64

	err := s.lookupStmt.QueryRowContext(ctx, specHash).Scan(
		&entry.SpecHash,
		&entry.RunID,
		&validatedAt,
		&entry.DefectCount,
		&entry.Report,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up validation run: %w", err)
	}

	entry.ValidatedAt = time.Unix(validatedAt, 0).UTC()
	return &entry, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.saveStmt != nil {
		s.saveStmt.Close()
	}
	if s.lookupStmt != nil {
		s.lookupStmt.Close()
	}
	return s.db.Close()
}

// HashSpec computes the cache key for raw spec bytes.
func HashSpec(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
