// Package storage provides the SQLite backend for the evidence trail.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"

	"juscash/verifier/pkg/evidence"
)

// schema is the evidence table definition. IF NOT EXISTS keeps startup
// idempotent across restarts.
const schema = `
CREATE TABLE IF NOT EXISTS evidence (
	id              TEXT PRIMARY KEY,
	request_id      TEXT NOT NULL,
	process_number  TEXT NOT NULL,
	record_json     TEXT NOT NULL,
	decision        TEXT,
	rationale       TEXT,
	citations_json  TEXT,
	outcome         TEXT NOT NULL,
	latency_ms      INTEGER NOT NULL,
	recorded_at     TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evidence_recorded_at ON evidence(recorded_at);
CREATE INDEX IF NOT EXISTS idx_evidence_process_number ON evidence(process_number);
`

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/evidence.db",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStorage implements evidence.Storage using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStorage opens the database and initializes the schema.
func NewSQLiteStorage(config *SQLiteConfig) (*SQLiteStorage, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "evidence.storage.sqlite")

	db, err := sql.Open("sqlite", config.Path)
	if err != nil {
		return nil, evidence.NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLiteStorage{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("SQLite storage initialized",
		"path", config.Path,
		"wal_mode", config.WALMode,
	)

	return s, nil
}

// initialize sets up the schema and connection pragmas.
func (s *SQLiteStorage) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return evidence.NewStorageError("sqlite", "enable_wal", err)
		}
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return evidence.NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(schema); err != nil {
		return evidence.NewStorageError("sqlite", "create_schema", err)
	}

	return nil
}

// Store persists an evidence record.
func (s *SQLiteStorage) Store(ctx context.Context, record *evidence.Record) error {
	query := `
		INSERT INTO evidence (
			id, request_id, process_number, record_json,
			decision, rationale, citations_json,
			outcome, latency_ms, recorded_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var decision, rationale, citations interface{}
	if record.Decision != "" {
		decision = record.Decision
	}
	if record.Rationale != "" {
		rationale = record.Rationale
	}
	if record.CitationsJSON != "" {
		citations = record.CitationsJSON
	}

	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.RequestID, record.ProcessNumber, record.RecordJSON,
		decision, rationale, citations,
		record.Outcome, record.LatencyMS, record.RecordedAt,
	)
	if err != nil {
		return evidence.NewStorageError("sqlite", "store", err)
	}

	return nil
}

// Recent returns up to limit records, newest first.
func (s *SQLiteStorage) Recent(ctx context.Context, limit int) ([]*evidence.Record, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, request_id, process_number, record_json,
		       decision, rationale, citations_json,
		       outcome, latency_ms, recorded_at
		FROM evidence
		ORDER BY recorded_at DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, evidence.NewStorageError("sqlite", "query", err)
	}
	defer rows.Close()

	records := []*evidence.Record{}
	for rows.Next() {
		var rec evidence.Record
		var decision, rationale, citations sql.NullString
		err := rows.Scan(
			&rec.ID, &rec.RequestID, &rec.ProcessNumber, &rec.RecordJSON,
			&decision, &rationale, &citations,
			&rec.Outcome, &rec.LatencyMS, &rec.RecordedAt,
		)
		if err != nil {
			return nil, evidence.NewStorageError("sqlite", "scan", err)
		}
		rec.Decision = decision.String
		rec.Rationale = rationale.String
		rec.CitationsJSON = citations.String
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, evidence.NewStorageError("sqlite", "query", err)
	}

	return records, nil
}

// Count returns the total number of stored records.
func (s *SQLiteStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM evidence").Scan(&count)
	if err != nil {
		return 0, evidence.NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// DeleteOlderThan removes records recorded before the cutoff.
func (s *SQLiteStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM evidence WHERE recorded_at < ?", cutoff)
	if err != nil {
		return 0, evidence.NewStorageError("sqlite", "delete", err)
	}

	count, err := result.RowsAffected()
	if err != nil {
		return 0, evidence.NewStorageError("sqlite", "delete", err)
	}

	return count, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if err := s.db.Close(); err != nil {
		return evidence.NewStorageError("sqlite", "close", err)
	}
	return nil
}
