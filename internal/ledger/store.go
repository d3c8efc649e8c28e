// Copyright Science Live Hub, 2026. All rights reserved.

// Package ledger persists a record of every generated and published
// nanopublication in a SQLite database with a full-text index over labels.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/ScienceLiveHub/nanopub-notebooks/pkg/types"
)

const dbFile = "ledger.db"

const timeLayout = time.RFC3339Nano

// Store manages the ledger SQLite database.
type Store struct {
	db         *sql.DB
	ledgerDir  string
	maxResults int
}

// NewStore opens or creates the ledger database at ledgerDir/ledger.db,
// creating the schema if it does not exist.
func NewStore(cfg types.LedgerConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.LedgerDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LedgerDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		ledgerDir:  cfg.LedgerDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			config_path TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS nanopubs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			record_id TEXT NOT NULL,
			type TEXT NOT NULL,
			label TEXT,
			source_config TEXT,
			path TEXT NOT NULL UNIQUE,
			placeholder_uri TEXT NOT NULL,
			published_uri TEXT,
			network TEXT,
			generated_at TEXT,
			published_at TEXT,
			run_id TEXT REFERENCES runs(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_nanopubs_record_id ON nanopubs(record_id)`,
		`CREATE INDEX IF NOT EXISTS idx_nanopubs_type ON nanopubs(type)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='nanopubs_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE nanopubs_fts USING fts5(label, content=nanopubs, content_rowid=rowid)`,
			`CREATE TRIGGER nanopubs_ai AFTER INSERT ON nanopubs BEGIN
				INSERT INTO nanopubs_fts(rowid, label) VALUES (new.rowid, new.label);
			END`,
			`CREATE TRIGGER nanopubs_ad AFTER DELETE ON nanopubs BEGIN
				INSERT INTO nanopubs_fts(nanopubs_fts, rowid, label) VALUES('delete', old.rowid, old.label);
			END`,
			`CREATE TRIGGER nanopubs_au AFTER UPDATE ON nanopubs BEGIN
				INSERT INTO nanopubs_fts(nanopubs_fts, rowid, label) VALUES('delete', old.rowid, old.label);
				INSERT INTO nanopubs_fts(rowid, label) VALUES (new.rowid, new.label);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Entry is one ledger row: a nanopublication tracked from generation
// through publication.
type Entry struct {
	RecordID       string    `json:"record_id" yaml:"record_id"`
	Type           string    `json:"type" yaml:"type"`
	Label          string    `json:"label" yaml:"label"`
	SourceConfig   string    `json:"source_config,omitempty" yaml:"source_config,omitempty"`
	Path           string    `json:"path" yaml:"path"`
	PlaceholderURI string    `json:"placeholder_uri" yaml:"placeholder_uri"`
	PublishedURI   string    `json:"published_uri,omitempty" yaml:"published_uri,omitempty"`
	Network        string    `json:"network,omitempty" yaml:"network,omitempty"`
	GeneratedAt    time.Time `json:"generated_at" yaml:"generated_at"`
	PublishedAt    time.Time `json:"published_at,omitempty" yaml:"published_at,omitempty"`
	RunID          string    `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

// BeginRun records the start of a generation run and returns its ID.
func (s *Store) BeginRun(ctx context.Context, configPath string) (string, error) {
	runID := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, config_path) VALUES (?, ?, ?)`,
		runID, time.Now().UTC().Format(timeLayout), configPath,
	)
	if err != nil {
		return "", fmt.Errorf("recording run: %w", err)
	}
	return runID, nil
}

// RecordGenerated upserts a ledger entry for a freshly rendered document,
// keyed on its output path. Re-generating a record resets its published
// state, since the placeholder URI changes with the content.
func (s *Store) RecordGenerated(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO nanopubs (record_id, type, label, source_config, path, placeholder_uri, generated_at, run_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET
			record_id=excluded.record_id, type=excluded.type, label=excluded.label,
			source_config=excluded.source_config, placeholder_uri=excluded.placeholder_uri,
			generated_at=excluded.generated_at, run_id=excluded.run_id,
			published_uri=NULL, network=NULL, published_at=NULL`,
		e.RecordID, e.Type, e.Label, e.SourceConfig, e.Path, e.PlaceholderURI,
		e.GeneratedAt.UTC().Format(timeLayout), nullable(e.RunID),
	)
	if err != nil {
		return fmt.Errorf("recording generated nanopub %s: %w", e.RecordID, err)
	}
	return nil
}

// RecordPublished marks the entry for an output path as published.
func (s *Store) RecordPublished(ctx context.Context, path, publishedURI, network string, publishedAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE nanopubs SET published_uri = ?, network = ?, published_at = ?
		 WHERE path = ?`,
		publishedURI, network, publishedAt.UTC().Format(timeLayout), path,
	)
	if err != nil {
		return fmt.Errorf("recording publication of %s: %w", path, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("recording publication of %s: %w", path, err)
	}
	if n == 0 {
		return fmt.Errorf("no ledger entry for %s; was it generated here?", path)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
