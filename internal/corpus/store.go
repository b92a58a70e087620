// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus persists accepted triplets across extraction runs and builds
// a retrieval index over them. The corpus is an archive only: extraction
// never reads from it, so every run still starts from empty in-run state.
package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/transition-engine/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "corpus.db"
)

// Store manages the triplet corpus SQLite database.
type Store struct {
	db         *sql.DB
	corpusDir  string
	maxResults int
}

// NewStore opens or creates the corpus database at corpusDir/index/corpus.db
// and creates the schema if it does not exist.
func NewStore(cfg types.CorpusConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.CorpusDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
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
		corpusDir:  cfg.CorpusDir,
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
			document TEXT NOT NULL,
			created_at TEXT NOT NULL,
			accepted INTEGER NOT NULL,
			rejected INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS triplets (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			pos INTEGER NOT NULL,
			paragraph_a TEXT NOT NULL,
			transition TEXT NOT NULL,
			paragraph_b TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_triplets_run_id ON triplets(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_triplets_transition ON triplets(transition)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='triplets_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE triplets_fts USING fts5(
				paragraph_a, transition, paragraph_b,
				content=triplets, content_rowid=rowid)`,
			`CREATE TRIGGER triplets_ai AFTER INSERT ON triplets BEGIN
				INSERT INTO triplets_fts(rowid, paragraph_a, transition, paragraph_b)
				VALUES (new.rowid, new.paragraph_a, new.transition, new.paragraph_b);
			END`,
			`CREATE TRIGGER triplets_ad AFTER DELETE ON triplets BEGIN
				INSERT INTO triplets_fts(triplets_fts, rowid, paragraph_a, transition, paragraph_b)
				VALUES('delete', old.rowid, old.paragraph_a, old.transition, old.paragraph_b);
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

// StoreRun ingests the accepted triplets of one extraction run under a fresh
// run ID. The insert is transactional: either the whole run lands in the
// corpus or none of it does.
func (s *Store) StoreRun(ctx context.Context, document string, triplets []types.Triplet, rejected int, w io.Writer) (string, error) {
	runID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	createdAt := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, document, created_at, accepted, rejected)
		 VALUES (?, ?, ?, ?, ?)`,
		runID, document, createdAt, len(triplets), rejected,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO triplets (run_id, pos, paragraph_a, transition, paragraph_b)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, triplet := range triplets {
		if _, err := stmt.ExecContext(ctx,
			runID, i, triplet.ParagraphA, triplet.Transition, triplet.ParagraphB,
		); err != nil {
			return "", fmt.Errorf("inserting triplet %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}

	fmt.Fprintf(w, "stored run %s (%d triplets from %s)\n", runID, len(triplets), document)
	return runID, nil
}
