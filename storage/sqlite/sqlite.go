// Package sqlite implements core.SnapshotStore on top of an embedded
// SQLite database (modernc.org/sqlite, cgo-free). The whole registry
// document lives in a single row; reads and writes each open and close
// their own connection so no handle outlives a call.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/agentchain/core"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	name       TEXT PRIMARY KEY,
	document   BLOB NOT NULL,
	updated_at TEXT NOT NULL
);`

// defaultName keys the registry document inside the snapshots table.
const defaultName = "registry"

// Store persists the snapshot document in an embedded SQLite database file.
type Store struct {
	path string
	name string
}

// Options configures a sqlite Store.
type Options struct {
	// Name keys the document within the snapshots table, allowing several
	// registries to share one database file. Defaults to "registry".
	Name string
}

// New creates a sqlite-backed snapshot store at path. The parent directory
// is created if needed; the schema is applied lazily on first use.
func New(path string, optFns ...func(o *Options)) (*Store, error) {
	opts := Options{Name: defaultName}
	for _, fn := range optFns {
		fn(&opts)
	}

	if path == "" {
		return nil, fmt.Errorf("sqlite: path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite: create directory: %w", err)
	}

	return &Store{path: path, name: opts.Name}, nil
}

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %s: %w", s.path, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}
	return db, nil
}

// Read implements core.SnapshotStore.
func (s *Store) Read(ctx context.Context) ([]byte, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var doc []byte
	row := db.QueryRowContext(ctx, `SELECT document FROM snapshots WHERE name = ?`, s.name)
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("sqlite: read snapshot: %w", err)
	}
	return doc, nil
}

// Write implements core.SnapshotStore.
func (s *Store) Write(ctx context.Context, data []byte) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		INSERT INTO snapshots (name, document, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("sqlite: write snapshot: %w", err)
	}
	return nil
}
