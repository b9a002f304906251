// Package cache persists fetched registry payloads between CLI runs so that
// repeated validation passes do not hammer the component store.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/goliatone/go-handoff/pkg/registry"
)

const schema = `
CREATE TABLE IF NOT EXISTS components (
	key        TEXT PRIMARY KEY,
	payload    BLOB NOT NULL,
	fetched_at INTEGER NOT NULL
);
`

// Store is a SQLite backed payload cache. SQLite serialises writers
// internally, so a single open handle is enough for the CLI's needs.
type Store struct {
	db *sql.DB
}

var _ registry.Cache = (*Store)(nil)

// Open creates or opens the cache database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("cache: empty database path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cache: create directory: %w", err)
		}
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cache: open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: initialise schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the payload stored under key together with the time it was
// fetched. ok reports whether the key was present; a miss is not an error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, time.Time, bool, error) {
	var payload []byte
	var fetchedAt int64
	row := s.db.QueryRowContext(ctx, `SELECT payload, fetched_at FROM components WHERE key = ?`, key)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, false, nil
		}
		return nil, time.Time{}, false, fmt.Errorf("cache: read %s: %w", key, err)
	}
	return payload, time.Unix(fetchedAt, 0), true, nil
}

// Put stores payload under key, replacing any previous entry.
func (s *Store) Put(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO components (key, payload, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at
	`, key, payload, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("cache: write %s: %w", key, err)
	}
	return nil
}

// Prune removes entries fetched before cutoff and reports how many rows were
// deleted.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM components WHERE fetched_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("cache: prune: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
