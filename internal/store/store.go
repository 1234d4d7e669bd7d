// Package store handles SQLite persistence of user preferences.
package store

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/verte-zerg/charcount/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Preference keys.
const (
	KeyTheme         = "theme"
	KeyExcludeSpaces = "exclude-spaces"
	KeyLimitEnabled  = "limit-enabled"
	KeyLimitValue    = "limit-value"
)

// Store wraps SQLite access for preferences.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS preferences (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the stored value for key. ok is false when nothing is stored.
func (s *Store) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Format(time.RFC3339Nano))
	return err
}

// Theme returns the persisted theme. ok is false when none was saved or the
// saved value is not a known theme.
func (s *Store) Theme(ctx context.Context) (theme model.Theme, ok bool, err error) {
	raw, found, err := s.Get(ctx, KeyTheme)
	if err != nil || !found {
		return model.ThemeLight, false, err
	}
	theme, perr := model.ParseTheme(raw)
	if perr != nil {
		return model.ThemeLight, false, nil
	}
	return theme, true, nil
}

// SaveTheme persists theme.
func (s *Store) SaveTheme(ctx context.Context, theme model.Theme) error {
	return s.Set(ctx, KeyTheme, string(theme))
}

// Bool returns a persisted boolean. Unparseable values read as not found.
func (s *Store) Bool(ctx context.Context, key string) (value, ok bool, err error) {
	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, false, err
	}
	v, perr := strconv.ParseBool(raw)
	if perr != nil {
		return false, false, nil
	}
	return v, true, nil
}

// SetBool persists a boolean.
func (s *Store) SetBool(ctx context.Context, key string, value bool) error {
	return s.Set(ctx, key, strconv.FormatBool(value))
}
