package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	namespace   TEXT NOT NULL,
	entry_key   TEXT NOT NULL,
	entry_value TEXT NOT NULL,
	updated_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (namespace, entry_key)
)`

// OpenSQLite opens the database file at path and makes sure the entries
// table exists. The caller owns the returned handle.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("path is empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		return nil, errors.Join(fmt.Errorf("db.ExecContext: %w", err), db.Close())
	}

	return db, nil
}

type SQLite struct {
	db        *sql.DB
	namespace string
}

func NewSQLite(db *sql.DB, namespace string) (*SQLite, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if namespace == "" {
		return nil, fmt.Errorf("namespace is empty")
	}

	return &SQLite{db: db, namespace: namespace}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) (string, bool, error) {
	var value string

	err := s.db.QueryRowContext(ctx,
		`SELECT entry_value FROM kv_entries WHERE namespace = ? AND entry_key = ?`,
		s.namespace, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("db.QueryRowContext: %w", err)
	}

	return value, true, nil
}

func (s *SQLite) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_entries (namespace, entry_key, entry_value) VALUES (?, ?, ?)
		ON CONFLICT (namespace, entry_key) DO UPDATE
		SET entry_value = excluded.entry_value, updated_at = CURRENT_TIMESTAMP`,
		s.namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM kv_entries WHERE namespace = ? AND entry_key = ?`,
		s.namespace, key,
	)
	if err != nil {
		return fmt.Errorf("db.ExecContext: %w", err)
	}

	return nil
}
