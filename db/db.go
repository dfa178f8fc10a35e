// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"  // postgres driver
	_ "modernc.org/sqlite" // sqlite driver
)

// Open connects to the configured database backend.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	var driver string
	switch databaseType {
	case "sqlite":
		driver = "sqlite"
	case "postgres":
		driver = "postgres"
	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}

	conn, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

// CreateSchema creates the snapshot table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB) error {
	_, err := conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
-- Whole-state snapshots; exactly one row, replaced on every save
CREATE TABLE IF NOT EXISTS draw_snapshot (
    id INTEGER PRIMARY KEY,
    data TEXT NOT NULL,
    saved_at TIMESTAMP NOT NULL
);
`

// Store persists whole-state snapshots as a single opaque row. It
// implements the engine's Store interface: saves replace the one row in
// a single statement, so a crash never leaves a partially written
// snapshot.
type Store struct {
	conn     *sql.DB
	postgres bool
}

// NewStore wraps a database connection for the given backend type.
func NewStore(conn *sql.DB, databaseType string) *Store {
	return &Store{conn: conn, postgres: databaseType == "postgres"}
}

// Load returns the stored snapshot, or nil when none has been saved yet.
func (s *Store) Load() ([]byte, error) {
	query := "SELECT data FROM draw_snapshot WHERE id = 1"

	var data string
	err := s.conn.QueryRow(query).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return []byte(data), nil
}

// Save replaces the snapshot row.
func (s *Store) Save(data []byte) error {
	query := `
		INSERT INTO draw_snapshot (id, data, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
	`
	if s.postgres {
		query = `
			INSERT INTO draw_snapshot (id, data, saved_at) VALUES (1, $1, $2)
			ON CONFLICT (id) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
		`
	}

	_, err := s.conn.Exec(query, string(data), time.Now())
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
