// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: storage/positions.go
// Summary: SQLite-backed store of per-file last cursor positions.
// Usage: Positions are recorded at exit for saved files and restored
// the next time the same path opens. Dirty buffers never record.

package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const positionsSchema = `
CREATE TABLE IF NOT EXISTS positions (
	path       TEXT PRIMARY KEY,
	x          INTEGER NOT NULL,
	y          INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// PositionStore persists cursor positions keyed by absolute file path.
type PositionStore struct {
	db *sql.DB
}

// OpenPositions opens (creating if needed) the position database at path.
func OpenPositions(path string) (*PositionStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open position store: %w", err)
	}
	if _, err := db.Exec(positionsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init position store: %w", err)
	}
	return &PositionStore{db: db}, nil
}

// DefaultPositionsPath returns the position database location under
// the user state directory.
func DefaultPositionsPath() (string, error) {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "texedit", "positions.db"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve state dir: %w", err)
	}
	return filepath.Join(home, ".local", "state", "texedit", "positions.db"), nil
}

// Get looks up the remembered cursor position for path.
func (p *PositionStore) Get(path string) (x, y int, ok bool, err error) {
	row := p.db.QueryRow(`SELECT x, y FROM positions WHERE path = ?`, canonical(path))
	switch err := row.Scan(&x, &y); err {
	case nil:
		return x, y, true, nil
	case sql.ErrNoRows:
		return 0, 0, false, nil
	default:
		return 0, 0, false, fmt.Errorf("query position: %w", err)
	}
}

// Put records the cursor position for path, replacing any prior entry.
func (p *PositionStore) Put(path string, x, y int) error {
	_, err := p.db.Exec(
		`INSERT INTO positions (path, x, y, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(path) DO UPDATE SET x = excluded.x, y = excluded.y, updated_at = excluded.updated_at`,
		canonical(path), x, y, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("store position: %w", err)
	}
	return nil
}

func (p *PositionStore) Close() error {
	return p.db.Close()
}

func canonical(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
