package client

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"entrykeeper/internal/domain/entry"
)

// SnapshotCache stores the last fetched entry snapshot in a local SQLite
// database. Save replaces the whole snapshot; there is no per-entry
// bookkeeping because the server list is always fetched in full.
type SnapshotCache struct {
	db *sql.DB
}

func NewSnapshotCache(path string) (*SnapshotCache, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	cache := &SnapshotCache{db: db}
	if err := cache.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache tables: %w", err)
	}

	return cache, nil
}

func (c *SnapshotCache) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			pin TEXT NOT NULL,
			phone TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`)

	return err
}

// Save replaces the cached snapshot with the given entries.
func (c *SnapshotCache) Save(entries []entry.Entry) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	for _, e := range entries {
		_, err := tx.Exec(`
			INSERT INTO entries (id, name, address, pin, phone, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, e.ID, e.Name, e.Address, e.PIN, e.Phone,
			e.CreatedAt.Format(time.RFC3339), e.UpdatedAt.Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to cache entry %s: %w", e.ID, err)
		}
	}

	return tx.Commit()
}

// Load returns the cached snapshot, empty when nothing was saved yet.
func (c *SnapshotCache) Load() ([]entry.Entry, error) {
	rows, err := c.db.Query(`
		SELECT id, name, address, pin, phone, created_at, updated_at
		FROM entries
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		var e entry.Entry
		var createdAt, updatedAt string

		if err := rows.Scan(&e.ID, &e.Name, &e.Address, &e.PIN, &e.Phone,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached entry: %w", err)
		}

		e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cache rows: %w", err)
	}

	return entries, nil
}

func (c *SnapshotCache) Close() error {
	return c.db.Close()
}
