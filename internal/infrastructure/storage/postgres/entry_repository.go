package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"entrykeeper/internal/domain/entry"
)

type EntryRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewEntryRepository(storage *Storage, log *slog.Logger) *EntryRepository {
	return &EntryRepository{
		storage: storage,
		log:     log.With("component", "entry_repository"),
	}
}

func (r *EntryRepository) List(ctx context.Context) ([]entry.Entry, error) {
	const query = `
		SELECT id, name, address, pin, phone, created_at, updated_at
		FROM entries
		ORDER BY created_at`

	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list entries", "error", err)
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]entry.Entry, 0)
	for rows.Next() {
		var e entry.Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Address, &e.PIN, &e.Phone, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

func (r *EntryRepository) Get(ctx context.Context, id string) (*entry.Entry, error) {
	const query = `
		SELECT id, name, address, pin, phone, created_at, updated_at
		FROM entries
		WHERE id = $1`

	var e entry.Entry
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&e.ID, &e.Name, &e.Address, &e.PIN, &e.Phone, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entry.ErrNotFound
		}
		r.log.Error("failed to get entry", "entry_id", id, "error", err)
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return &e, nil
}

func (r *EntryRepository) Create(ctx context.Context, e *entry.Entry) error {
	const query = `
		INSERT INTO entries (id, name, address, pin, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.storage.pool.Exec(ctx, query,
		e.ID, e.Name, e.Address, e.PIN, e.Phone, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create entry", "entry_id", e.ID, "error", err)
		return fmt.Errorf("create entry: %w", err)
	}

	return nil
}

func (r *EntryRepository) Update(ctx context.Context, e *entry.Entry) error {
	const query = `
		UPDATE entries
		SET name = $1, address = $2, pin = $3, phone = $4, updated_at = $5
		WHERE id = $6`

	result, err := r.storage.pool.Exec(ctx, query,
		e.Name, e.Address, e.PIN, e.Phone, e.UpdatedAt, e.ID)
	if err != nil {
		r.log.Error("failed to update entry", "entry_id", e.ID, "error", err)
		return fmt.Errorf("update entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entry.ErrNotFound
	}

	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM entries WHERE id = $1`

	result, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete entry", "entry_id", id, "error", err)
		return fmt.Errorf("delete entry: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entry.ErrNotFound
	}

	return nil
}
