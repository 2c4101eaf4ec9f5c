package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"entrykeeper/internal/domain/session"
)

type SessionRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewSessionRepository(storage *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		storage: storage,
		log:     log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID int, tokenHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO sessions (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)`

	_, err := r.storage.pool.Exec(ctx, query, userID, tokenHash, expiresAt)
	if err != nil {
		r.log.Error("failed to create session", "user_id", userID, "error", err)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Validate(ctx context.Context, tokenHash string) (int, error) {
	const query = `
		SELECT user_id
		FROM sessions
		WHERE token_hash = $1 AND expires_at > NOW()`

	var userID int
	err := r.storage.pool.QueryRow(ctx, query, tokenHash).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, session.ErrInvalidToken
		}
		r.log.Error("failed to validate session", "error", err)
		return 0, fmt.Errorf("validate session: %w", err)
	}

	return userID, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	const query = `DELETE FROM sessions WHERE token_hash = $1`

	if _, err := r.storage.pool.Exec(ctx, query, tokenHash); err != nil {
		r.log.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
