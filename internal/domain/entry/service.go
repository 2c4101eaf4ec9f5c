package entry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service defines the business logic for entry operations
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	List(ctx context.Context) ([]Entry, error)
	Create(ctx context.Context, fields Fields) (*Entry, error)
	Update(ctx context.Context, id string, fields Fields) error
	Delete(ctx context.Context, id string) error
}

// NewService creates a new entry service
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "entry_service"),
	}
}

// List returns the full entry collection. No ordering or filtering is
// promised beyond what the repository provides.
func (s *Service) List(ctx context.Context) ([]Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list entries", "error", err)
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Create stores a new entry and assigns its id.
func (s *Service) Create(ctx context.Context, fields Fields) (*Entry, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	e := &Entry{
		ID:        uuid.NewString(),
		Name:      fields.Name,
		Address:   fields.Address,
		PIN:       fields.PIN,
		Phone:     fields.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Error("failed to create entry", "error", err)
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.Info("entry created", "entry_id", e.ID)
	return e, nil
}

// Update overwrites all four fields of an existing entry. Last write
// wins; there is no version check.
func (s *Service) Update(ctx context.Context, id string, fields Fields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	e := &Entry{
		ID:        id,
		Name:      fields.Name,
		Address:   fields.Address,
		PIN:       fields.PIN,
		Phone:     fields.Phone,
		UpdatedAt: time.Now(),
	}

	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update entry", "entry_id", id, "error", err)
		return fmt.Errorf("update entry: %w", err)
	}

	s.log.Info("entry updated", "entry_id", id)
	return nil
}

// Delete permanently removes an entry.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete entry", "entry_id", id, "error", err)
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.Info("entry deleted", "entry_id", id)
	return nil
}
