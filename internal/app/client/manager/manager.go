// Package manager implements the admin-side entry workflow: a list
// snapshot read through from the store, a draft for the entry being
// created or edited, and a busy gate serializing store mutations.
//
// Every mutation follows the same policy: at most one store call in
// flight per manager, and a successful mutation is always followed by a
// full refresh of the snapshot before the manager goes idle again.
package manager

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"entrykeeper/internal/domain/entry"
)

// Store is the remote entry collection the manager operates on.
type Store interface {
	List(ctx context.Context) ([]entry.Entry, error)
	Create(ctx context.Context, fields entry.Fields) (*entry.Entry, error)
	Update(ctx context.Context, id string, fields entry.Fields) error
	Delete(ctx context.Context, id string) error
}

// Confirmer asks the user a yes/no question. Injected so the core is
// testable without a terminal.
type Confirmer func(message string) bool

const deleteConfirmMessage = "Are you sure you want to delete this entry?"

// Manager owns the entry list snapshot and the draft for one admin
// session. Not safe to share across sessions; the busy gate protects a
// single manager against overlapping mutations, nothing more.
type Manager struct {
	store   Store
	confirm Confirmer
	log     *slog.Logger

	mu      sync.Mutex
	busy    bool
	entries []entry.Entry
	draft   Draft
	errMsg  string
}

func New(store Store, confirm Confirmer, log *slog.Logger) *Manager {
	return &Manager{
		store:   store,
		confirm: confirm,
		log:     log.With("component", "entry_manager"),
	}
}

// Refresh replaces the snapshot with a full fetch. On failure the prior
// snapshot is kept and the error slot is set; there is no retry.
func (m *Manager) Refresh(ctx context.Context) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.settle()

	return m.fetch(ctx)
}

// SetField assigns one draft field. Pure state change, never fails.
func (m *Manager) SetField(field Field, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.Set(field, value)
}

// BeginEdit loads an entry into the draft, overwriting any unsaved
// draft content, and marks the entry as the edit target.
func (m *Manager) BeginEdit(e entry.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.draft.fill(e)
}

// Submit validates the draft and either creates a new entry or
// overwrites the edit target. On success the draft is reset and the
// snapshot refreshed. On store failure the draft is left untouched so
// no input is lost.
func (m *Manager) Submit(ctx context.Context) error {
	m.mu.Lock()
	if !m.draft.Submittable() {
		m.mu.Unlock()
		return ErrDraftIncomplete
	}
	if m.busy {
		m.mu.Unlock()
		return ErrBusy
	}
	m.busy = true
	m.errMsg = ""
	fields := m.draft.Fields()
	id, editing := m.draft.Target()
	m.mu.Unlock()
	defer m.settle()

	var err error
	if editing {
		err = m.store.Update(ctx, id, fields)
	} else {
		_, err = m.store.Create(ctx, fields)
	}
	if err != nil {
		m.fail("failed to save entry", err)
		return fmt.Errorf("save entry: %w", err)
	}

	m.mu.Lock()
	m.draft.Reset()
	m.mu.Unlock()

	return m.fetch(ctx)
}

// Delete asks for confirmation, then removes the entry and refreshes
// the snapshot. A declined confirmation is a no-op with no store call.
// A failed delete sets the error slot and does not refresh. The
// returned bool reports whether the user confirmed.
func (m *Manager) Delete(ctx context.Context, id string) (bool, error) {
	if !m.confirm(deleteConfirmMessage) {
		return false, nil
	}

	if err := m.begin(); err != nil {
		return true, err
	}
	defer m.settle()

	if err := m.store.Delete(ctx, id); err != nil {
		m.fail("failed to delete entry", err)
		return true, fmt.Errorf("delete entry: %w", err)
	}

	m.mu.Lock()
	if target, editing := m.draft.Target(); editing && target == id {
		// The entry being edited no longer exists.
		m.draft.Reset()
	}
	m.mu.Unlock()

	return true, m.fetch(ctx)
}

// Entries returns a copy of the current snapshot.
func (m *Manager) Entries() []entry.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entry.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Draft returns a copy of the current draft.
func (m *Manager) Draft() Draft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Busy reports whether a store operation is in flight.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// LastError returns the latest user-visible error message, empty when
// the last operation settled cleanly. Starting a new operation clears
// it.
func (m *Manager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// begin moves the manager to busy, rejecting re-entry while an
// operation is in flight.
func (m *Manager) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busy {
		return ErrBusy
	}
	m.busy = true
	m.errMsg = ""
	return nil
}

// settle returns the manager to idle, success or failure.
func (m *Manager) settle() {
	m.mu.Lock()
	m.busy = false
	m.mu.Unlock()
}

func (m *Manager) fail(msg string, err error) {
	m.log.Error(msg, "error", err)
	m.mu.Lock()
	m.errMsg = msg
	m.mu.Unlock()
}

// fetch runs the list call and swaps the snapshot in. The caller holds
// the busy gate.
func (m *Manager) fetch(ctx context.Context) error {
	entries, err := m.store.List(ctx)
	if err != nil {
		m.fail("failed to fetch entries", err)
		return fmt.Errorf("fetch entries: %w", err)
	}

	m.mu.Lock()
	m.entries = entries
	m.mu.Unlock()
	return nil
}
