// Package viewer implements the guest-side read-only projection of the
// entry collection. It shares the refresh contract with the admin
// manager but exposes no mutations and no draft.
package viewer

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/exp/slog"

	"entrykeeper/internal/app/client/manager"
	"entrykeeper/internal/domain/entry"
)

// Lister is the read-only slice of the entry store.
type Lister interface {
	List(ctx context.Context) ([]entry.Entry, error)
}

// Cache persists the last known snapshot between sessions. Optional.
type Cache interface {
	Save(entries []entry.Entry) error
	Load() ([]entry.Entry, error)
}

type Viewer struct {
	store Lister
	cache Cache
	log   *slog.Logger

	mu      sync.Mutex
	busy    bool
	fetched bool
	stale   bool
	entries []entry.Entry
	errMsg  string
}

// New creates a viewer. cache may be nil.
func New(store Lister, cache Cache, log *slog.Logger) *Viewer {
	return &Viewer{
		store: store,
		cache: cache,
		log:   log.With("component", "guest_viewer"),
	}
}

// Refresh replaces the snapshot with a full fetch. On failure the prior
// snapshot is retained; if there is no prior snapshot yet, the cached
// one from a previous session is served instead and marked stale.
func (v *Viewer) Refresh(ctx context.Context) error {
	v.mu.Lock()
	if v.busy {
		v.mu.Unlock()
		return manager.ErrBusy
	}
	v.busy = true
	v.errMsg = ""
	v.mu.Unlock()
	defer func() {
		v.mu.Lock()
		v.busy = false
		v.mu.Unlock()
	}()

	entries, err := v.store.List(ctx)
	if err != nil {
		v.log.Error("failed to fetch entries", "error", err)
		v.mu.Lock()
		v.errMsg = "failed to fetch entries"
		fetched := v.fetched
		v.mu.Unlock()

		if !fetched {
			v.loadCached()
		}
		return fmt.Errorf("fetch entries: %w", err)
	}

	v.mu.Lock()
	v.entries = entries
	v.fetched = true
	v.stale = false
	v.mu.Unlock()

	if v.cache != nil {
		if err := v.cache.Save(entries); err != nil {
			v.log.Warn("failed to cache snapshot", "error", err)
		}
	}

	return nil
}

func (v *Viewer) loadCached() {
	if v.cache == nil {
		return
	}

	cached, err := v.cache.Load()
	if err != nil || len(cached) == 0 {
		return
	}

	v.mu.Lock()
	v.entries = cached
	v.stale = true
	v.mu.Unlock()
	v.log.Info("serving cached snapshot", "entries", len(cached))
}

// Entries returns a copy of the current snapshot.
func (v *Viewer) Entries() []entry.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]entry.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

// Stale reports whether the snapshot came from the cache rather than a
// successful fetch.
func (v *Viewer) Stale() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.stale
}

// LastError returns the latest user-visible error message.
func (v *Viewer) LastError() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.errMsg
}
