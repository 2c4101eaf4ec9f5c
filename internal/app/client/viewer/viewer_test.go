package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"entrykeeper/internal/domain/entry"
)

type fakeLister struct {
	entries []entry.Entry
	err     error
	calls   int
}

func (f *fakeLister) List(_ context.Context) ([]entry.Entry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

type fakeCache struct {
	saved   []entry.Entry
	loadErr error
}

func (f *fakeCache) Save(entries []entry.Entry) error {
	f.saved = entries
	return nil
}

func (f *fakeCache) Load() ([]entry.Entry, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.saved, nil
}

func TestViewer_Refresh(t *testing.T) {
	store := &fakeLister{entries: []entry.Entry{{ID: "a", Name: "Jo"}}}
	v := New(store, nil, slog.Default())

	require.NoError(t, v.Refresh(context.Background()))
	assert.Len(t, v.Entries(), 1)
	assert.False(t, v.Stale())
	assert.Empty(t, v.LastError())
}

func TestViewer_RefreshIdempotent(t *testing.T) {
	store := &fakeLister{entries: []entry.Entry{{ID: "a"}, {ID: "b"}}}
	v := New(store, nil, slog.Default())

	require.NoError(t, v.Refresh(context.Background()))
	first := v.Entries()
	require.NoError(t, v.Refresh(context.Background()))
	assert.Equal(t, first, v.Entries())
}

func TestViewer_FailureKeepsSnapshot(t *testing.T) {
	store := &fakeLister{entries: []entry.Entry{{ID: "a", Name: "Jo"}}}
	v := New(store, nil, slog.Default())
	require.NoError(t, v.Refresh(context.Background()))

	store.err = errors.New("network down")
	assert.Error(t, v.Refresh(context.Background()))
	assert.Len(t, v.Entries(), 1)
	assert.False(t, v.Stale(), "a previously fetched snapshot is not stale")
	assert.Equal(t, "failed to fetch entries", v.LastError())
}

func TestViewer_SavesSnapshotToCache(t *testing.T) {
	store := &fakeLister{entries: []entry.Entry{{ID: "a", Name: "Jo"}}}
	cache := &fakeCache{}
	v := New(store, cache, slog.Default())

	require.NoError(t, v.Refresh(context.Background()))
	assert.Len(t, cache.saved, 1)
}

func TestViewer_FallsBackToCache(t *testing.T) {
	store := &fakeLister{err: errors.New("network down")}
	cache := &fakeCache{saved: []entry.Entry{{ID: "a", Name: "Jo"}}}
	v := New(store, cache, slog.Default())

	assert.Error(t, v.Refresh(context.Background()))
	assert.Len(t, v.Entries(), 1, "cached snapshot served when first fetch fails")
	assert.True(t, v.Stale())
	assert.NotEmpty(t, v.LastError())
}

func TestViewer_EmptyCacheNoFallback(t *testing.T) {
	store := &fakeLister{err: errors.New("network down")}
	cache := &fakeCache{}
	v := New(store, cache, slog.Default())

	assert.Error(t, v.Refresh(context.Background()))
	assert.Empty(t, v.Entries())
	assert.False(t, v.Stale())
}
