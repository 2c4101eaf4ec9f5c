package manager

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"entrykeeper/internal/domain/entry"
)

// fakeStore is an in-memory store recording every call in order.
type fakeStore struct {
	mu      sync.Mutex
	entries []entry.Entry
	nextID  int
	calls   []string

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	// blockDelete, when set, makes Delete wait until the channel is
	// closed. Used to hold the manager busy.
	blockDelete chan struct{}
}

func (f *fakeStore) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeStore) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (f *fakeStore) List(_ context.Context) ([]entry.Entry, error) {
	f.record("list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entry.Entry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, fields entry.Fields) (*entry.Entry, error) {
	f.record("create")
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	e := entry.Entry{
		ID:      fmt.Sprintf("id-%d", f.nextID),
		Name:    fields.Name,
		Address: fields.Address,
		PIN:     fields.PIN,
		Phone:   fields.Phone,
	}
	f.entries = append(f.entries, e)
	return &e, nil
}

func (f *fakeStore) Update(_ context.Context, id string, fields entry.Fields) error {
	f.record("update")
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries[i].Name = fields.Name
			f.entries[i].Address = fields.Address
			f.entries[i].PIN = fields.PIN
			f.entries[i].Phone = fields.Phone
			return nil
		}
	}
	return errors.New("entry not found")
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.record("delete")
	if f.blockDelete != nil {
		<-f.blockDelete
	}
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return errors.New("entry not found")
}

func confirmYes(string) bool { return true }
func confirmNo(string) bool  { return false }

func newManager(store Store, confirm Confirmer) *Manager {
	return New(store, confirm, slog.Default())
}

func fillDraft(m *Manager, name, address, pin, phone string) {
	m.SetField(FieldName, name)
	m.SetField(FieldAddress, address)
	m.SetField(FieldPIN, pin)
	m.SetField(FieldPhone, phone)
}

func TestRefresh_ReplacesSnapshot(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{{ID: "a", Name: "Jo"}}}
	m := newManager(store, confirmYes)

	require.NoError(t, m.Refresh(context.Background()))
	assert.Len(t, m.Entries(), 1)
	assert.False(t, m.Busy())
	assert.Empty(t, m.LastError())
}

func TestRefresh_Idempotent(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{{ID: "a", Name: "Jo"}, {ID: "b", Name: "Bo"}}}
	m := newManager(store, confirmYes)

	require.NoError(t, m.Refresh(context.Background()))
	first := m.Entries()

	require.NoError(t, m.Refresh(context.Background()))
	second := m.Entries()

	assert.Equal(t, first, second)
}

func TestRefresh_FailureKeepsSnapshot(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{{ID: "a", Name: "Jo"}}}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))

	store.listErr = errors.New("network down")
	err := m.Refresh(context.Background())
	assert.Error(t, err)
	assert.Len(t, m.Entries(), 1, "prior snapshot must be retained")
	assert.Equal(t, "failed to fetch entries", m.LastError())
	assert.False(t, m.Busy(), "manager must settle back to idle")
}

func TestSubmit_IncompleteDraft(t *testing.T) {
	store := &fakeStore{}
	m := newManager(store, confirmYes)

	fillDraft(m, "", "B", "C", "D")
	err := m.Submit(context.Background())
	assert.ErrorIs(t, err, ErrDraftIncomplete)
	assert.Zero(t, store.callCount("create"), "no store call on validation failure")

	// Whitespace-only values do not count as filled.
	fillDraft(m, "   ", "B", "C", "D")
	assert.ErrorIs(t, m.Submit(context.Background()), ErrDraftIncomplete)
}

func TestSubmit_CreateFlow(t *testing.T) {
	store := &fakeStore{}
	m := newManager(store, confirmYes)

	fillDraft(m, "Jo", "1 St", "1234", "555")
	require.NoError(t, m.Submit(context.Background()))

	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.Equal(t, "Jo", entries[0].Name)
	assert.Equal(t, "1 St", entries[0].Address)
	assert.Equal(t, "1234", entries[0].PIN)
	assert.Equal(t, "555", entries[0].Phone)

	d := m.Draft()
	assert.False(t, d.Submittable(), "draft must be reset after submit")
	_, editing := d.Target()
	assert.False(t, editing)

	// Mutation then refresh, strictly ordered.
	assert.Equal(t, []string{"create", "list"}, store.calls)
}

func TestSubmit_UpdateFlow(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{
		{ID: "r1", Name: "Jo", Address: "1 St", PIN: "1234", Phone: "555"},
	}}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))

	m.BeginEdit(m.Entries()[0])
	m.SetField(FieldPhone, "999")
	require.NoError(t, m.Submit(context.Background()))

	entries := m.Entries()
	require.Len(t, entries, 1, "update must not create a new entry")
	assert.Equal(t, "r1", entries[0].ID)
	assert.Equal(t, "Jo", entries[0].Name)
	assert.Equal(t, "1 St", entries[0].Address)
	assert.Equal(t, "1234", entries[0].PIN)
	assert.Equal(t, "999", entries[0].Phone)

	_, editing := m.Draft().Target()
	assert.False(t, editing, "edit target must be cleared after submit")
}

func TestSubmit_FailurePreservesDraft(t *testing.T) {
	store := &fakeStore{createErr: errors.New("boom")}
	m := newManager(store, confirmYes)

	fillDraft(m, "Jo", "1 St", "1234", "555")
	err := m.Submit(context.Background())
	assert.Error(t, err)

	d := m.Draft()
	assert.Equal(t, "Jo", d.Name)
	assert.Equal(t, "1 St", d.Address)
	assert.Equal(t, "1234", d.PIN)
	assert.Equal(t, "555", d.Phone)
	assert.Empty(t, m.Entries(), "list must be unchanged")
	assert.Equal(t, "failed to save entry", m.LastError())
	assert.False(t, m.Busy())
	assert.Zero(t, store.callCount("list"), "failed mutation must not trigger a refresh")
}

func TestBeginEdit_OverwritesDraft(t *testing.T) {
	store := &fakeStore{}
	m := newManager(store, confirmYes)

	fillDraft(m, "unsaved", "draft", "content", "here")
	m.BeginEdit(entry.Entry{ID: "r1", Name: "Jo", Address: "1 St", PIN: "1234", Phone: "555"})

	d := m.Draft()
	assert.Equal(t, "Jo", d.Name)
	target, editing := d.Target()
	assert.True(t, editing)
	assert.Equal(t, "r1", target)
}

func TestDelete_Confirmed(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{{ID: "r1", Name: "Jo"}}}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))

	confirmed, err := m.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, confirmed)
	assert.Empty(t, m.Entries())
}

func TestDelete_Declined(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{{ID: "r1", Name: "Jo"}}}
	m := newManager(store, confirmNo)
	require.NoError(t, m.Refresh(context.Background()))

	fillDraft(m, "Jo", "1 St", "1234", "555")
	confirmed, err := m.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.False(t, confirmed)

	assert.Len(t, m.Entries(), 1, "list unchanged")
	assert.Equal(t, "Jo", m.Draft().Name, "draft unchanged")
	assert.Zero(t, store.callCount("delete"), "no store call when declined")
}

func TestDelete_WhileEditingResetsDraft(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{
		{ID: "r1", Name: "Jo", Address: "1 St", PIN: "1234", Phone: "555"},
	}}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))

	m.BeginEdit(m.Entries()[0])
	confirmed, err := m.Delete(context.Background(), "r1")
	require.NoError(t, err)
	assert.True(t, confirmed)

	assert.Empty(t, m.Entries())
	d := m.Draft()
	assert.Empty(t, d.Name)
	_, editing := d.Target()
	assert.False(t, editing)
}

func TestDelete_OtherEntryKeepsDraft(t *testing.T) {
	store := &fakeStore{entries: []entry.Entry{
		{ID: "r1", Name: "Jo", Address: "1 St", PIN: "1234", Phone: "555"},
		{ID: "r2", Name: "Bo", Address: "2 St", PIN: "5678", Phone: "777"},
	}}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))

	m.BeginEdit(m.Entries()[0])
	_, err := m.Delete(context.Background(), "r2")
	require.NoError(t, err)

	target, editing := m.Draft().Target()
	assert.True(t, editing, "editing an unrelated entry must survive the delete")
	assert.Equal(t, "r1", target)
}

func TestDelete_FailureDoesNotRefresh(t *testing.T) {
	store := &fakeStore{
		entries:   []entry.Entry{{ID: "r1", Name: "Jo"}},
		deleteErr: errors.New("boom"),
	}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))
	listCalls := store.callCount("list")

	_, err := m.Delete(context.Background(), "r1")
	assert.Error(t, err)
	assert.Equal(t, "failed to delete entry", m.LastError())
	assert.Equal(t, listCalls, store.callCount("list"), "failed delete must not trigger a refresh")
	assert.Len(t, m.Entries(), 1)
}

func TestMutualExclusion(t *testing.T) {
	store := &fakeStore{
		entries:     []entry.Entry{{ID: "r1", Name: "Jo"}},
		blockDelete: make(chan struct{}),
	}
	m := newManager(store, confirmYes)
	require.NoError(t, m.Refresh(context.Background()))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.Delete(context.Background(), "r1")
	}()

	// Wait for the delete to take the busy gate.
	require.Eventually(t, m.Busy, time.Second, time.Millisecond)

	fillDraft(m, "Jo", "1 St", "1234", "555")
	assert.ErrorIs(t, m.Submit(context.Background()), ErrBusy)
	assert.Zero(t, store.callCount("create"), "no second store call while busy")

	_, err := m.Delete(context.Background(), "r1")
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, 1, store.callCount("delete"))

	assert.ErrorIs(t, m.Refresh(context.Background()), ErrBusy)

	close(store.blockDelete)
	<-done
	assert.False(t, m.Busy())
}

func TestNewOperationClearsError(t *testing.T) {
	store := &fakeStore{listErr: errors.New("boom")}
	m := newManager(store, confirmYes)

	assert.Error(t, m.Refresh(context.Background()))
	assert.NotEmpty(t, m.LastError())

	store.listErr = nil
	require.NoError(t, m.Refresh(context.Background()))
	assert.Empty(t, m.LastError(), "a new attempt supersedes the previous error")
}
