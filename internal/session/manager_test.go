package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoginThenRestore(t *testing.T) {
	store := &MemoryStore{}

	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.Login("abc", ""))
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "abc", m.Token())

	// Simulated process restart: a fresh manager over the same store.
	restarted := NewManager(store, zap.NewNop())
	restarted.Restore()
	assert.True(t, restarted.IsAuthenticated())
	assert.Equal(t, "abc", restarted.Token())
}

func TestLogoutThenRestore(t *testing.T) {
	store := &MemoryStore{}

	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.Login("abc", "refresh"))
	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())

	restarted := NewManager(store, zap.NewNop())
	restarted.Restore()
	assert.False(t, restarted.IsAuthenticated())
	assert.Empty(t, restarted.Token())
}

func TestLogoutIsIdempotent(t *testing.T) {
	m := NewManager(&MemoryStore{}, zap.NewNop())

	require.NoError(t, m.Logout())
	require.NoError(t, m.Logout())
	assert.False(t, m.IsAuthenticated())
}

func TestLoginOverwritesPriorSession(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store, zap.NewNop())

	require.NoError(t, m.Login("first", ""))
	require.NoError(t, m.Login("second", ""))

	assert.Equal(t, "second", m.Token())
	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "second", persisted)
}

func TestRestoreWithEmptyStoreStaysUnauthenticated(t *testing.T) {
	m := NewManager(&MemoryStore{}, zap.NewNop())
	m.Restore()
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

type failingStore struct{ err error }

func (s *failingStore) Load() (string, error) { return "", s.err }
func (s *failingStore) Save(string) error     { return s.err }
func (s *failingStore) Clear() error          { return s.err }

func TestStoreFailuresRetainPriorState(t *testing.T) {
	// Restore over a broken store: unauthenticated, no panic.
	m := NewManager(&failingStore{err: errors.New("disk gone")}, zap.NewNop())
	m.Restore()
	assert.False(t, m.IsAuthenticated())

	// Failed login write leaves the session logged out.
	assert.Error(t, m.Login("abc", ""))
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, m.Token())
}

func TestFailedLogoutRetainsSession(t *testing.T) {
	store := &MemoryStore{}
	m := NewManager(store, zap.NewNop())
	require.NoError(t, m.Login("abc", ""))

	m.store = &failingStore{err: errors.New("disk gone")}
	assert.Error(t, m.Logout())
	assert.True(t, m.IsAuthenticated())
	assert.Equal(t, "abc", m.Token())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	// Empty slot is expected absence, not an error.
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok-123"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing an already-empty slot is a no-op.
	require.NoError(t, store.Clear())
}
