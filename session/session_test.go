package session

import (
	"context"
	"testing"
	"time"

	"glowbook/models"
	"glowbook/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("session-test-secret")

func testSession(t *testing.T, ttl time.Duration) Session {
	t.Helper()
	token, err := utils.GenerateToken("user-1", "mia@example.com", testSecret, ttl)
	require.NoError(t, err)
	return Session{
		UserID: "user-1",
		Email:  "mia@example.com",
		Token:  token,
		User:   models.User{ID: "user-1", Name: "Mia", Email: "mia@example.com"},
	}
}

func TestBeginAndEnd(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), nil)

	assert.False(t, m.SignedIn())
	assert.Empty(t, m.Token())

	s := testSession(t, time.Hour)
	require.NoError(t, m.Begin(ctx, s))
	assert.True(t, m.SignedIn())
	assert.Equal(t, s.Token, m.Token())
	require.NotNil(t, m.Current())
	assert.Equal(t, "user-1", m.Current().UserID)

	require.NoError(t, m.End(ctx))
	assert.False(t, m.SignedIn())
	assert.Nil(t, m.Current())
	assert.Empty(t, m.Token())
}

func TestInvalidateFiresListenersOnce(t *testing.T) {
	ctx := context.Background()
	m := NewManager(NewMemoryStore(), nil)

	fired := 0
	m.OnInvalidate(func() { fired++ })

	require.NoError(t, m.Begin(ctx, testSession(t, time.Hour)))
	m.Invalidate(ctx)
	assert.Equal(t, 1, fired)
	assert.False(t, m.SignedIn())

	// Already signed out, so a second 401 must not re-fire the listeners.
	m.Invalidate(ctx)
	assert.Equal(t, 1, fired)
}

func TestRestoreFromStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := NewManager(store, nil)
	require.NoError(t, first.Begin(ctx, testSession(t, time.Hour)))

	// A fresh manager on the same store stands in for an app relaunch.
	second := NewManager(store, nil)
	require.NoError(t, second.Restore(ctx))
	require.True(t, second.SignedIn())
	assert.Equal(t, "user-1", second.Current().UserID)
}

func TestRestoreDiscardsExpiredSession(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first := NewManager(store, nil)
	require.NoError(t, first.Begin(ctx, testSession(t, -time.Hour)))

	second := NewManager(store, nil)
	require.NoError(t, second.Restore(ctx))
	assert.False(t, second.SignedIn())

	stored, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, stored, "expired session must be purged from the store")
}

func TestRestoreWithEmptyStore(t *testing.T) {
	m := NewManager(NewMemoryStore(), nil)
	require.NoError(t, m.Restore(context.Background()))
	assert.False(t, m.SignedIn())
}

func TestSessionExpired(t *testing.T) {
	now := time.Now()
	live := testSession(t, time.Hour)
	assert.False(t, live.Expired(now))

	stale := testSession(t, -time.Minute)
	assert.True(t, stale.Expired(now))

	garbage := Session{Token: "not-a-jwt"}
	assert.True(t, garbage.Expired(now))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, Session{UserID: "user-1"}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	loaded.UserID = "mutated"

	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", again.UserID)
}
