package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s := NewStore(path)
	assert.False(t, s.Current().Authenticated)

	require.NoError(t, s.Login("jwt-abc"))
	assert.Equal(t, State{Authenticated: true, Token: "jwt-abc"}, s.Current())

	// A fresh store simulates a restart: the persisted token is trusted.
	restarted := NewStore(path)
	assert.Equal(t, State{Authenticated: true, Token: "jwt-abc"}, restarted.Current())
}

func TestLogoutRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s := NewStore(path)
	require.NoError(t, s.Login("jwt-abc"))
	require.NoError(t, s.Logout())
	assert.Equal(t, State{}, s.Current())

	restarted := NewStore(path)
	assert.False(t, restarted.Current().Authenticated)
	assert.Empty(t, restarted.Current().Token)
}

func TestLogoutIdempotent(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "token"))
	require.NoError(t, s.Logout())
	require.NoError(t, s.Logout())
	assert.False(t, s.Current().Authenticated)
}

func TestEmptyFileIsUnauthenticated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewStore(path)
	require.NoError(t, s.Login("   "))

	// Whitespace-only content reads back as no session.
	restarted := NewStore(path)
	assert.False(t, restarted.Current().Authenticated)
}
