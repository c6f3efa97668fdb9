// Package session persists the dashboard bearer token across runs. The token
// is treated as opaque: it is stored and replayed, never inspected or
// validated locally. A stale token surfaces as a failing authenticated
// request, which is handled by that request's own error path.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// State is the synchronous view of the session.
type State struct {
	Authenticated bool
	Token         string
}

// Store keeps the token in memory and mirrors every change to disk, so a
// restart lands in the same state the last Login or Logout left behind.
type Store struct {
	mu    sync.Mutex
	path  string
	state State
}

// DefaultPath places the token file under the user data dir, falling back
// through the usual XDG chain.
func DefaultPath() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, "folio", "token")
	}
	if base, err := os.UserHomeDir(); err == nil && base != "" {
		return filepath.Join(base, ".local", "share", "folio", "token")
	}
	return filepath.Join(os.TempDir(), "folio", "token")
}

// NewStore reads the persisted token synchronously. A present token means
// Authenticated without any server round-trip; a later 401 is the signal to
// log out.
func NewStore(path string) *Store {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	s := &Store{path: path}
	if data, err := os.ReadFile(path); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			s.state = State{Authenticated: true, Token: token}
		}
	}
	return s
}

// Current returns the session state as of the last transition.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login persists the token and transitions to Authenticated. The token's
// shape is not checked.
func (s *Store) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}
	s.state = State{Authenticated: true, Token: token}
	return nil
}

// Logout erases the token and transitions to Unauthenticated. Calling it
// while already logged out is a no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.state = State{}
	return nil
}
