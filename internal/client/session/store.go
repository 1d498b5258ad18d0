// Package session owns the device's authentication state: which user, if
// any, this installation is logged in as, and the bearer token proving it.
// The pair is persisted to durable storage and restored once at startup.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/streetbite/streetbite/internal/client/models"
	"github.com/streetbite/streetbite/internal/client/storage"
	"github.com/streetbite/streetbite/internal/logging"
)

// Storage keys. The theme store uses its own key; the namespaces are disjoint.
const (
	KeyToken = "session.token"
	KeyUser  = "session.user"
)

var (
	// ErrInvalidLogin is returned when Login is called without a user or
	// with an empty token.
	ErrInvalidLogin = errors.New("login requires a user and a non-empty token")
)

// Snapshot is an immutable view of the session at one observation point.
type Snapshot struct {
	User      *models.User
	Token     string
	IsLoading bool
}

// IsLoggedIn holds exactly when both the user and the token are present.
// The store never writes one without the other.
func (s Snapshot) IsLoggedIn() bool {
	return s.User != nil && s.Token != ""
}

// Store is the single source of truth for the session. All mutation goes
// through Restore, Login and Logout; consumers read via the accessors.
//
// Write ordering contract: Login and Logout persist to durable storage
// first and mutate memory only after the persistence step succeeded. A
// storage failure therefore leaves the in-memory session untouched.
type Store struct {
	mu       sync.RWMutex
	kv       storage.KV
	log      logging.Logger
	user     *models.User
	token    string
	loading  bool
	restored bool
	onChange []func(Snapshot)
}

// NewStore creates an empty session in the loading state. Callers must
// invoke Restore once before trusting IsLoggedIn.
func NewStore(kv storage.KV, log logging.Logger) *Store {
	return &Store{kv: kv, log: log, loading: true}
}

// OnChange registers fn to run after every state change, with the snapshot
// that change produced. Callbacks run synchronously on the mutating call.
func (s *Store) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Restore loads the persisted session, if any. It runs its read-only pass
// exactly once per process; repeated calls are no-ops. Storage failures and
// malformed stored data are normalized to "nothing stored": the session
// comes up logged out and no error escapes. The loading flag is cleared
// unconditionally.
func (s *Store) Restore(ctx context.Context) {
	s.mu.Lock()
	if s.restored {
		s.mu.Unlock()
		return
	}
	s.restored = true
	s.mu.Unlock()

	user, token := s.readPersisted(ctx)

	s.mu.Lock()
	s.user = user
	s.token = token
	s.loading = false
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// readPersisted returns the stored (user, token) pair, or (nil, "") when
// either entry is absent, unreadable or unparsable.
func (s *Store) readPersisted(ctx context.Context) (*models.User, string) {
	token, ok, err := s.kv.Get(ctx, KeyToken)
	if err != nil {
		s.log.Warn(ctx, "session restore: token read failed, treating as logged out", "error", err)
		return nil, ""
	}
	if !ok || token == "" {
		return nil, ""
	}

	raw, ok, err := s.kv.Get(ctx, KeyUser)
	if err != nil {
		s.log.Warn(ctx, "session restore: user read failed, treating as logged out", "error", err)
		return nil, ""
	}
	if !ok {
		return nil, ""
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.log.Warn(ctx, "session restore: stored user is malformed, treating as logged out", "error", err)
		return nil, ""
	}

	return &user, token
}

// Login persists the (user, token) pair and then commits it to memory.
// If the persistence write fails, the error is returned and the in-memory
// session is left unchanged.
func (s *Store) Login(ctx context.Context, user *models.User, token string) error {
	if user == nil || token == "" {
		return ErrInvalidLogin
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if err := s.kv.SetMany(ctx, map[string]string{
		KeyToken: token,
		KeyUser:  string(raw),
	}); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	u := *user
	s.mu.Lock()
	s.user = &u
	s.token = token
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

// Logout removes the persisted pair and then clears memory. Calling it
// while already logged out is a no-op and succeeds.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.DeleteMany(ctx, KeyToken, KeyUser); err != nil {
		return fmt.Errorf("remove persisted session: %w", err)
	}

	s.mu.Lock()
	changed := s.user != nil || s.token != ""
	s.user = nil
	s.token = ""
	snap := s.snapshotLocked()
	s.mu.Unlock()

	if changed {
		s.notify(snap)
	}
	return nil
}

// User returns a copy of the current user, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) IsLoggedIn() bool {
	return s.Snapshot().IsLoggedIn()
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{Token: s.token, IsLoading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

func (s *Store) notify(snap Snapshot) {
	s.mu.RLock()
	callbacks := make([]func(Snapshot), len(s.onChange))
	copy(callbacks, s.onChange)
	s.mu.RUnlock()

	for _, fn := range callbacks {
		fn(snap)
	}
}
