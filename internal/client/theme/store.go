// Package theme resolves and persists the display-mode preference. The
// stored value may be the abstract "system" sentinel; the resolved color
// scheme is always one of the two concrete values.
package theme

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/streetbite/streetbite/internal/client/storage"
	"github.com/streetbite/streetbite/internal/logging"
)

// KeyPreference is the durable-storage key. Disjoint from the session keys.
const KeyPreference = "theme.preference"

// Scheme is a concrete rendering mode.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// Opposite returns the other concrete scheme.
func (s Scheme) Opposite() Scheme {
	if s == SchemeLight {
		return SchemeDark
	}
	return SchemeLight
}

// Preference is the user's stored choice; unlike Scheme it admits "system".
type Preference string

const (
	PreferenceLight  Preference = "light"
	PreferenceDark   Preference = "dark"
	PreferenceSystem Preference = "system"
)

// ParsePreference validates a raw stored/user value.
func ParsePreference(s string) (Preference, error) {
	switch Preference(s) {
	case PreferenceLight, PreferenceDark, PreferenceSystem:
		return Preference(s), nil
	default:
		return "", fmt.Errorf("invalid theme preference %q", s)
	}
}

// DetectFunc reports the OS-level appearance signal. It is consulted only
// when the preference is "system".
type DetectFunc func() Scheme

// DefaultDetector reads STREETBITE_COLOR_SCHEME ("light" or "dark") from the
// environment; anything else resolves to dark. A terminal has no portable
// appearance API, so the signal is an environment contract here.
func DefaultDetector() Scheme {
	if os.Getenv("STREETBITE_COLOR_SCHEME") == string(SchemeLight) {
		return SchemeLight
	}
	return SchemeDark
}

// Store holds the preference, resolves it against the OS signal and
// persists explicit choices. Persistence failures leave the in-memory
// value unchanged (stale but consistent) and are logged and returned.
type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	log    logging.Logger
	detect DetectFunc
	pref   Preference
	loaded bool
}

// NewStore creates a theme store defaulting to the system preference.
// A nil detect falls back to DefaultDetector.
func NewStore(kv storage.KV, detect DetectFunc, log logging.Logger) *Store {
	if detect == nil {
		detect = DefaultDetector
	}
	return &Store{kv: kv, log: log, detect: detect, pref: PreferenceSystem}
}

// Load reads the persisted preference once. Absent, unreadable or invalid
// stored values leave the default ("system") in place; no error escapes.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return
	}
	s.loaded = true

	raw, ok, err := s.kv.Get(ctx, KeyPreference)
	if err != nil {
		s.log.Warn(ctx, "theme load failed, using default", "error", err)
		return
	}
	if !ok {
		return
	}

	pref, err := ParsePreference(raw)
	if err != nil {
		s.log.Warn(ctx, "stored theme is invalid, using default", "value", raw)
		return
	}
	s.pref = pref
}

// Preference returns the stored choice, which may be "system".
func (s *Store) Preference() Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pref
}

// ColorScheme resolves the preference to a concrete scheme, substituting
// the live OS signal when the preference is "system".
func (s *Store) ColorScheme() Scheme {
	s.mu.RLock()
	pref := s.pref
	s.mu.RUnlock()

	switch pref {
	case PreferenceLight:
		return SchemeLight
	case PreferenceDark:
		return SchemeDark
	default:
		return s.detect()
	}
}

// SetTheme persists the literal preference and then commits it in memory.
func (s *Store) SetTheme(ctx context.Context, pref Preference) error {
	if _, err := ParsePreference(string(pref)); err != nil {
		return err
	}

	if err := s.kv.Set(ctx, KeyPreference, string(pref)); err != nil {
		s.log.Error(ctx, "theme persist failed, keeping previous preference", "error", err)
		return fmt.Errorf("persist theme: %w", err)
	}

	s.mu.Lock()
	s.pref = pref
	s.mu.Unlock()
	return nil
}

// Toggle switches to the concrete opposite of the currently resolved
// scheme. Toggling while the preference is "system" pins an explicit
// value; only an explicit SetTheme(PreferenceSystem) returns to following
// the OS.
func (s *Store) Toggle(ctx context.Context) error {
	return s.SetTheme(ctx, Preference(s.ColorScheme().Opposite()))
}
