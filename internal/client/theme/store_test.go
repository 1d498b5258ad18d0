package theme

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetbite/streetbite/internal/client/storage"
	"github.com/streetbite/streetbite/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelDebug)
}

func detectorReturning(s Scheme) DetectFunc {
	return func() Scheme { return s }
}

func TestParsePreference(t *testing.T) {
	for _, valid := range []string{"light", "dark", "system"} {
		p, err := ParsePreference(valid)
		require.NoError(t, err)
		assert.Equal(t, Preference(valid), p)
	}

	_, err := ParsePreference("solarized")
	assert.Error(t, err)
}

func TestStore_DefaultsToSystem(t *testing.T) {
	s := NewStore(storage.NewMemoryKV(), detectorReturning(SchemeLight), testLogger())
	s.Load(context.Background())

	assert.Equal(t, PreferenceSystem, s.Preference())
	assert.Equal(t, SchemeLight, s.ColorScheme())
}

func TestStore_ExplicitPreferenceIgnoresOSSignal(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	s := NewStore(kv, detectorReturning(SchemeLight), testLogger())
	s.Load(ctx)

	require.NoError(t, s.SetTheme(ctx, PreferenceDark))
	assert.Equal(t, SchemeDark, s.ColorScheme())

	// And the literal value was persisted.
	v, ok, err := kv.Get(ctx, KeyPreference)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestStore_SystemFollowsOSSignal(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	current := SchemeDark
	s := NewStore(kv, func() Scheme { return current }, testLogger())
	s.Load(ctx)

	require.NoError(t, s.SetTheme(ctx, PreferenceSystem))
	assert.Equal(t, SchemeDark, s.ColorScheme())

	// The OS signal is read live, not cached.
	current = SchemeLight
	assert.Equal(t, SchemeLight, s.ColorScheme())
}

func TestStore_ToggleFromSystemPinsExplicitValue(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	// OS says dark, preference is system.
	s := NewStore(kv, detectorReturning(SchemeDark), testLogger())
	s.Load(ctx)

	require.NoError(t, s.Toggle(ctx))

	assert.Equal(t, SchemeLight, s.ColorScheme())
	assert.Equal(t, PreferenceLight, s.Preference())

	v, ok, err := kv.Get(ctx, KeyPreference)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestStore_ToggleFlipsResolvedScheme(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemoryKV(), detectorReturning(SchemeDark), testLogger())
	s.Load(ctx)

	require.NoError(t, s.SetTheme(ctx, PreferenceLight))
	require.NoError(t, s.Toggle(ctx))
	assert.Equal(t, PreferenceDark, s.Preference())
	require.NoError(t, s.Toggle(ctx))
	assert.Equal(t, PreferenceLight, s.Preference())
}

func TestStore_LoadRestoresPersistedPreference(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyPreference, "dark"))

	s := NewStore(kv, detectorReturning(SchemeLight), testLogger())
	s.Load(ctx)

	assert.Equal(t, PreferenceDark, s.Preference())
	assert.Equal(t, SchemeDark, s.ColorScheme())
}

func TestStore_LoadInvalidValueFallsBackToSystem(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, KeyPreference, "blurple"))

	s := NewStore(kv, detectorReturning(SchemeLight), testLogger())
	s.Load(ctx)

	assert.Equal(t, PreferenceSystem, s.Preference())
}

func TestStore_PersistFailureKeepsPreviousValue(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	s := NewStore(kv, detectorReturning(SchemeDark), testLogger())
	s.Load(ctx)
	require.NoError(t, s.SetTheme(ctx, PreferenceLight))

	kv.FailWrites = errors.New("disk full")
	err := s.SetTheme(ctx, PreferenceDark)
	require.Error(t, err)

	assert.Equal(t, PreferenceLight, s.Preference())
}

func TestStore_SetThemeRejectsInvalidValue(t *testing.T) {
	s := NewStore(storage.NewMemoryKV(), nil, testLogger())
	assert.Error(t, s.SetTheme(context.Background(), Preference("neon")))
}

func TestSchemeOpposite(t *testing.T) {
	assert.Equal(t, SchemeDark, SchemeLight.Opposite())
	assert.Equal(t, SchemeLight, SchemeDark.Opposite())
}
