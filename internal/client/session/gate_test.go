package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetbite/streetbite/internal/client/models"
	"github.com/streetbite/streetbite/internal/client/storage"
)

func loggedIn() Snapshot {
	return Snapshot{User: &models.User{ID: 1}, Token: "tok"}
}

func loggedOut() Snapshot {
	return Snapshot{}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		snap       Snapshot
		branch     Branch
		wantState  State
		wantAction Action
	}{
		{
			name:       "loading holds everything on main",
			snap:       Snapshot{IsLoading: true},
			branch:     BranchMain,
			wantState:  StateInitializing,
			wantAction: ActionNone,
		},
		{
			name:       "loading holds everything on login",
			snap:       Snapshot{IsLoading: true, User: &models.User{ID: 1}, Token: "tok"},
			branch:     BranchLogin,
			wantState:  StateInitializing,
			wantAction: ActionNone,
		},
		{
			name:       "logged out on main redirects to login",
			snap:       loggedOut(),
			branch:     BranchMain,
			wantState:  StateUnauthenticated,
			wantAction: ActionRedirectToLogin,
		},
		{
			name:       "logged out on login stays put",
			snap:       loggedOut(),
			branch:     BranchLogin,
			wantState:  StateUnauthenticatedInLoginFlow,
			wantAction: ActionNone,
		},
		{
			name:       "logged in on main stays put",
			snap:       loggedIn(),
			branch:     BranchMain,
			wantState:  StateAuthenticated,
			wantAction: ActionNone,
		},
		{
			name:       "logged in on login redirects to main",
			snap:       loggedIn(),
			branch:     BranchLogin,
			wantState:  StateAuthenticatedInLoginFlow,
			wantAction: ActionRedirectToMain,
		},
		{
			name:       "token without user counts as logged out",
			snap:       Snapshot{Token: "tok"},
			branch:     BranchMain,
			wantState:  StateUnauthenticated,
			wantAction: ActionRedirectToLogin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, action := Decide(tt.snap, tt.branch)
			assert.Equal(t, tt.wantState, state)
			assert.Equal(t, tt.wantAction, action)
		})
	}
}

func TestDecide_RedirectTargetsAreStable(t *testing.T) {
	// Following the redirect from any "must redirect" state lands in a
	// state that decides ActionNone, so no redirect loop is possible.
	_, action := Decide(loggedOut(), BranchMain)
	require.Equal(t, ActionRedirectToLogin, action)
	_, action = Decide(loggedOut(), BranchLogin)
	assert.Equal(t, ActionNone, action)

	_, action = Decide(loggedIn(), BranchLogin)
	require.Equal(t, ActionRedirectToMain, action)
	_, action = Decide(loggedIn(), BranchMain)
	assert.Equal(t, ActionNone, action)
}

type fakeNav struct {
	branch    Branch
	navigated []Branch
}

func (f *fakeNav) Branch() Branch { return f.branch }

func (f *fakeNav) Navigate(b Branch) {
	f.branch = b
	f.navigated = append(f.navigated, b)
}

func TestGate_ReactsToSessionChanges(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	store := NewStore(kv, testLogger())
	nav := &fakeNav{branch: BranchMain}
	gate := NewGate(store, nav, testLogger())

	// Still loading: evaluating changes nothing.
	state, action := gate.Evaluate(ctx)
	assert.Equal(t, StateInitializing, state)
	assert.Equal(t, ActionNone, action)
	assert.Empty(t, nav.navigated)

	// Restore finds nothing: the gate kicks the UI to the login flow.
	store.Restore(ctx)
	assert.Equal(t, BranchLogin, nav.branch)
	require.Len(t, nav.navigated, 1)

	// Login from within the login flow: redirected to main.
	require.NoError(t, store.Login(ctx, &models.User{ID: 1, Name: "A", Email: "a@x.com"}, "tok"))
	assert.Equal(t, BranchMain, nav.branch)

	// Logout from main: back to login.
	require.NoError(t, store.Logout(ctx))
	assert.Equal(t, BranchLogin, nav.branch)
}

func TestGate_EvaluateIsIdempotent(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	store := NewStore(kv, testLogger())
	nav := &fakeNav{branch: BranchMain}
	gate := NewGate(store, nav, testLogger())

	store.Restore(ctx)
	n := len(nav.navigated)

	gate.Evaluate(ctx)
	gate.Evaluate(ctx)

	assert.Equal(t, n, len(nav.navigated))
	assert.Equal(t, BranchLogin, nav.branch)
}
