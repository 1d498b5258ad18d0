package session

import (
	"context"

	"github.com/streetbite/streetbite/internal/logging"
)

// Branch identifies which navigation group the UI is currently showing.
type Branch string

const (
	// BranchLogin is the unauthenticated flow (login/register screens).
	BranchLogin Branch = "login"
	// BranchMain is the authenticated application.
	BranchMain Branch = "main"
)

// State is the gate's view of session-vs-navigation consistency.
type State string

const (
	StateInitializing               State = "initializing"
	StateUnauthenticated            State = "unauthenticated"
	StateUnauthenticatedInLoginFlow State = "unauthenticated_in_login_flow"
	StateAuthenticated              State = "authenticated"
	StateAuthenticatedInLoginFlow   State = "authenticated_in_login_flow"
)

// Action is the correction the gate wants applied, if any.
type Action int

const (
	ActionNone Action = iota
	ActionRedirectToLogin
	ActionRedirectToMain
)

// Decide classifies the session/branch combination and names the redirect
// that reconciles them. It is pure: same inputs, same outputs.
//
// While the initial restore is in flight everything is held (no redirect),
// so no screen acts on a session that has not finished loading. Afterwards
// a redirect is issued exactly when the branch and the session disagree.
// Both redirect targets are stable: re-evaluating after the redirect yields
// ActionNone, so no redirect loop is possible.
func Decide(snap Snapshot, branch Branch) (State, Action) {
	if snap.IsLoading {
		return StateInitializing, ActionNone
	}

	inLoginFlow := branch == BranchLogin

	switch {
	case !snap.IsLoggedIn() && !inLoginFlow:
		return StateUnauthenticated, ActionRedirectToLogin
	case !snap.IsLoggedIn():
		return StateUnauthenticatedInLoginFlow, ActionNone
	case inLoginFlow:
		return StateAuthenticatedInLoginFlow, ActionRedirectToMain
	default:
		return StateAuthenticated, ActionNone
	}
}

// Navigator is the surface the gate corrects. The CLI implements it by
// switching its active command branch.
type Navigator interface {
	Branch() Branch
	Navigate(Branch)
}

// Gate re-evaluates session/navigation consistency on every session change
// and applies redirects through the Navigator. Navigation changes made
// directly on the Navigator should be followed by an Evaluate call.
type Gate struct {
	store *Store
	nav   Navigator
	log   logging.Logger
}

func NewGate(store *Store, nav Navigator, log logging.Logger) *Gate {
	g := &Gate{store: store, nav: nav, log: log}
	store.OnChange(func(Snapshot) { g.Evaluate(context.Background()) })
	return g
}

// Evaluate runs one decision pass and applies the resulting redirect.
// It is idempotent: a second call right after a redirect is a no-op.
func (g *Gate) Evaluate(ctx context.Context) (State, Action) {
	snap := g.store.Snapshot()
	state, action := Decide(snap, g.nav.Branch())

	switch action {
	case ActionRedirectToLogin:
		g.log.Debug(ctx, "session gate: redirecting to login", "state", state)
		g.nav.Navigate(BranchLogin)
	case ActionRedirectToMain:
		g.log.Debug(ctx, "session gate: redirecting to main", "state", state)
		g.nav.Navigate(BranchMain)
	}

	return state, action
}
