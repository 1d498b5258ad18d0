package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/streetbite/streetbite/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the backend and
// commits the resulting session. The session store persists the pair
// before flipping in-memory state, so a storage failure here leaves the
// user logged out rather than half logged in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, token, err := a.api.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("invalid email or password")
		}
		return err
	}

	if err := a.session.Login(ctx, user, token); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}

	fmt.Printf("Welcome back, %s!\n", user.Name)
	return nil
}

// Register prompts for a name, email and password and creates an account.
// A successful registration logs the user straight in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, token, err := a.api.Register(ctx, name, email, password)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, user, token); err != nil {
		return fmt.Errorf("could not save session: %w", err)
	}

	fmt.Printf("Account created. Welcome, %s!\n", user.Name)
	return nil
}

// Logout invalidates the server-side session where possible and always
// clears the local one. An unreachable server does not trap the user in a
// logged-in state; any other failure aborts with the session intact.
func (a *App) Logout(ctx context.Context) error {
	if err := a.api.Logout(ctx); err != nil {
		if !errors.Is(err, api.ErrUnavailable) && !errors.Is(err, api.ErrUnauthorized) {
			return err
		}
		a.log.Warn(ctx, "server logout skipped", "error", err)
	}

	if err := a.session.Logout(ctx); err != nil {
		return fmt.Errorf("could not clear session: %w", err)
	}

	fmt.Println("Logged out")
	return nil
}

// Refresh exchanges the current token for a fresh one and re-persists the
// session pair through the normal login path.
func (a *App) Refresh(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		return errors.New("not logged in")
	}

	token, err := a.api.Refresh(ctx)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, user, token); err != nil {
		return fmt.Errorf("could not save refreshed session: %w", err)
	}

	if exp, ok := api.TokenExpiresAt(token); ok {
		fmt.Printf("Session refreshed, valid until %s\n", exp.Local().Format(time.RFC822))
	} else {
		fmt.Println("Session refreshed")
	}
	return nil
}
