package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/streetbite/streetbite/internal/client/api"
)

// Profile shows the server-side view of the current account.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.api.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	if user.Phone != "" {
		fmt.Println("phone: " + user.Phone)
	}
	fmt.Println("member since: " + user.CreatedAt.Format("2006-01-02"))

	if exp, ok := api.TokenExpiresAt(a.session.Token()); ok {
		fmt.Println("session valid until: " + exp.Local().Format(time.RFC822))
	}
	return nil
}

// Stats shows activity counters for the current account.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("favorites: %d, reviews: %d, likes received: %d\n",
		stats.Favorites, stats.Reviews, stats.LikesReceived)
	return nil
}
