package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/streetbite/streetbite/internal/client/api"
)

// Favorites lists the current user's saved vendors.
func (a *App) Favorites(ctx context.Context) error {
	favorites, err := a.api.Favorites(ctx)
	if err != nil {
		return err
	}
	if len(favorites) == 0 {
		fmt.Println("No favorites yet")
		return nil
	}
	for _, f := range favorites {
		fmt.Printf("vendor %d (saved %s)\n", f.VendorID, f.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

// ToggleFavorite flips the saved state of a vendor: `fav <vendor-id>`.
func (a *App) ToggleFavorite(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "fav <vendor-id>")
	if err != nil {
		return err
	}

	favorited, err := a.api.ToggleFavorite(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no vendor with id %d", id)
		}
		return err
	}

	if favorited {
		fmt.Printf("Vendor %d added to favorites\n", id)
	} else {
		fmt.Printf("Vendor %d removed from favorites\n", id)
	}
	return nil
}

// RemoveFavorite unconditionally unsaves a vendor: `unfav <vendor-id>`.
func (a *App) RemoveFavorite(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "unfav <vendor-id>")
	if err != nil {
		return err
	}

	if err := a.api.RemoveFavorite(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("vendor %d is not a favorite", id)
		}
		return err
	}
	fmt.Printf("Vendor %d removed from favorites\n", id)
	return nil
}
