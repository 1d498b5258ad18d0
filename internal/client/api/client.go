// Package api is the JSON-over-HTTP client for the streetbite backend.
// Every successful response arrives wrapped in a {"data": T} envelope;
// failures carry {"error": "message"}.
package api

import (
	"context"

	"github.com/streetbite/streetbite/internal/client/models"
)

// Client is the full backend surface the application consumes.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) (string, error)

	// Vendors.
	Vendors(ctx context.Context) ([]models.Vendor, error)
	Vendor(ctx context.Context, id int64) (*models.Vendor, error)
	VendorsNearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Vendor, error)

	// Cuisines.
	Cuisines(ctx context.Context) ([]models.Cuisine, error)
	Cuisine(ctx context.Context, id int64) (*models.Cuisine, error)
	SearchCuisines(ctx context.Context, query string) ([]models.Cuisine, error)

	// Favorites.
	Favorites(ctx context.Context) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, vendorID int64) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, vendorID int64) error
	ToggleFavorite(ctx context.Context, vendorID int64) (bool, error)

	// Reviews.
	VendorReviews(ctx context.Context, vendorID int64) ([]models.Review, error)
	CreateReview(ctx context.Context, vendorID int64, rating int, comment string) (*models.Review, error)
	UpdateReview(ctx context.Context, reviewID int64, rating int, comment string) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error
	LikeReview(ctx context.Context, reviewID int64) error
	UnlikeReview(ctx context.Context, reviewID int64) error

	// Profile.
	Profile(ctx context.Context) (*models.User, error)
	Stats(ctx context.Context) (*models.UserStats, error)
}

// TokenSource supplies the current bearer token, or "" when logged out.
// Wired to the session store so the client never owns auth state.
type TokenSource func() string

// AuthPayload is the body of login/register responses.
type AuthPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}
