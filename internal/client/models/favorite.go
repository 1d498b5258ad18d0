package models

import "time"

// Favorite marks a vendor as saved by a user. Favorites reference vendors
// only; cuisines are a browse-only taxonomy and cannot be favorited.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	VendorID  int64     `json:"vendor_id"`
	CreatedAt time.Time `json:"created_at"`
}
