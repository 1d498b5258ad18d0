// Package models holds the value objects exchanged with the backend and the
// small pieces of list logic the client applies to them.
package models

import "time"

// User is the authenticated account record.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStats summarizes a user's activity, as reported by the backend.
type UserStats struct {
	Favorites     int `json:"favorites"`
	Reviews       int `json:"reviews"`
	LikesReceived int `json:"likes_received"`
}
