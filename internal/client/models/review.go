package models

import "time"

// Review is a user's rating of a vendor.
type Review struct {
	ID        int64     `json:"id"`
	VendorID  int64     `json:"vendor_id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// AverageRating computes the mean rating over reviews, 0 for an empty list.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

// LikedSet tracks which review IDs the current user has liked, for
// optimistic UI toggling before the backend confirms.
type LikedSet map[int64]struct{}

func NewLikedSet(ids ...int64) LikedSet {
	s := make(LikedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s LikedSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

func (s LikedSet) Add(id int64)    { s[id] = struct{}{} }
func (s LikedSet) Remove(id int64) { delete(s, id) }

// Toggle flips membership of id and reports whether it is liked afterwards.
func (s LikedSet) Toggle(id int64) bool {
	if s.Has(id) {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}
