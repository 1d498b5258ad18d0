package models

import (
	"sort"
	"strings"
)

// Vendor is a food vendor as listed by the backend.
type Vendor struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	CuisineID   int64   `json:"cuisine_id"`
	Address     string  `json:"address,omitempty"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Rating      float64 `json:"rating"`
	RatingCount int     `json:"rating_count"`
	ImageURL    string  `json:"image_url,omitempty"`
	IsOpen      bool    `json:"is_open"`
}

// FilterVendors returns the vendors matching both the free-text query and
// the cuisine filter. An empty query matches everything; cuisineID 0 means
// no cuisine filter. Matching is case-insensitive over name, description
// and address.
func FilterVendors(vendors []Vendor, query string, cuisineID int64) []Vendor {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Vendor, 0, len(vendors))
	for _, v := range vendors {
		if cuisineID != 0 && v.CuisineID != cuisineID {
			continue
		}
		if q != "" && !vendorMatches(v, q) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func vendorMatches(v Vendor, q string) bool {
	return strings.Contains(strings.ToLower(v.Name), q) ||
		strings.Contains(strings.ToLower(v.Description), q) ||
		strings.Contains(strings.ToLower(v.Address), q)
}

// SortVendorsByRating orders vendors best-first, breaking rating ties by
// review count and then by name so the order is stable for equal vendors.
// The input slice is not modified.
func SortVendorsByRating(vendors []Vendor) []Vendor {
	out := make([]Vendor, len(vendors))
	copy(out, vendors)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		if out[i].RatingCount != out[j].RatingCount {
			return out[i].RatingCount > out[j].RatingCount
		}
		return out[i].Name < out[j].Name
	})
	return out
}
