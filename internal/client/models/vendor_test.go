package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testVendors = []Vendor{
	{ID: 1, Name: "Taco Loco", Description: "street tacos", Address: "5th Ave", CuisineID: 1, Rating: 4.5, RatingCount: 120},
	{ID: 2, Name: "Pho Corner", Description: "vietnamese noodle soup", Address: "Main St", CuisineID: 2, Rating: 4.5, RatingCount: 80},
	{ID: 3, Name: "Burger Barn", Description: "smash burgers", Address: "Taco Plaza", CuisineID: 3, Rating: 3.9, RatingCount: 300},
	{ID: 4, Name: "El Taco Veloz", Description: "al pastor", Address: "Dock Rd", CuisineID: 1, Rating: 4.8, RatingCount: 45},
}

func TestFilterVendors(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		cuisineID int64
		wantIDs   []int64
	}{
		{name: "no filters returns all", query: "", cuisineID: 0, wantIDs: []int64{1, 2, 3, 4}},
		{name: "query matches name case-insensitively", query: "TACO", cuisineID: 0, wantIDs: []int64{1, 3, 4}},
		{name: "query matches description", query: "noodle", cuisineID: 0, wantIDs: []int64{2}},
		{name: "cuisine filter only", query: "", cuisineID: 1, wantIDs: []int64{1, 4}},
		{name: "query and cuisine combined", query: "taco", cuisineID: 1, wantIDs: []int64{1, 4}},
		{name: "no match yields empty non-nil slice", query: "sushi", cuisineID: 0, wantIDs: []int64{}},
		{name: "whitespace query matches all", query: "   ", cuisineID: 0, wantIDs: []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterVendors(testVendors, tt.query, tt.cuisineID)
			ids := make([]int64, 0, len(got))
			for _, v := range got {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSortVendorsByRating(t *testing.T) {
	got := SortVendorsByRating(testVendors)

	ids := make([]int64, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	// 4.8 first, then the two 4.5s ordered by rating count, 3.9 last.
	assert.Equal(t, []int64{4, 1, 2, 3}, ids)

	// Input order is untouched.
	assert.Equal(t, int64(1), testVendors[0].ID)
}
