package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	assert.Equal(t, float64(0), AverageRating(nil))
	assert.Equal(t, float64(0), AverageRating([]Review{}))

	reviews := []Review{{Rating: 5}, {Rating: 4}, {Rating: 2}}
	assert.InDelta(t, 3.6666, AverageRating(reviews), 0.001)

	assert.Equal(t, float64(4), AverageRating([]Review{{Rating: 4}}))
}

func TestLikedSet(t *testing.T) {
	s := NewLikedSet(1, 2)

	assert.True(t, s.Has(1))
	assert.False(t, s.Has(3))

	// Toggle removes a present id and adds an absent one.
	assert.False(t, s.Toggle(1))
	assert.False(t, s.Has(1))
	assert.True(t, s.Toggle(3))
	assert.True(t, s.Has(3))

	s.Add(5)
	assert.True(t, s.Has(5))
	s.Remove(5)
	assert.False(t, s.Has(5))

	// Removing an absent id is a no-op.
	s.Remove(99)
	assert.False(t, s.Has(99))
}
