package mockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetbite/streetbite/internal/common"
)

func TestStore_AuthenticateSeedUser(t *testing.T) {
	s := NewStore()

	user, err := s.Authenticate("demo@streetbite.dev", seedPassword)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)

	_, err = s.Authenticate("demo@streetbite.dev", "nope")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Authenticate("nobody@streetbite.dev", seedPassword)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestStore_RegisterRejectsDuplicateEmail(t *testing.T) {
	s := NewStore()

	user, err := s.Register("New User", "new@streetbite.dev", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)

	_, err = s.Register("Other", "DEMO@streetbite.dev", "secret1")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)

	auth, err := s.Authenticate("new@streetbite.dev", "secret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, auth.ID)
}

func TestStore_VendorsNearbyOrdersByDistance(t *testing.T) {
	s := NewStore()

	got := s.VendorsNearby(52.52, 13.405, 2)
	ids := make([]int64, 0, len(got))
	for _, v := range got {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int64{6, 8}, ids)
}

func TestStore_ToggleFavorite(t *testing.T) {
	s := NewStore()

	on, err := s.ToggleFavorite(1, 2)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := s.ToggleFavorite(1, 2)
	require.NoError(t, err)
	assert.False(t, off)

	_, err = s.ToggleFavorite(1, 999)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestStore_ReviewsUpdateVendorRating(t *testing.T) {
	s := NewStore()

	before, err := s.Vendor(3)
	require.NoError(t, err)
	assert.Equal(t, 0, before.RatingCount)

	review, err := s.CreateReview(1, 3, 4, "solid burger")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", review.UserName)

	after, err := s.Vendor(3)
	require.NoError(t, err)
	assert.Equal(t, 1, after.RatingCount)
	assert.Equal(t, 4.0, after.Rating)

	require.NoError(t, s.DeleteReview(1, review.ID))
	cleared, err := s.Vendor(3)
	require.NoError(t, err)
	assert.Equal(t, 0, cleared.RatingCount)
	assert.Equal(t, 0.0, cleared.Rating)
}

func TestStore_UpdateReviewRequiresOwnership(t *testing.T) {
	s := NewStore()

	// Review 1 belongs to user 2.
	_, err := s.UpdateReview(1, 1, 3, "changed my mind")
	assert.ErrorIs(t, err, ErrNotOwner)

	updated, err := s.UpdateReview(2, 1, 3, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
}

func TestStore_LikesAreOncePerUser(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.LikeReview(1, 1))
	assert.ErrorIs(t, s.LikeReview(1, 1), common.ErrorAlreadyExists)

	require.NoError(t, s.UnlikeReview(1, 1))
	assert.ErrorIs(t, s.UnlikeReview(1, 1), common.ErrorNotFound)
}

func TestStore_StatsCountsSeedActivity(t *testing.T) {
	s := NewStore()

	stats := s.Stats(1)
	assert.Equal(t, 2, stats.Favorites)
	assert.Equal(t, 3, stats.Reviews)
	assert.Equal(t, 1, stats.LikesReceived)
}
