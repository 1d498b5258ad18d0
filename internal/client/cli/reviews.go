package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/streetbite/streetbite/internal/client/api"
)

// Reviews lists reviews for a vendor: `reviews <vendor-id>`.
func (a *App) Reviews(ctx context.Context, args []string) error {
	vendorID, err := parseIDArg(args, "reviews <vendor-id>")
	if err != nil {
		return err
	}

	reviews, err := a.api.VendorReviews(ctx, vendorID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews yet")
		return nil
	}

	for _, r := range reviews {
		liked := ""
		if a.liked.Has(r.ID) {
			liked = " ♥"
		}
		fmt.Printf("[%d] %d★ %s by %s (%d likes)%s\n", r.ID, r.Rating, r.Comment, r.UserName, r.Likes, liked)
	}
	return nil
}

// AddReview creates a review: `review <vendor-id> <rating> [comment...]`.
func (a *App) AddReview(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: review <vendor-id> <rating> [comment]")
	}
	vendorID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid vendor id %q", args[0])
	}
	rating, err := parseRating(args[1])
	if err != nil {
		return err
	}
	comment := strings.Join(args[2:], " ")

	review, err := a.api.CreateReview(ctx, vendorID, rating, comment)
	if err != nil {
		return err
	}
	fmt.Printf("Review %d created\n", review.ID)
	return nil
}

// EditReview updates a review: `editreview <id> <rating> [comment...]`.
func (a *App) EditReview(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: editreview <review-id> <rating> [comment]")
	}
	reviewID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid review id %q", args[0])
	}
	rating, err := parseRating(args[1])
	if err != nil {
		return err
	}
	comment := strings.Join(args[2:], " ")

	if _, err := a.api.UpdateReview(ctx, reviewID, rating, comment); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no review with id %d", reviewID)
		}
		return err
	}
	fmt.Println("Review updated")
	return nil
}

// DeleteReview removes a review: `delreview <id>`.
func (a *App) DeleteReview(ctx context.Context, args []string) error {
	reviewID, err := parseIDArg(args, "delreview <review-id>")
	if err != nil {
		return err
	}

	if err := a.api.DeleteReview(ctx, reviewID); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no review with id %d", reviewID)
		}
		return err
	}
	a.liked.Remove(reviewID)
	fmt.Println("Review deleted")
	return nil
}

// LikeReview toggles a like on a review: `like <review-id>`. The liked set
// is updated optimistically and rolled back if the call fails.
func (a *App) LikeReview(ctx context.Context, args []string) error {
	reviewID, err := parseIDArg(args, "like <review-id>")
	if err != nil {
		return err
	}

	nowLiked := a.liked.Toggle(reviewID)

	if nowLiked {
		err = a.api.LikeReview(ctx, reviewID)
	} else {
		err = a.api.UnlikeReview(ctx, reviewID)
	}
	if err != nil {
		a.liked.Toggle(reviewID)
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no review with id %d", reviewID)
		}
		return err
	}

	if nowLiked {
		fmt.Printf("Liked review %d\n", reviewID)
	} else {
		fmt.Printf("Unliked review %d\n", reviewID)
	}
	return nil
}

func parseRating(s string) (int, error) {
	rating, err := strconv.Atoi(s)
	if err != nil || rating < 1 || rating > 5 {
		return 0, fmt.Errorf("rating must be an integer from 1 to 5, got %q", s)
	}
	return rating, nil
}
