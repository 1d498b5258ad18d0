package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/streetbite/streetbite/internal/client/api"
	"github.com/streetbite/streetbite/internal/client/models"
)

// Vendors lists vendors, optionally filtered: `vendors [query] [cuisine-id]`.
// Filtering and rating sort happen client-side over the full listing.
func (a *App) Vendors(ctx context.Context, args []string) error {
	query := ""
	var cuisineID int64
	if len(args) > 0 {
		query = args[0]
	}
	if len(args) > 1 {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid cuisine id %q", args[1])
		}
		cuisineID = id
	}

	vendors, err := a.api.Vendors(ctx)
	if err != nil {
		return err
	}

	vendors = models.SortVendorsByRating(models.FilterVendors(vendors, query, cuisineID))
	if len(vendors) == 0 {
		fmt.Println("No vendors found")
		return nil
	}

	for _, v := range vendors {
		printVendorLine(v)
	}
	return nil
}

// VendorDetail shows one vendor with its reviews: `vendor <id>`.
func (a *App) VendorDetail(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "vendor <id>")
	if err != nil {
		return err
	}

	vendor, err := a.api.Vendor(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no vendor with id %d", id)
		}
		return err
	}

	printVendorLine(*vendor)
	if vendor.Description != "" {
		fmt.Println("  " + vendor.Description)
	}
	if vendor.Address != "" {
		fmt.Println("  " + vendor.Address)
	}

	reviews, err := a.api.VendorReviews(ctx, vendor.ID)
	if err != nil {
		return err
	}
	fmt.Printf("  %d review(s), average %.1f\n", len(reviews), models.AverageRating(reviews))
	return nil
}

// Nearby lists vendors around a point: `nearby <lat> <lng> [km]`.
func (a *App) Nearby(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: nearby <lat> <lng> [km]")
	}
	lat, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid latitude %q", args[0])
	}
	lng, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid longitude %q", args[1])
	}
	radius := 5.0
	if len(args) > 2 {
		radius, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid radius %q", args[2])
		}
	}

	vendors, err := a.api.VendorsNearby(ctx, lat, lng, radius)
	if err != nil {
		return err
	}
	if len(vendors) == 0 {
		fmt.Println("Nothing nearby")
		return nil
	}
	for _, v := range vendors {
		printVendorLine(v)
	}
	return nil
}

// Cuisines lists all cuisines.
func (a *App) Cuisines(ctx context.Context) error {
	cuisines, err := a.api.Cuisines(ctx)
	if err != nil {
		return err
	}
	for _, c := range cuisines {
		fmt.Printf("[%d] %s\n", c.ID, c.Name)
	}
	return nil
}

// CuisineDetail shows one cuisine: `cuisine <id>`.
func (a *App) CuisineDetail(ctx context.Context, args []string) error {
	id, err := parseIDArg(args, "cuisine <id>")
	if err != nil {
		return err
	}

	cuisine, err := a.api.Cuisine(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return fmt.Errorf("no cuisine with id %d", id)
		}
		return err
	}

	fmt.Printf("[%d] %s\n", cuisine.ID, cuisine.Name)
	if cuisine.Description != "" {
		fmt.Println("  " + cuisine.Description)
	}
	return nil
}

// SearchCuisines searches cuisines by name: `csearch <query>`.
func (a *App) SearchCuisines(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: csearch <query>")
	}

	cuisines, err := a.api.SearchCuisines(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if len(cuisines) == 0 {
		fmt.Println("No cuisines found")
		return nil
	}
	for _, c := range cuisines {
		fmt.Printf("[%d] %s\n", c.ID, c.Name)
	}
	return nil
}

func printVendorLine(v models.Vendor) {
	open := "closed"
	if v.IsOpen {
		open = "open"
	}
	fmt.Printf("[%d] %s  %.1f★ (%d)  %s\n", v.ID, v.Name, v.Rating, v.RatingCount, open)
}

func parseIDArg(args []string, usage string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("usage: %s", usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[0])
	}
	return id, nil
}
