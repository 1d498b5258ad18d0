package mockapi

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/streetbite/streetbite/internal/client/models"
)

// Seed accounts, all with the password "password".
const seedPassword = "password"

// seed fills the store with a fixed dataset: two accounts, six cuisines and
// eight vendors scattered around central Berlin, plus a handful of reviews
// and favorites so lists are not empty on first run.
func (s *Store) seed() {
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	users := []models.User{
		{ID: 1, Name: "Demo User", Email: "demo@streetbite.dev", Phone: "+49 30 1234567", CreatedAt: created},
		{ID: 2, Name: "Jamie Cook", Email: "jamie@streetbite.dev", CreatedAt: created},
	}
	for _, u := range users {
		s.users[u.ID] = &storedUser{User: u, passwordHash: hash}
	}

	cuisines := []models.Cuisine{
		{ID: 1, Name: "Mexican", Description: "Tacos, burritos and quesadillas"},
		{ID: 2, Name: "Thai", Description: "Curries and noodle dishes"},
		{ID: 3, Name: "Burgers", Description: "Smashed patties and loaded fries"},
		{ID: 4, Name: "Vietnamese", Description: "Pho, banh mi and summer rolls"},
		{ID: 5, Name: "Middle Eastern", Description: "Falafel, shawarma and mezze"},
		{ID: 6, Name: "Desserts", Description: "Waffles, churros and ice cream"},
	}
	for _, c := range cuisines {
		c := c
		s.cuisines[c.ID] = &c
	}

	vendors := []models.Vendor{
		{ID: 1, Name: "Taco Loco", Description: "Street tacos with homemade salsa", CuisineID: 1, Address: "Warschauer Str. 33", Lat: 52.5058, Lng: 13.4494, IsOpen: true},
		{ID: 2, Name: "Bangkok Bites", Description: "Wok dishes made to order", CuisineID: 2, Address: "Skalitzer Str. 80", Lat: 52.4993, Lng: 13.4265, IsOpen: true},
		{ID: 3, Name: "Patty Wagon", Description: "Smash burgers from a vintage truck", CuisineID: 3, Address: "Boxhagener Platz", Lat: 52.5105, Lng: 13.4610, IsOpen: false},
		{ID: 4, Name: "Pho Corner", Description: "Slow-simmered broth, fresh herbs", CuisineID: 4, Address: "Kantstr. 12", Lat: 52.5069, Lng: 13.3235, IsOpen: true},
		{ID: 5, Name: "Falafel Bros", Description: "Crispy falafel in fresh pita", CuisineID: 5, Address: "Sonnenallee 45", Lat: 52.4846, Lng: 13.4349, IsOpen: true},
		{ID: 6, Name: "Waffle Stop", Description: "Liege waffles and soft serve", CuisineID: 6, Address: "Alexanderplatz", Lat: 52.5216, Lng: 13.4132, IsOpen: true},
		{ID: 7, Name: "El Fuego", Description: "Grilled quesadillas, spicy salsas", CuisineID: 1, Address: "Bergmannstr. 102", Lat: 52.4884, Lng: 13.3944, IsOpen: true},
		{ID: 8, Name: "Saigon Express", Description: "Banh mi and iced coffee", CuisineID: 4, Address: "Torstr. 59", Lat: 52.5291, Lng: 13.4015, IsOpen: false},
	}
	for _, v := range vendors {
		v := v
		s.vendors[v.ID] = &v
	}

	reviews := []models.Review{
		{ID: 1, VendorID: 1, UserID: 2, UserName: "Jamie Cook", Rating: 5, Comment: "Best al pastor in town", CreatedAt: created},
		{ID: 2, VendorID: 1, UserID: 1, UserName: "Demo User", Rating: 4, Comment: "Great salsa, short queue", CreatedAt: created.Add(24 * time.Hour)},
		{ID: 3, VendorID: 2, UserID: 1, UserName: "Demo User", Rating: 5, Comment: "Pad see ew was perfect", CreatedAt: created.Add(48 * time.Hour)},
		{ID: 4, VendorID: 4, UserID: 2, UserName: "Jamie Cook", Rating: 4, Comment: "Broth could be hotter", CreatedAt: created.Add(72 * time.Hour)},
		{ID: 5, VendorID: 5, UserID: 1, UserName: "Demo User", Rating: 5, Comment: "Falafel still warm, lovely", CreatedAt: created.Add(96 * time.Hour)},
	}
	for _, r := range reviews {
		r := r
		s.reviews[r.ID] = &r
	}

	// Jamie liked the demo user's Thai review.
	s.likes[3] = map[int64]struct{}{2: {}}
	s.reviews[3].Likes = 1

	s.favorites[1] = map[int64]*models.Favorite{
		1: {ID: 1, UserID: 1, VendorID: 1, CreatedAt: created},
		5: {ID: 2, UserID: 1, VendorID: 5, CreatedAt: created},
	}

	for id := range s.vendors {
		s.recalcVendorRatingLocked(id)
	}

	s.nextUserID = 2
	s.nextReviewID = 5
	s.nextFavoriteID = 2
}
