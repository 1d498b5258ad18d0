package mockapi

import (
	"errors"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/streetbite/streetbite/internal/client/models"
	"github.com/streetbite/streetbite/internal/common"
)

// ErrNotOwner is returned when a user tries to change a review written by
// somebody else.
var ErrNotOwner = errors.New("not the review author")

type storedUser struct {
	models.User
	passwordHash []byte
}

// Store is the in-memory dataset behind the mock server. All access goes
// through the mutex; values handed out are copies.
type Store struct {
	mu sync.Mutex

	users    map[int64]*storedUser
	vendors  map[int64]*models.Vendor
	cuisines map[int64]*models.Cuisine
	reviews  map[int64]*models.Review

	// favorites[userID][vendorID] and likes[reviewID][userID].
	favorites map[int64]map[int64]*models.Favorite
	likes     map[int64]map[int64]struct{}

	nextUserID     int64
	nextReviewID   int64
	nextFavoriteID int64
}

// NewStore returns a store populated with the seed dataset.
func NewStore() *Store {
	s := &Store{
		users:     make(map[int64]*storedUser),
		vendors:   make(map[int64]*models.Vendor),
		cuisines:  make(map[int64]*models.Cuisine),
		reviews:   make(map[int64]*models.Review),
		favorites: make(map[int64]map[int64]*models.Favorite),
		likes:     make(map[int64]map[int64]struct{}),
	}
	s.seed()
	return s
}

func (s *Store) Authenticate(email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
				return nil, common.ErrorUnauthorized
			}
			user := u.User
			return &user, nil
		}
	}
	return nil, common.ErrorUnauthorized
}

func (s *Store) Register(name, email, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, common.ErrorAlreadyExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	s.nextUserID++
	u := &storedUser{
		User: models.User{
			ID:        s.nextUserID,
			Name:      name,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		},
		passwordHash: hash,
	}
	s.users[u.ID] = u
	user := u.User
	return &user, nil
}

func (s *Store) User(id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	user := u.User
	return &user, nil
}

func (s *Store) Vendors() []models.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vendorListLocked(func(models.Vendor) bool { return true })
}

func (s *Store) Vendor(id int64) (*models.Vendor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.vendors[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	vendor := *v
	return &vendor, nil
}

// VendorsNearby returns vendors within radiusKm of the given point,
// closest first.
func (s *Store) VendorsNearby(lat, lng, radiusKm float64) []models.Vendor {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.vendorListLocked(func(v models.Vendor) bool {
		return distanceKm(lat, lng, v.Lat, v.Lng) <= radiusKm
	})
	sort.Slice(out, func(i, j int) bool {
		return distanceKm(lat, lng, out[i].Lat, out[i].Lng) <
			distanceKm(lat, lng, out[j].Lat, out[j].Lng)
	})
	return out
}

func (s *Store) vendorListLocked(keep func(models.Vendor) bool) []models.Vendor {
	out := make([]models.Vendor, 0, len(s.vendors))
	for _, v := range s.vendors {
		if keep(*v) {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Cuisines() []models.Cuisine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Cuisine, 0, len(s.cuisines))
	for _, c := range s.cuisines {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Cuisine(id int64) (*models.Cuisine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cuisines[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cuisine := *c
	return &cuisine, nil
}

func (s *Store) SearchCuisines(query string) []models.Cuisine {
	q := strings.ToLower(strings.TrimSpace(query))

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Cuisine, 0)
	for _, c := range s.cuisines {
		if q == "" ||
			strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Favorites(userID int64) []models.Favorite {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Favorite, 0, len(s.favorites[userID]))
	for _, f := range s.favorites[userID] {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) AddFavorite(userID, vendorID int64) (*models.Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addFavoriteLocked(userID, vendorID)
}

func (s *Store) addFavoriteLocked(userID, vendorID int64) (*models.Favorite, error) {
	if _, ok := s.vendors[vendorID]; !ok {
		return nil, common.ErrorNotFound
	}
	if _, ok := s.favorites[userID][vendorID]; ok {
		return nil, common.ErrorAlreadyExists
	}

	s.nextFavoriteID++
	f := &models.Favorite{
		ID:        s.nextFavoriteID,
		UserID:    userID,
		VendorID:  vendorID,
		CreatedAt: time.Now().UTC(),
	}
	if s.favorites[userID] == nil {
		s.favorites[userID] = make(map[int64]*models.Favorite)
	}
	s.favorites[userID][vendorID] = f
	favorite := *f
	return &favorite, nil
}

func (s *Store) RemoveFavorite(userID, vendorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[userID][vendorID]; !ok {
		return common.ErrorNotFound
	}
	delete(s.favorites[userID], vendorID)
	return nil
}

// ToggleFavorite flips the favorite state and reports whether the vendor is
// favorited afterwards.
func (s *Store) ToggleFavorite(userID, vendorID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.favorites[userID][vendorID]; ok {
		delete(s.favorites[userID], vendorID)
		return false, nil
	}
	if _, err := s.addFavoriteLocked(userID, vendorID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) VendorReviews(vendorID int64) ([]models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[vendorID]; !ok {
		return nil, common.ErrorNotFound
	}
	out := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.VendorID == vendorID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) CreateReview(userID, vendorID int64, rating int, comment string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vendors[vendorID]; !ok {
		return nil, common.ErrorNotFound
	}

	s.nextReviewID++
	r := &models.Review{
		ID:        s.nextReviewID,
		VendorID:  vendorID,
		UserID:    userID,
		UserName:  s.userNameLocked(userID),
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}
	s.reviews[r.ID] = r
	s.recalcVendorRatingLocked(vendorID)
	review := *r
	return &review, nil
}

func (s *Store) UpdateReview(userID, reviewID int64, rating int, comment string) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[reviewID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if r.UserID != userID {
		return nil, ErrNotOwner
	}
	r.Rating = rating
	r.Comment = comment
	s.recalcVendorRatingLocked(r.VendorID)
	review := *r
	return &review, nil
}

func (s *Store) DeleteReview(userID, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[reviewID]
	if !ok {
		return common.ErrorNotFound
	}
	if r.UserID != userID {
		return ErrNotOwner
	}
	delete(s.reviews, reviewID)
	delete(s.likes, reviewID)
	s.recalcVendorRatingLocked(r.VendorID)
	return nil
}

func (s *Store) LikeReview(userID, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[reviewID]
	if !ok {
		return common.ErrorNotFound
	}
	if _, liked := s.likes[reviewID][userID]; liked {
		return common.ErrorAlreadyExists
	}
	if s.likes[reviewID] == nil {
		s.likes[reviewID] = make(map[int64]struct{})
	}
	s.likes[reviewID][userID] = struct{}{}
	r.Likes = len(s.likes[reviewID])
	return nil
}

func (s *Store) UnlikeReview(userID, reviewID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reviews[reviewID]
	if !ok {
		return common.ErrorNotFound
	}
	if _, liked := s.likes[reviewID][userID]; !liked {
		return common.ErrorNotFound
	}
	delete(s.likes[reviewID], userID)
	r.Likes = len(s.likes[reviewID])
	return nil
}

func (s *Store) Stats(userID int64) models.UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := models.UserStats{Favorites: len(s.favorites[userID])}
	for _, r := range s.reviews {
		if r.UserID == userID {
			stats.Reviews++
			stats.LikesReceived += len(s.likes[r.ID])
		}
	}
	return stats
}

func (s *Store) userNameLocked(userID int64) string {
	if u, ok := s.users[userID]; ok {
		return u.Name
	}
	return ""
}

func (s *Store) recalcVendorRatingLocked(vendorID int64) {
	v, ok := s.vendors[vendorID]
	if !ok {
		return
	}
	sum, count := 0, 0
	for _, r := range s.reviews {
		if r.VendorID == vendorID {
			sum += r.Rating
			count++
		}
	}
	v.RatingCount = count
	if count == 0 {
		v.Rating = 0
		return
	}
	v.Rating = math.Round(float64(sum)/float64(count)*10) / 10
}

// distanceKm is the haversine great-circle distance.
func distanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
