package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/streetbite/streetbite/internal/client/models"
	"github.com/streetbite/streetbite/internal/logging"
)

const (
	requestIDHeader     = "X-Request-ID"
	authorizationHeader = "Authorization"
)

// HTTPClient implements Client over net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a client for the backend at baseURL. If httpClient
// is nil a client with the given timeout is used. tokens may be nil for an
// unauthenticated client.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	if tokens == nil {
		tokens = func() string { return "" }
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// do issues one request and decodes the {"data": T} envelope into out
// (skipped when out is nil). Transport failures map to ErrUnavailable;
// 401/404 map to their sentinels; other non-2xx statuses produce *APIError
// with the server's error message when one is present.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens(); token != "" {
		req.Header.Set(authorizationHeader, "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		return nil
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

func (c *HTTPClient) errorFromResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}

	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{Status: resp.StatusCode, Message: body.Error}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	req := map[string]string{"email": email, "password": password}
	var payload AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &payload); err != nil {
		return nil, "", err
	}
	return &payload.User, payload.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	req := map[string]string{"name": name, "email": email, "password": password}
	var payload AuthPayload
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &payload); err != nil {
		return nil, "", err
	}
	return &payload.User, payload.Token, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
}

func (c *HTTPClient) Refresh(ctx context.Context) (string, error) {
	var payload struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, nil, &payload); err != nil {
		return "", err
	}
	return payload.Token, nil
}

func (c *HTTPClient) Vendors(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := c.do(ctx, http.MethodGet, "/vendors", nil, nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *HTTPClient) Vendor(ctx context.Context, id int64) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := c.do(ctx, http.MethodGet, "/vendors/"+formatID(id), nil, nil, &vendor); err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (c *HTTPClient) VendorsNearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.Vendor, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	q.Set("radius", strconv.FormatFloat(radiusKm, 'f', -1, 64))

	var vendors []models.Vendor
	if err := c.do(ctx, http.MethodGet, "/vendors/nearby", q, nil, &vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

func (c *HTTPClient) Cuisines(ctx context.Context) ([]models.Cuisine, error) {
	var cuisines []models.Cuisine
	if err := c.do(ctx, http.MethodGet, "/cuisines", nil, nil, &cuisines); err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (c *HTTPClient) Cuisine(ctx context.Context, id int64) (*models.Cuisine, error) {
	var cuisine models.Cuisine
	if err := c.do(ctx, http.MethodGet, "/cuisines/"+formatID(id), nil, nil, &cuisine); err != nil {
		return nil, err
	}
	return &cuisine, nil
}

func (c *HTTPClient) SearchCuisines(ctx context.Context, query string) ([]models.Cuisine, error) {
	q := url.Values{}
	q.Set("q", query)

	var cuisines []models.Cuisine
	if err := c.do(ctx, http.MethodGet, "/cuisines/search", q, nil, &cuisines); err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (c *HTTPClient) Favorites(ctx context.Context) ([]models.Favorite, error) {
	var favorites []models.Favorite
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, nil, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (c *HTTPClient) AddFavorite(ctx context.Context, vendorID int64) (*models.Favorite, error) {
	req := map[string]int64{"vendor_id": vendorID}
	var favorite models.Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites", nil, req, &favorite); err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, vendorID int64) error {
	return c.do(ctx, http.MethodDelete, "/favorites/"+formatID(vendorID), nil, nil, nil)
}

func (c *HTTPClient) ToggleFavorite(ctx context.Context, vendorID int64) (bool, error) {
	var payload struct {
		Favorited bool `json:"favorited"`
	}
	if err := c.do(ctx, http.MethodPost, "/favorites/"+formatID(vendorID)+"/toggle", nil, nil, &payload); err != nil {
		return false, err
	}
	return payload.Favorited, nil
}

func (c *HTTPClient) VendorReviews(ctx context.Context, vendorID int64) ([]models.Review, error) {
	var reviews []models.Review
	if err := c.do(ctx, http.MethodGet, "/vendors/"+formatID(vendorID)+"/reviews", nil, nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, vendorID int64, rating int, comment string) (*models.Review, error) {
	req := map[string]any{"rating": rating, "comment": comment}
	var review models.Review
	if err := c.do(ctx, http.MethodPost, "/vendors/"+formatID(vendorID)+"/reviews", nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *HTTPClient) UpdateReview(ctx context.Context, reviewID int64, rating int, comment string) (*models.Review, error) {
	req := map[string]any{"rating": rating, "comment": comment}
	var review models.Review
	if err := c.do(ctx, http.MethodPut, "/reviews/"+formatID(reviewID), nil, req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *HTTPClient) DeleteReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+formatID(reviewID), nil, nil, nil)
}

func (c *HTTPClient) LikeReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodPost, "/reviews/"+formatID(reviewID)+"/like", nil, nil, nil)
}

func (c *HTTPClient) UnlikeReview(ctx context.Context, reviewID int64) error {
	return c.do(ctx, http.MethodDelete, "/reviews/"+formatID(reviewID)+"/like", nil, nil, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/profile", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := c.do(ctx, http.MethodGet, "/profile/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
