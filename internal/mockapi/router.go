package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/streetbite/streetbite/internal/logging"
)

const userIDKey = "auth_user_id"

// NewRouter builds the gin engine serving the REST contract. Everything
// except login and register sits behind the bearer-token middleware.
func NewRouter(store *Store, tokens *TokenService, log logging.Logger) *gin.Engine {
	s := &Server{store: store, tokens: tokens, log: log}

	r := gin.New()
	r.Use(requestIDMiddleware(), loggerMiddleware(log), gin.Recovery())

	auth := r.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)

	protected := r.Group("/", authMiddleware(tokens))
	protected.POST("/auth/logout", s.logout)
	protected.POST("/auth/refresh", s.refresh)

	protected.GET("/vendors", s.listVendors)
	protected.GET("/vendors/nearby", s.vendorsNearby)
	protected.GET("/vendors/:id", s.getVendor)
	protected.GET("/vendors/:id/reviews", s.listVendorReviews)
	protected.POST("/vendors/:id/reviews", s.createReview)

	protected.GET("/cuisines", s.listCuisines)
	protected.GET("/cuisines/search", s.searchCuisines)
	protected.GET("/cuisines/:id", s.getCuisine)

	protected.GET("/favorites", s.listFavorites)
	protected.POST("/favorites", s.addFavorite)
	protected.DELETE("/favorites/:id", s.removeFavorite)
	protected.POST("/favorites/:id/toggle", s.toggleFavorite)

	protected.PUT("/reviews/:id", s.updateReview)
	protected.DELETE("/reviews/:id", s.deleteReview)
	protected.POST("/reviews/:id/like", s.likeReview)
	protected.DELETE("/reviews/:id/like", s.unlikeReview)

	protected.GET("/profile", s.profile)
	protected.GET("/profile/stats", s.stats)

	return r
}

// requestIDMiddleware echoes the client's X-Request-ID, generating one when
// the header is absent.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func loggerMiddleware(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}

// authMiddleware validates the bearer token and stores the user ID in the
// request context.
func authMiddleware(tokens *TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		userID, err := tokens.Parse(strings.TrimSpace(header[len("Bearer "):]))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
