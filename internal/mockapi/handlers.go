package mockapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streetbite/streetbite/internal/common"
	"github.com/streetbite/streetbite/internal/logging"
)

// Server holds the handler dependencies.
type Server struct {
	store  *Store
	tokens *TokenService
	log    logging.Logger
}

func (s *Server) data(c *gin.Context, status int, v any) {
	c.JSON(status, gin.H{"data": v})
}

func (s *Server) fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// storeError translates store errors into HTTP statuses.
func (s *Server) storeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		s.fail(c, http.StatusConflict, "already exists")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		s.fail(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrNotOwner):
		s.fail(c, http.StatusForbidden, err.Error())
	default:
		s.log.Error(c.Request.Context(), "handler failed", "error", err)
		s.fail(c, http.StatusInternalServerError, "internal error")
	}
}

// userID returns the authenticated user set by the auth middleware.
func (s *Server) userID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
