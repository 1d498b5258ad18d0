package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type addFavoriteRequest struct {
	VendorID int64 `json:"vendor_id" binding:"required"`
}

func (s *Server) listFavorites(c *gin.Context) {
	s.data(c, http.StatusOK, s.store.Favorites(s.userID(c)))
}

func (s *Server) addFavorite(c *gin.Context) {
	var req addFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "vendor_id is required")
		return
	}
	favorite, err := s.store.AddFavorite(s.userID(c), req.VendorID)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusCreated, favorite)
}

func (s *Server) removeFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	if err := s.store.RemoveFavorite(s.userID(c), id); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) toggleFavorite(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	favorited, err := s.store.ToggleFavorite(s.userID(c), id)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, gin.H{"favorited": favorited})
}
