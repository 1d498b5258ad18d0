package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (r reviewRequest) valid() bool {
	return r.Rating >= 1 && r.Rating <= 5
}

func (s *Server) listVendorReviews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	reviews, err := s.store.VendorReviews(id)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, reviews)
}

func (s *Server) createReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid vendor id")
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		s.fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	review, err := s.store.CreateReview(s.userID(c), id, req.Rating, req.Comment)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusCreated, review)
}

func (s *Server) updateReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid review id")
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.valid() {
		s.fail(c, http.StatusBadRequest, "rating must be between 1 and 5")
		return
	}
	review, err := s.store.UpdateReview(s.userID(c), id, req.Rating, req.Comment)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, review)
}

func (s *Server) deleteReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid review id")
		return
	}
	if err := s.store.DeleteReview(s.userID(c), id); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) likeReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid review id")
		return
	}
	if err := s.store.LikeReview(s.userID(c), id); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) unlikeReview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		s.fail(c, http.StatusBadRequest, "invalid review id")
		return
	}
	if err := s.store.UnlikeReview(s.userID(c), id); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
