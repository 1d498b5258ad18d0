package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) profile(c *gin.Context) {
	user, err := s.store.User(s.userID(c))
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, user)
}

func (s *Server) stats(c *gin.Context) {
	s.data(c, http.StatusOK, s.store.Stats(s.userID(c)))
}
