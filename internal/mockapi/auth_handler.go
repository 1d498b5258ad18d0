package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := s.store.Authenticate(req.Email, req.Password)
	if err != nil {
		s.storeError(c, err)
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, gin.H{"user": user, "token": token})
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, http.StatusBadRequest, "name, a valid email and a password of at least 6 characters are required")
		return
	}

	user, err := s.store.Register(req.Name, req.Email, req.Password)
	if err != nil {
		s.storeError(c, err)
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

// logout is a no-op acknowledgement. Access tokens are stateless, so there
// is nothing to revoke server-side.
func (s *Server) logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (s *Server) refresh(c *gin.Context) {
	token, err := s.tokens.Issue(s.userID(c))
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.data(c, http.StatusOK, gin.H{"token": token})
}
