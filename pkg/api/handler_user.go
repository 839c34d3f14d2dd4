package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fabula-ai/fabula/pkg/models"
)

// registerHandler creates an account. The weekly credit allowance is granted
// on first use, not here.
func (s *Server) registerHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	u, err := s.users.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// loginHandler verifies credentials and rotates the account's API token.
func (s *Server) loginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	u, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Token: token, User: u})
}

// logoutHandler revokes the caller's API token.
func (s *Server) logoutHandler(c *gin.Context) {
	u := currentUser(c)
	if err := s.users.Logout(c.Request.Context(), u.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// deleteAccountHandler anonymizes the caller's account. Sessions survive for
// shared books; the name on them becomes the deleted-user placeholder.
func (s *Server) deleteAccountHandler(c *gin.Context) {
	u := currentUser(c)
	if err := s.users.Anonymize(c.Request.Context(), u.ID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// creditsHandler reports the caller's per-tier balance, refilling first when
// the weekly reset is due.
func (s *Server) creditsHandler(c *gin.Context) {
	u := currentUser(c)
	balance, err := s.credits.Balance(c.Request.Context(), u.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}
