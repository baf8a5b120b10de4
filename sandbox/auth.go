package sandbox

import (
	"net/http"
	"time"

	"glowbook/models"
	"glowbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (s *Server) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s.state.mu.Lock()
	user := s.state.userByEmail(req.Email)
	s.state.mu.Unlock()
	if user == nil || user.Password != req.Password {
		jsonError(c, http.StatusUnauthorized, "invalid credentials", "")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, s.secret, 24*time.Hour)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: token, User: user.User})
}

func (s *Server) registerHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	s.state.mu.Lock()
	if s.state.userByEmail(req.Email) != nil {
		s.state.mu.Unlock()
		jsonError(c, http.StatusConflict, "email already registered", "")
		return
	}
	user := &userRecord{
		User: models.User{
			ID:        "user-" + uuid.New().String()[:8],
			Name:      req.Name,
			Email:     req.Email,
			CreatedAt: time.Now(),
		},
		Password: req.Password,
	}
	s.state.users[user.ID] = user
	s.state.loyalty[user.ID] = &models.LoyaltyStatus{Points: 0, Tier: "bronze"}
	s.state.mu.Unlock()

	token, err := utils.GenerateToken(user.ID, user.Email, s.secret, 24*time.Hour)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, "failed to issue token", err.Error())
		return
	}
	c.JSON(http.StatusCreated, models.AuthResponse{Token: token, User: user.User})
}

func (s *Server) logoutHandler(c *gin.Context) {
	// Tokens are stateless in the sandbox; nothing to revoke.
	c.Status(http.StatusNoContent)
}

func (s *Server) meHandler(c *gin.Context) {
	userID := currentUserID(c)

	s.state.mu.Lock()
	user, ok := s.state.users[userID]
	s.state.mu.Unlock()
	if !ok {
		jsonError(c, http.StatusNotFound, "user not found", "")
		return
	}
	c.JSON(http.StatusOK, user.User)
}
