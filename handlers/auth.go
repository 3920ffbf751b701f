package handlers

import (
	"errors"
	"net/http"

	"homeserv/models"
	"homeserv/services/user"
	"homeserv/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes customer signup and login.
type AuthHandler struct {
	Service user.UserService
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(service user.UserService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// SignupHandler handles POST /api/auth/signup.
func (h *AuthHandler) SignupHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var reg models.UserRegistration
	if err := c.ShouldBindJSON(&reg); err != nil {
		logger.Error("Invalid signup payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Register(reg)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		logger.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		logger.Error("Invalid login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	auth, err := h.Service.Authenticate(creds.Email, creds.Password, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, user.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials"})
		default:
			logger.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user_id": auth.ID,
		"name":    auth.Name,
		"email":   auth.Email,
		"token":   auth.Token,
	})
}

// MeHandler handles GET /api/users/me for an authenticated user.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	profile, err := h.Service.GetByID(userID.(string))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch profile", zap.Any("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
