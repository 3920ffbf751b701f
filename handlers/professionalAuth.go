package handlers

import (
	"errors"
	"net/http"

	"homeserv/models"
	"homeserv/services/professional"
	"homeserv/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfessionalAuthHandler exposes professional login.
type ProfessionalAuthHandler struct {
	Service professional.ProfessionalService
}

// NewProfessionalAuthHandler creates a professional auth handler.
func NewProfessionalAuthHandler(service professional.ProfessionalService) *ProfessionalAuthHandler {
	return &ProfessionalAuthHandler{Service: service}
}

// LoginHandler handles POST /api/professionals/login.
func (h *ProfessionalAuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		logger.Error("Invalid professional login payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	auth, err := h.Service.Authenticate(creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, professional.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Professional not found"})
		case errors.Is(err, professional.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		default:
			logger.Error("Professional login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, auth)
}
