package handlers

import (
	"errors"
	"net/http"

	"homeserv/models"
	"homeserv/services/triage"
	"homeserv/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the triage chat endpoint.
type ChatHandler struct {
	Service triage.TriageService
}

// NewChatHandler creates a chat handler.
func NewChatHandler(service triage.TriageService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// HandleChat handles POST /api/chat.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	resp, err := h.Service.ProcessChat(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, triage.ErrConfigurationMissing):
			logger.Error("Advisory credential missing")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI key missing"})
		case errors.Is(err, triage.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		case errors.Is(err, triage.ErrMissingInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Either a message or an image is required"})
		default:
			var unavailable triage.AdvisoryUnavailableError
			if errors.As(err, &unavailable) {
				logger.Error("Advisory model unavailable", zap.Int("status", unavailable.StatusCode), zap.String("detail", unavailable.Detail))
				c.JSON(http.StatusInternalServerError, gin.H{"error": unavailable.Detail})
				return
			}
			logger.Error("Chat processing failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process chat request"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
