package handlers

import (
	"errors"
	"net/http"

	"homeserv/models"
	"homeserv/services/booking"
	"homeserv/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var candidate models.BookingCreate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Create(candidate)
	if err != nil {
		var invalid booking.InvalidBookingError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Reason})
			return
		}
		logger.Error("Failed to create booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetAllBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetAll()
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetUserBookingsHandler handles GET /api/bookings/user/:userID.
func (h *BookingHandler) GetUserBookingsHandler(c *gin.Context) {
	h.listForUser(c, h.Service.GetByUser)
}

// GetUserPackageBookingsHandler handles GET /api/bookings/user/:userID/packages.
func (h *BookingHandler) GetUserPackageBookingsHandler(c *gin.Context) {
	h.listForUser(c, h.Service.GetPackageBookingsByUser)
}

// GetUserNormalBookingsHandler handles GET /api/bookings/user/:userID/normal.
func (h *BookingHandler) GetUserNormalBookingsHandler(c *gin.Context) {
	h.listForUser(c, h.Service.GetNormalBookingsByUser)
}

func (h *BookingHandler) listForUser(c *gin.Context, list func(string) ([]models.Booking, error)) {
	userID := c.Param("userID")
	bookings, err := list(userID)
	if err != nil {
		utils.GetLogger().Error("Failed to list user bookings", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpdateBookingHandler handles PUT /api/bookings/:id with a partial payload:
// supplied fields overwrite, absent fields are left untouched.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var update models.BookingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Error("Invalid booking update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(id, update)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to update booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CompleteJobHandler handles PUT /api/bookings/:id/complete. The status is
// forced to completed regardless of the current status.
func (h *BookingHandler) CompleteJobHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CompleteJob(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		utils.GetLogger().Error("Failed to complete job", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete job"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job marked as completed"})
}

// ChangeStatusHandler handles PATCH /api/bookings/:id/status?status=...
// The status value is restricted here, before the booking service is reached.
func (h *BookingHandler) ChangeStatusHandler(c *gin.Context) {
	id := c.Param("id")
	status := c.Query("status")

	if !models.IsValidStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	updated, err := h.Service.ChangeStatus(id, status)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		utils.GetLogger().Error("Failed to change booking status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change booking status"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		utils.GetLogger().Error("Failed to delete booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
