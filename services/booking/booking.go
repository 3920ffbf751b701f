package booking

import (
	"fmt"
	"time"

	bookingRepo "homeserv/database/repository/booking"
	"homeserv/models"
	"homeserv/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create validates the candidate and persists it with status pending. The
// stored record, including the generated id and creation timestamp, is
// returned.
func (s *DefaultBookingService) Create(candidate models.BookingCreate) (*models.Booking, error) {
	if err := ValidateCandidate(candidate); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:             uuid.NewString(),
		UserID:         candidate.UserID,
		AreaID:         candidate.AreaID,
		PackageID:      candidate.PackageID,
		ServiceID:      candidate.ServiceID,
		ProfessionalID: candidate.ProfessionalID,
		ScheduledAt:    candidate.ScheduledAt,
		TotalPrice:     candidate.TotalPrice,
		Details:        candidate.Details,
		Status:         models.StatusPending,
		Source:         models.SourceApp,
		CreatedAt:      time.Now(),
	}

	if err := s.Repo.Create(booking); err != nil {
		utils.GetLogger().Error("Failed to create booking", zap.String("userID", candidate.UserID), zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// CreateFromTriage persists a booking escalated from the triage chat. The
// advisory model supplies only the issue and a service category name; price
// and professional assignment come later in the booking lifecycle.
func (s *DefaultBookingService) CreateFromTriage(userID, serviceName, issue string) (*models.Booking, error) {
	booking := &models.Booking{
		ID:          uuid.NewString(),
		UserID:      userID,
		ServiceName: serviceName,
		Details:     issue,
		Status:      models.StatusPending,
		Source:      models.SourceChat,
		CreatedAt:   time.Now(),
	}

	if err := s.Repo.Create(booking); err != nil {
		utils.GetLogger().Error("Failed to create triage booking", zap.String("userID", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to create triage booking: %w", err)
	}
	return booking, nil
}

// GetAll returns every booking.
func (s *DefaultBookingService) GetAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// GetByUser returns a user's bookings, newest first.
func (s *DefaultBookingService) GetByUser(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID, bookingRepo.PackageAny)
}

// GetPackageBookingsByUser returns only the user's package bookings.
func (s *DefaultBookingService) GetPackageBookingsByUser(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID, bookingRepo.PackageOnly)
}

// GetNormalBookingsByUser returns only the user's non-package bookings.
func (s *DefaultBookingService) GetNormalBookingsByUser(userID string) ([]models.Booking, error) {
	return s.Repo.GetByUser(userID, bookingRepo.PackageNone)
}

// GetByID returns the booking with the given id, or ErrNotFound.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}
