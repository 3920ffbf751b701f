package booking

import (
	bookingRepo "homeserv/database/repository/booking"
	"homeserv/models"
)

// BookingService orchestrates booking lifecycle operations against the
// booking repository under the domain invariants.
type BookingService interface {
	Create(candidate models.BookingCreate) (*models.Booking, error)
	// CreateFromTriage persists a booking escalated by the triage chat. The
	// candidate carries a service category name rather than catalog
	// references, so the package/service/professional shape rule does not
	// apply to it.
	CreateFromTriage(userID, serviceName, issue string) (*models.Booking, error)

	GetAll() ([]models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	GetPackageBookingsByUser(userID string) ([]models.Booking, error)
	GetNormalBookingsByUser(userID string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)

	Update(id string, update models.BookingUpdate) (*models.Booking, error)
	CompleteJob(id string) error
	ChangeStatus(id, status string) (*models.Booking, error)
	Delete(id string) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
