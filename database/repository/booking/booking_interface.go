package bookingRepo

import (
	"errors"

	"homeserv/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// PackageFilter partitions user bookings on the presence of a package reference.
type PackageFilter int

const (
	PackageAny  PackageFilter = iota // no partitioning
	PackageOnly                      // package bookings only
	PackageNone                      // non-package ("normal") bookings only
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetAll() ([]models.Booking, error)
	GetByUser(userID string, filter PackageFilter) ([]models.Booking, error)
	UpdateFields(id string, fields bson.M) error
	Delete(id string) error
}
