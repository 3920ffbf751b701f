package booking

import (
	bookingRepo "homeserv/database/repository/booking"
)

// ErrNotFound is returned when a booking lookup or mutation targets an id
// that does not exist. Repository errors wrap this sentinel.
var ErrNotFound = bookingRepo.ErrNotFound

// InvalidBookingError signals a candidate that violates the booking shape
// rule: a booking references a package XOR (a service AND a professional).
// Reason is user-visible and distinguishes the three failure shapes.
type InvalidBookingError struct {
	Reason string
}

func (e InvalidBookingError) Error() string {
	return e.Reason
}
