package booking

import "homeserv/models"

// ValidateCandidate enforces the booking shape rule before any persistence
// call: a candidate references a package XOR (a service AND a professional).
// Pure function of its input; the three failure reasons are distinct and
// user-visible.
func ValidateCandidate(candidate models.BookingCreate) error {
	if candidate.PackageID != nil {
		if candidate.ServiceID != nil || candidate.ProfessionalID != nil {
			return InvalidBookingError{Reason: "package booking cannot include a service or professional"}
		}
		return nil
	}
	if candidate.ServiceID == nil {
		return InvalidBookingError{Reason: "service must be selected"}
	}
	if candidate.ProfessionalID == nil {
		return InvalidBookingError{Reason: "professional must be selected"}
	}
	return nil
}
