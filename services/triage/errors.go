package triage

import (
	"errors"
	"fmt"
)

// ErrConfigurationMissing is returned when no advisory credential is
// configured. It is checked at request entry, before any network attempt.
var ErrConfigurationMissing = errors.New("advisory model credential is not configured")

// ErrUnparsableAdvisory is returned when the advisory reply contains no
// parsable decision object.
var ErrUnparsableAdvisory = errors.New("advisory reply did not contain a parsable decision")

// ErrEmptyMessage is returned when the chat message is present but blank.
var ErrEmptyMessage = errors.New("message cannot be empty")

// ErrMissingInput is returned when neither a message nor an image is supplied.
var ErrMissingInput = errors.New("either a message or an image is required")

// AdvisoryUnavailableError signals that the upstream advisory call did not
// return success. Detail carries the upstream body for diagnostics.
type AdvisoryUnavailableError struct {
	StatusCode int
	Detail     string
}

func (e AdvisoryUnavailableError) Error() string {
	return fmt.Sprintf("advisory model unavailable (status %d): %s", e.StatusCode, e.Detail)
}
