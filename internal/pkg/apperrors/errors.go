// Package apperrors defines the error taxonomy shared across services and
// its mapping onto HTTP status codes.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound signals that the requested record or location does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyAssigned signals that an active delivery record already
	// exists for the order.
	ErrAlreadyAssigned = errors.New("order already has an active delivery")

	// ErrIllegalTransition signals an out-of-order delivery status request.
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidCoordinates signals a point outside [-180,180]x[-90,90].
	ErrInvalidCoordinates = errors.New("invalid coordinates")

	// ErrResolutionFailed signals the geocoding provider returned no usable
	// result for the input. Callers must not substitute default coordinates.
	ErrResolutionFailed = errors.New("address resolution failed")

	// ErrUpstreamUnavailable signals a transport-level failure talking to an
	// external provider or sibling service, distinct from "no result".
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNoDriversAvailable signals that no driver candidate was within the
	// search radius during auto-assignment.
	ErrNoDriversAvailable = errors.New("no available drivers found")
)

// ValidationError reports a missing or malformed request field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewValidation creates a ValidationError for the given field
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusCode maps an error to its HTTP status code. Unrecognized errors map
// to 500 so upstream failures stay diagnosable rather than silently absorbed.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyAssigned), errors.Is(err, ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCoordinates):
		return http.StatusBadRequest
	case errors.Is(err, ErrNoDriversAvailable):
		return http.StatusConflict
	case errors.Is(err, ErrResolutionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
