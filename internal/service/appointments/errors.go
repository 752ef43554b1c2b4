package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrBuildingNotFound is returned when the building does not exist
	ErrBuildingNotFound = errors.New("building not found")

	// ErrAccessDenied is returned when the caller lacks permission for the
	// requested operation or transition edge
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidTransition is returned when the target status is
	// unreachable from the current status, regardless of role
	ErrInvalidTransition = errors.New("status transition not permitted")

	// ErrInvalidInput is returned on malformed input data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrStoreUnavailable is returned when the persistence layer cannot be
	// reached; retryable
	ErrStoreUnavailable = errors.New("appointment store unavailable")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
