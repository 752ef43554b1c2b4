package create_appointment

import "errors"

var (
	// ErrBuildingNotFound is returned when the building does not exist
	ErrBuildingNotFound = errors.New("create_appointment: building not found")

	// ErrSlotNotAvailable is returned when the requested interval collides
	// with an existing pending or confirmed appointment. Distinct from
	// ErrInvalidInput so the caller re-fetches availability instead of
	// re-submitting the same form.
	ErrSlotNotAvailable = errors.New("create_appointment: requested interval is no longer available")

	// ErrInvalidDate is returned when the appointment lies in the past
	ErrInvalidDate = errors.New("create_appointment: appointment date is in the past")

	// ErrInvalidInput is returned on malformed input with the failing field
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrStoreUnavailable is returned when the appointment store cannot be
	// reached; retryable
	ErrStoreUnavailable = errors.New("create_appointment: appointment store unavailable")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("create_appointment: internal error")
)
