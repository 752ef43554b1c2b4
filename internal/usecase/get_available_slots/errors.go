package get_available_slots

import "errors"

var (
	// ErrBuildingNotFound is returned when the building does not exist
	ErrBuildingNotFound = errors.New("get_available_slots: building not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStoreUnavailable is returned when the appointment store cannot be
	// reached. Availability fails closed: the caller sees a retryable
	// error, never a fully-free day.
	ErrStoreUnavailable = errors.New("get_available_slots: appointment store unavailable")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("get_available_slots: internal error")
)
