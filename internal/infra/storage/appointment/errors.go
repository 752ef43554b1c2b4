package appointment

import "errors"

var (
	// ErrAppointmentNotFound is returned when the appointment does not exist
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrOverlap is returned when an insert collides with an active
	// appointment on the same (building, room), raised by the
	// appointments_no_overlap exclusion constraint
	ErrOverlap = errors.New("appointment.repository: overlapping appointment exists")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
