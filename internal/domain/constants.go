package domain

// Default operating hours: viewing appointments run from 07:00 up to
// 22:00, the window the booking form has always offered.
const (
	DefaultOpenHour  = 7
	DefaultCloseHour = 22
)

// Business validation constants
const (
	MinAttendees             = 1
	MaxAttendees             = 500
	MaxPurposeLength         = 1000
	MaxContactInfoLength     = 200
	MaxRoomLength            = 100
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a time slot.
// Used when filtering appointments for availability checks.
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses are the statuses that no longer block new bookings.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusCompleted,
	StatusRejected,
}
