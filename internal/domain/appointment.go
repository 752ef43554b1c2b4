package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of a viewing appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusRejected  AppointmentStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted from s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusRejected
}

// Appointment represents a request to visit a building (optionally a
// specific room) for a time interval.
type Appointment struct {
	ID          uuid.UUID
	BuildingID  uuid.UUID
	Room        string // "" = building-level, room unspecified
	RequesterID uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Purpose     string
	Attendees   int
	ContactInfo string
	Status      AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment blocks its time interval.
// Only pending and confirmed appointments occupy slots.
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Overlaps reports whether the appointment's [StartTime, EndTime)
// intersects the half-open interval [start, end). Intervals that only
// touch at a boundary do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && a.EndTime.After(start)
}

// BuildingAppointmentsFilter describes a filtered appointment query for
// one building. From/To select appointments whose interval intersects
// [From, To); nil means unbounded on that side.
type BuildingAppointmentsFilter struct {
	BuildingID      uuid.UUID
	Room            *string            // nil = all rooms (building-wide view)
	From            *time.Time         // overlap window start
	To              *time.Time         // overlap window end
	Status          *AppointmentStatus // exact status match
	IncludeInactive bool               // include cancelled/rejected/completed
}
