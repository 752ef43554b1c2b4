package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request is a booking submission: every Appointment field except the
// server-assigned id, status and createdAt.
type Request struct {
	RequesterID uuid.UUID // taken from the caller's token, never the body
	BuildingID  uuid.UUID
	Room        string // "" = building-level, room unspecified
	StartTime   time.Time
	EndTime     time.Time
	Purpose     string
	Attendees   int
	ContactInfo string
}

// Response is the persisted appointment.
type Response struct {
	ID          uuid.UUID
	BuildingID  uuid.UUID
	Room        string
	RequesterID uuid.UUID
	StartTime   time.Time
	EndTime     time.Time
	Purpose     string
	Attendees   int
	ContactInfo string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
