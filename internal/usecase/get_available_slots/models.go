package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// Request describes an availability query.
type Request struct {
	BuildingID uuid.UUID  // building the caller wants to visit
	Room       *string    // nil = building-wide view, "" = the building-level room
	Date       time.Time  // calendar day, in the building's local time
}

// Response is the list of bookable slots for the day.
type Response struct {
	BuildingID uuid.UUID
	Room       *string
	Date       time.Time
	Slots      []domain.Slot
}
