package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	getAvailableSlots "github.com/Tsolgiun/office-plus-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BuildingID string          `json:"buildingId"`
	Room       *string         `json:"room,omitempty"`
	Date       string          `json:"date"`
	Slots      []AvailableSlot `json:"slots"`
}

// AvailableSlot is one bookable hourly slot. Value is the machine form
// the booking endpoint understands, Label the display form.
type AvailableSlot struct {
	Value string `json:"value"` // "13-14"
	Label string `json:"label"` // "13:00 - 14:00"
}

// ToUseCaseRequest builds the usecase request from the path and query
// parameters. room is nil when the query parameter was absent.
func ToUseCaseRequest(buildingID uuid.UUID, room *string, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		BuildingID: buildingID,
		Room:       room,
		Date:       date,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Value: slot.Value,
			Label: slot.Label,
		}
	}

	return &AvailableSlotsResponse{
		BuildingID: resp.BuildingID.String(),
		Room:       resp.Room,
		Date:       resp.Date.Format(domain.DateFormat),
		Slots:      slots,
	}
}
