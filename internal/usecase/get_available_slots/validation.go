package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// validateRequest validates the incoming availability query.
func validateRequest(req *Request) error {
	if req.BuildingID == uuid.Nil {
		return fmt.Errorf("%w: buildingId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Room != nil && len(*req.Room) > domain.MaxRoomLength {
		return fmt.Errorf("%w: room is too long", ErrInvalidInput)
	}

	return nil
}
