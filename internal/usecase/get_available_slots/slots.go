package get_available_slots

import (
	"time"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	"github.com/Tsolgiun/office-plus-booking/pkg/types"
)

// generateDaySlots produces every candidate hourly slot within operating
// hours: one slot per whole hour from OpenHour to CloseHour-1 inclusive.
func generateDaySlots(hours domain.OperatingHours) []types.HourSlot {
	slots := make([]types.HourSlot, 0, hours.SlotCount())
	for h := hours.OpenHour; h < hours.CloseHour; h++ {
		slots = append(slots, types.NewHourSlot(h))
	}
	return slots
}

// filterFreeSlots returns the candidates not blocked by any active
// appointment. An hour h is blocked when an active appointment's
// [startTime, endTime) overlaps [h, h+1); boundary-touching intervals do
// not block, so an appointment ending exactly at h leaves slot h free.
func filterFreeSlots(candidates []types.HourSlot, day time.Time, appointments []*domain.Appointment) []domain.Slot {
	free := make([]domain.Slot, 0, len(candidates))

	for _, hour := range candidates {
		slotStart, slotEnd := hour.Bounds(day)

		blocked := false
		for _, appt := range appointments {
			if !appt.IsActive() {
				continue
			}
			if appt.Overlaps(slotStart, slotEnd) {
				blocked = true
				break
			}
		}

		if !blocked {
			free = append(free, domain.NewSlot(hour))
		}
	}

	return free
}

// dayBounds returns the half-open [00:00, 24:00) window of the calendar
// day in its own location.
func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}
