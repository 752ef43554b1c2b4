package domain

import "github.com/Tsolgiun/office-plus-booking/pkg/types"

// Slot is a bookable hourly interval offered to a caller.
type Slot struct {
	Hour  types.HourSlot
	Value string // machine form, e.g. "13-14"
	Label string // display form, e.g. "13:00 - 14:00"
}

// NewSlot builds the Slot for a start hour.
func NewSlot(h types.HourSlot) Slot {
	return Slot{
		Hour:  h,
		Value: h.Value(),
		Label: h.Label(),
	}
}

// OperatingHours bounds the bookable part of a day: whole-hour slots
// from OpenHour up to (but not including) CloseHour.
type OperatingHours struct {
	OpenHour  int
	CloseHour int
}

// SlotCount returns how many hourly slots fit in the operating window.
func (o OperatingHours) SlotCount() int {
	if o.CloseHour <= o.OpenHour {
		return 0
	}
	return o.CloseHour - o.OpenHour
}
