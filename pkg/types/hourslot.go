// Package types holds small value types shared across layers.
package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidHourSlot is returned when an hour-slot string or value does
// not describe a whole hour of a day.
var ErrInvalidHourSlot = errors.New("types: invalid hour slot")

// HourSlot is a one-hour booking slot identified by its start hour.
// The wire form is "{h}-{h+1}" (e.g. "13-14"), the display form is
// "13:00 - 14:00", the formats the booking form has always used.
type HourSlot int

// NewHourSlot creates a slot starting at hour h.
func NewHourSlot(h int) HourSlot {
	return HourSlot(h)
}

// ParseHourSlot parses the "{h}-{h+1}" wire form.
func ParseHourSlot(s string) (HourSlot, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourSlot, s)
	}

	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourSlot, s)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHourSlot, s)
	}

	slot := HourSlot(start)
	if err := slot.Validate(); err != nil {
		return 0, err
	}
	if end != start+1 {
		return 0, fmt.Errorf("%w: %q is not a whole-hour slot", ErrInvalidHourSlot, s)
	}

	return slot, nil
}

// Validate checks the start hour lies within a day.
func (s HourSlot) Validate() error {
	if s < 0 || s > 23 {
		return fmt.Errorf("%w: start hour %d out of range", ErrInvalidHourSlot, int(s))
	}
	return nil
}

// StartHour returns the slot's start hour.
func (s HourSlot) StartHour() int {
	return int(s)
}

// EndHour returns the slot's end hour.
func (s HourSlot) EndHour() int {
	return int(s) + 1
}

// Value returns the machine form, e.g. "13-14".
func (s HourSlot) Value() string {
	return fmt.Sprintf("%d-%d", s.StartHour(), s.EndHour())
}

// Label returns the display form, e.g. "13:00 - 14:00".
func (s HourSlot) Label() string {
	return fmt.Sprintf("%d:00 - %d:00", s.StartHour(), s.EndHour())
}

// Bounds returns the slot's [start, end) instants on the given calendar
// day, in that day's location.
func (s HourSlot) Bounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), s.StartHour(), 0, 0, 0, day.Location())
	return start, start.Add(time.Hour)
}
