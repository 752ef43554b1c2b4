package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// validateRequest validates the submission fields. Each failure names
// the offending field so the form can react specifically.
func validateRequest(req *Request) error {
	if req.RequesterID == uuid.Nil {
		return fmt.Errorf("%w: requesterId is required", ErrInvalidInput)
	}

	if req.BuildingID == uuid.Nil {
		return fmt.Errorf("%w: buildingId is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if req.Attendees < domain.MinAttendees {
		return fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}
	if req.Attendees > domain.MaxAttendees {
		return fmt.Errorf("%w: attendees exceeds %d", ErrInvalidInput, domain.MaxAttendees)
	}

	if strings.TrimSpace(req.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ContactInfo) == "" {
		return fmt.Errorf("%w: contactInfo is required", ErrInvalidInput)
	}
	if len(req.ContactInfo) > domain.MaxContactInfoLength {
		return fmt.Errorf("%w: contactInfo is too long", ErrInvalidInput)
	}

	if len(req.Room) > domain.MaxRoomLength {
		return fmt.Errorf("%w: room is too long", ErrInvalidInput)
	}

	return nil
}

// validateNotInPast rejects appointments that already ended or start on
// a day before today.
func validateNotInPast(start time.Time, now time.Time) error {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if startDay.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

// hasOverlap reports whether any active appointment intersects
// [start, end). Half-open intervals: touching boundaries do not collide.
func hasOverlap(start, end time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.Overlaps(start, end) {
			return true
		}
	}
	return false
}
