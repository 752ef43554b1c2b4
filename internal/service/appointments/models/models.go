// Package models holds the request/response shapes of the appointments
// service and their conversions to and from the domain.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// AppointmentResponse is one appointment as returned by the service.
type AppointmentResponse struct {
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

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentListResponse is a list of appointments.
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse
	Total        int
}

// GetUserAppointmentsRequest filters a requester's history.
type GetUserAppointmentsRequest struct {
	UserID uuid.UUID
	Status *string
}

// GetBuildingAppointmentsRequest filters a building's appointments.
type GetBuildingAppointmentsRequest struct {
	BuildingID      uuid.UUID
	Room            *string
	Date            *time.Time // calendar day; expands to its [00:00, 24:00) window
	Status          *string
	IncludeInactive bool
}

// UpdateStatusRequest asks for a lifecycle transition.
type UpdateStatusRequest struct {
	Status string
}

// CancelAppointmentRequest asks for a cancellation with a reason.
type CancelAppointmentRequest struct {
	CancellationReason string
}

// ToDomainStatus validates and converts a status string.
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
	return status, nil
}

// ToDomainFilter converts the request into a repository filter.
func (r *GetBuildingAppointmentsRequest) ToDomainFilter() (domain.BuildingAppointmentsFilter, error) {
	filter := domain.BuildingAppointmentsFilter{
		BuildingID:      r.BuildingID,
		Room:            r.Room,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		d := *r.Date
		from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		to := from.AddDate(0, 0, 1)
		filter.From = &from
		filter.To = &to
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return domain.BuildingAppointmentsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// FromDomainAppointment converts a domain appointment.
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                 a.ID,
		BuildingID:         a.BuildingID,
		Room:               a.Room,
		RequesterID:        a.RequesterID,
		StartTime:          a.StartTime,
		EndTime:            a.EndTime,
		Purpose:            a.Purpose,
		Attendees:          a.Attendees,
		ContactInfo:        a.ContactInfo,
		Status:             string(a.Status),
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList converts a list of domain appointments.
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	out := make([]*AppointmentResponse, len(list))
	for i, a := range list {
		out[i] = FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
