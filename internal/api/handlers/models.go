package handlers

import (
	"time"

	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

// AppointmentJSON is the wire form of an appointment, shared by every
// endpoint that returns one.
type AppointmentJSON struct {
	ID          string `json:"id"`
	BuildingID  string `json:"buildingId"`
	Room        string `json:"room,omitempty"`
	RequesterID string `json:"requesterId"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Purpose     string `json:"purpose"`
	Attendees   int    `json:"attendees"`
	ContactInfo string `json:"contactInfo"`
	Status      string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// AppointmentListJSON is a list of appointments with its total.
type AppointmentListJSON struct {
	Appointments []*AppointmentJSON `json:"appointments"`
	Total        int                `json:"total"`
}

// FromServiceAppointment converts a service response to the wire form.
func FromServiceAppointment(a *models.AppointmentResponse) *AppointmentJSON {
	out := &AppointmentJSON{
		ID:                 a.ID.String(),
		BuildingID:         a.BuildingID.String(),
		Room:               a.Room,
		RequesterID:        a.RequesterID.String(),
		StartTime:          a.StartTime.Format(time.RFC3339),
		EndTime:            a.EndTime.Format(time.RFC3339),
		Purpose:            a.Purpose,
		Attendees:          a.Attendees,
		ContactInfo:        a.ContactInfo,
		Status:             a.Status,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          a.UpdatedAt.Format(time.RFC3339),
	}

	if a.CancelledAt != nil {
		formatted := a.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &formatted
	}

	return out
}

// FromServiceAppointmentList converts a service list response.
func FromServiceAppointmentList(list *models.AppointmentListResponse) *AppointmentListJSON {
	out := make([]*AppointmentJSON, len(list.Appointments))
	for i, a := range list.Appointments {
		out[i] = FromServiceAppointment(a)
	}
	return &AppointmentListJSON{
		Appointments: out,
		Total:        list.Total,
	}
}
