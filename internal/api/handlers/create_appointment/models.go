package create_appointment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	createAppointment "github.com/Tsolgiun/office-plus-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model. The requester is the
// authenticated caller, never a body field.
type CreateAppointmentRequest struct {
	BuildingID  string `json:"buildingId"`
	Room        string `json:"room,omitempty"`
	StartTime   string `json:"startTime"` // RFC 3339
	EndTime     string `json:"endTime"`   // RFC 3339
	Purpose     string `json:"purpose"`
	Attendees   *int   `json:"attendees,omitempty"` // default 1
	ContactInfo string `json:"contactInfo"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
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
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model,
// parsing ids and timestamps.
func (r *CreateAppointmentRequest) ToUseCaseRequest(caller auth.Identity) (*createAppointment.Request, error) {
	buildingID, err := uuid.Parse(r.BuildingID)
	if err != nil {
		return nil, fmt.Errorf("invalid buildingId: %w", err)
	}

	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime: %w", err)
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid endTime: %w", err)
	}

	attendees := 1
	if r.Attendees != nil {
		attendees = *r.Attendees
	}

	return &createAppointment.Request{
		RequesterID: caller.UserID,
		BuildingID:  buildingID,
		Room:        r.Room,
		StartTime:   startTime,
		EndTime:     endTime,
		Purpose:     r.Purpose,
		Attendees:   attendees,
		ContactInfo: r.ContactInfo,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP model.
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID.String(),
		BuildingID:  resp.BuildingID.String(),
		Room:        resp.Room,
		RequesterID: resp.RequesterID.String(),
		StartTime:   resp.StartTime.Format(time.RFC3339),
		EndTime:     resp.EndTime.Format(time.RFC3339),
		Purpose:     resp.Purpose,
		Attendees:   resp.Attendees,
		ContactInfo: resp.ContactInfo,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
